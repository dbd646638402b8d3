package ctrl

import "time"

// Clock supplies wall-clock reads for every expiry comparison, so
// tests can drive the lifecycle without sleeping.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
