package repo

import "errors"

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a resource already exists.
var ErrAlreadyExists = errors.New("already exists")

// Session terminal states. Callers collapse all of them into a single
// re-authenticate outcome, but audit logging needs them apart.
var (
	ErrRevoked         = errors.New("session revoked")
	ErrSlidingExpired  = errors.New("session sliding window expired")
	ErrAbsoluteExpired = errors.New("session absolute ceiling exceeded")
	ErrIdleExpired     = errors.New("session idle timeout exceeded")
)
