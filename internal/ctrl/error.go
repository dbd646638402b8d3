package ctrl

import "errors"

// ErrUnauthorized is returned for any refresh that must force
// re-authentication: bad token, version mismatch, inactive user,
// rotated-away or revoked session, anomaly-triggered revocation.
var ErrUnauthorized = errors.New("unauthorized")

// ErrSessionExpired is returned when the absolute ceiling or the idle
// timeout ended the session; callers show "please log in again"
// instead of retrying silently.
var ErrSessionExpired = errors.New("session expired")

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a resource already exists.
var ErrAlreadyExists = errors.New("already exists")

// ErrServiceUnavailable is returned when the session store is
// unreachable or timed out. It is retryable and is never a statement
// about session validity.
var ErrServiceUnavailable = errors.New("service unavailable")
