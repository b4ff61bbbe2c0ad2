package board

import (
	"errors"
	"fmt"
)

// ErrForbidden is returned when the ownership gate rejects a mutation
var ErrForbidden = errors.New("not authorized to modify this post")

// ErrUnknownActor is returned when a per-actor operation (the composer) is
// attempted before the caller has fetched an identity.
var ErrUnknownActor = errors.New("unknown actor: fetch identity first")

// ValidationError is a local failure caught before any storage call
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RepositoryError wraps a failure reported by the storage tier. The
// underlying message is passed through to the notification surface
// verbatim; nothing is retried automatically.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}
