// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrForbidden indicates that the current user is not
// authorized to perform an operation, while ErrCascadeIncomplete
// signals that a cascading delete stopped partway and must be
// retried rather than treated as either success or a clean no-op.
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation
// they are not allowed to perform. Handlers should translate this
// into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when a delete or update cannot be
// performed because of conflicting state, such as creating a space
// that duplicates an existing one. Handlers should translate this
// into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// ErrCascadeIncomplete is returned when deleting a parent space
// fails after the cascade has started. The transaction has rolled
// back and the subtree is intact, but nothing was deleted either, so
// handlers must report it distinctly (HTTP 409 with a retryable
// error code) so callers re-issue the delete instead of assuming it
// succeeded.
var ErrCascadeIncomplete = errors.New("cascade delete incomplete")
