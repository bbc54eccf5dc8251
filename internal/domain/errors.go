package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, illegal status transition).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrNormalization is returned when a raw identifier cannot be converted to
// its canonical form — a custom entry with no usable name. The review
// reconciler recovers from it by dropping the entry; it never reaches a
// handler as a hard failure.
var ErrNormalization = errors.New("normalization error")

// ErrInvalidPlan is returned when the review reconciler is invoked without a
// plan. This is a caller contract violation, not a data-quality issue, and
// is deliberately allowed to propagate.
var ErrInvalidPlan = errors.New("invalid plan")
