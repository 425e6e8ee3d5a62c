package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDecode indicates that a persisted currency unit could not be
// reconstructed because its code field was missing or unrecognized.
var ErrDecode = errors.New("decode failed")
