package availability

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("rule not found")
	ErrForbidden  = errors.New("forbidden")
)
