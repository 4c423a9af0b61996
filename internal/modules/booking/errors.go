package booking

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrNotFound                = errors.New("booking not found")
	ErrForbidden               = errors.New("forbidden")
	ErrSlotUnavailable         = errors.New("slot unavailable")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrConcurrencyConflict     = errors.New("booking was updated concurrently")
)
