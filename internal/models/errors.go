package models

import "errors"

var (
	ErrAlertNotFound     = errors.New("panic alert not found")
	ErrInvalidTransition = errors.New("invalid alert status transition")
	ErrConflict          = errors.New("panic alert was modified concurrently")
	ErrForbidden         = errors.New("operation not permitted for this user")
)
