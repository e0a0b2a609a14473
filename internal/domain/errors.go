package domain

import "errors"

var (
	ErrValidation    = errors.New("validation failed")
	ErrQuotaExceeded = errors.New("daily order quota exceeded")
	ErrPhaseNotOpen  = errors.New("flash sale is not open")
	ErrStateConflict = errors.New("order state conflict")
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("unauthorized")
)
