package address

import "errors"

var (
	// -- Validation --
	ErrInvalidAddress       = errors.New("invalid address")
	ErrMissingRequiredField = errors.New("missing required field")

	// -- Loading --
	ErrLoadFailed      = errors.New("failed to load addresses")
	ErrAddressNotFound = errors.New("address not found")
)
