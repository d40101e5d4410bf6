package user

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidPhone  = errors.New("invalid phone number")
	ErrMissingFields = errors.New("full name and address are required")
	ErrInvalidOTP    = errors.New("otp code must be 6 digits")

	// -- Resource State --
	ErrUserNotFound = errors.New("user not found")
	ErrNotVerified  = errors.New("signup not completed for this phone number")
)
