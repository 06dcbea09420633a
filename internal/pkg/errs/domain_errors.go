package errs

import "errors"

// Sentinel errors shared across the usecase layers.
var (
	// Facility errors
	ErrFacilityNotFound = errors.New("facility not found")
	ErrFacilityInactive = errors.New("facility inactive")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingConflict   = errors.New("booking conflict")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrPastDate          = errors.New("date is in the past")
	ErrInvalidTimeSlot   = errors.New("invalid time slot")
	ErrNotCancellable    = errors.New("booking cannot be cancelled")

	// Payment errors
	ErrPaymentVerificationFailed = errors.New("payment verification failed")
	ErrPaymentOrderFailed        = errors.New("payment order creation failed")

	// OTP errors
	ErrOTPNotFound        = errors.New("otp not found or expired")
	ErrOTPMismatch        = errors.New("otp does not match")
	ErrOTPTooManyAttempts = errors.New("too many otp attempts")

	// Auth errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email not verified")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
