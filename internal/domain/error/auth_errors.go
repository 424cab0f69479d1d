package error

import "errors"

// Auth domain errors.
var (
	// ErrEmailAlreadyExists is returned when registering with a taken email.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrInvalidCredentials is returned when login credentials do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidToken is returned when a JWT is malformed, expired, or of the
	// wrong type.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthErrorCode defines error codes for authentication errors.
type AuthErrorCode string

const (
	ErrCodeEmailAlreadyExists AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-010002"
	ErrCodeMissingToken       AuthErrorCode = "AUTH-010003"
	ErrCodeInvalidToken       AuthErrorCode = "AUTH-010004"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-010005"
)
