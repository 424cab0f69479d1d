package error

import "errors"

// Client domain errors.
var (
	// ErrClientNotFound is returned when a client is not found.
	ErrClientNotFound = errors.New("client not found")

	// ErrClientNameRequired is returned when a client is created without a name.
	ErrClientNameRequired = errors.New("client name is required")
)

// ClientErrorCode defines error codes for client errors.
type ClientErrorCode string

const (
	ErrCodeClientNotFound     ClientErrorCode = "CLI-010001"
	ErrCodeClientNameRequired ClientErrorCode = "CLI-010002"
)
