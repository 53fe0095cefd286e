package cngn

import (
	"fmt"

	"github.com/pkg/errors"
)

const unknownErrorMessage = "Unknown error"

var (
	// ErrNoResponse is matched by every transport failure where the API never answered.
	ErrNoResponse = errors.New("No response received from API") //nolint:stylecheck // message is part of the public error contract

	ErrDecryptResponse   = errors.New("failed to decrypt with the provided Ed25519 private key")
	ErrInvalidPrivateKey = errors.New("invalid ed25519 private key")
	ErrMissingPrivateKey = errors.New("encrypted response received but no private key is configured")
)

// APIError is returned when the API answered with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = unknownErrorMessage
	}

	return fmt.Sprintf("API Error: %d - %s", e.StatusCode, msg)
}

// TransportError wraps the cause of a request that got no response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return ErrNoResponse.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrNoResponse //nolint:errorlint // sentinel identity
}

// SetupError is returned when a request could not be built.
type SetupError struct {
	Err error
}

func (e *SetupError) Error() string {
	return "Error setting up request: " + e.Err.Error()
}

func (e *SetupError) Unwrap() error {
	return e.Err
}
