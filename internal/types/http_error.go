package types

// PublicHTTPErrorType is the machine readable error type returned to API clients.
type PublicHTTPErrorType string

const (
	PublicHTTPErrorTypeGeneric             PublicHTTPErrorType = "generic"
	PublicHTTPErrorTypeMalformedBody       PublicHTTPErrorType = "MALFORMED_BODY"
	PublicHTTPErrorTypeUnsupportedNetwork  PublicHTTPErrorType = "UNSUPPORTED_NETWORK"
	PublicHTTPErrorTypeInvalidMnemonic     PublicHTTPErrorType = "INVALID_MNEMONIC"
	PublicHTTPErrorTypeAddressValidation   PublicHTTPErrorType = "ADDRESS_VALIDATION_FAILED"
	PublicHTTPErrorTypeGenerationExhausted PublicHTTPErrorType = "GENERATION_RETRIES_EXHAUSTED"
	PublicHTTPErrorTypeEntropyUnavailable  PublicHTTPErrorType = "ENTROPY_UNAVAILABLE"
)

// PublicHTTPError is the body of every error response.
type PublicHTTPError struct {
	// HTTP status code returned for the error
	Code *int64 `json:"status"`

	// More detailed, human-readable, optional explanation of the error
	Detail string `json:"detail,omitempty"`

	// Short, human-readable description of the error
	Title *string `json:"title"`

	Type *PublicHTTPErrorType `json:"type"`
}

type HTTPValidationErrorDetail struct {
	// Error describing field validation failure
	Error *string `json:"error"`

	// Indicates how the invalid field was provided
	In *string `json:"in"`

	// Key of field failing validation
	Key *string `json:"key"`
}

// HTTPValidationError extends PublicHTTPError with per-field failures.
type HTTPValidationError struct {
	PublicHTTPError

	ValidationErrors []*HTTPValidationErrorDetail `json:"validationErrors"`
}
