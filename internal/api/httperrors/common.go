package httperrors

import (
	"net/http"

	"github/chapool/cngn-go/internal/types"
)

var (
	ErrBadRequestMalformedBody     = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeMalformedBody, "The request body could not be parsed.")
	ErrBadRequestInvalidMnemonic   = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeInvalidMnemonic, "The given mnemonic is not a valid BIP-39 phrase.")
	ErrUnprocessableAddress        = NewHTTPError(http.StatusUnprocessableEntity, types.PublicHTTPErrorTypeAddressValidation, "The address derived from the given mnemonic failed network validation.")
	ErrServiceUnavailableExhausted = NewHTTPError(http.StatusServiceUnavailable, types.PublicHTTPErrorTypeGenerationExhausted, "No valid address could be generated, please retry.")
	ErrServiceUnavailableNoEntropy = NewHTTPError(http.StatusServiceUnavailable, types.PublicHTTPErrorTypeEntropyUnavailable, "The entropy source is unavailable.")
)
