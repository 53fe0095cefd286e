package httperrors

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/chapool/cngn-go/internal/types"
	"github/chapool/cngn-go/internal/util"
)

type HTTPErrorHandlerConfig struct {
	HideInternalServerErrorDetails bool
}

func HTTPErrorHandlerWithConfig(config HTTPErrorHandlerConfig) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var code int
		var body any

		var httpError *HTTPError
		var httpValidationError *HTTPValidationError
		var echoHTTPError *echo.HTTPError

		switch {
		case errors.As(err, &httpError):
			code = int(swag.Int64Value(httpError.Code))
			body = httpError
		case errors.As(err, &httpValidationError):
			code = int(swag.Int64Value(httpValidationError.Code))
			body = httpValidationError
		case errors.As(err, &echoHTTPError):
			code = echoHTTPError.Code
			body = NewFromEcho(echoHTTPError)
		default:
			code = http.StatusInternalServerError
			internal := NewHTTPError(code, types.PublicHTTPErrorTypeGeneric, http.StatusText(code))
			if !config.HideInternalServerErrorDetails {
				internal.Detail = err.Error()
			}
			body = internal
		}

		log := util.LogFromContext(c.Request().Context())
		if code >= http.StatusInternalServerError {
			log.Error().Err(err).Int("status", code).Msg("Request failed")
		} else {
			log.Debug().Err(err).Int("status", code).Msg("Request failed")
		}

		if c.Response().Committed {
			return
		}

		var sendErr error
		if c.Request().Method == http.MethodHead {
			sendErr = c.NoContent(code)
		} else {
			sendErr = c.JSON(code, body)
		}

		if sendErr != nil {
			log.Warn().Err(sendErr).AnErr("http_err", err).Msg("Failed to handle HTTP error")
		}
	}
}
