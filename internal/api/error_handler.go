package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/accountkit/account-service/internal/core/domain"
)

// Bodies for the two plain-text outcomes. Every not-found and unauthorized
// response carries exactly these bytes, regardless of which route or check
// produced it.
const (
	notFoundBody     = "Not found!"
	unauthorizedBody = "Unauthorized"
)

// errorResponse is the canonical JSON error envelope for 400/500 responses.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders 404 and 401 as plain text ("Not found!" / "Unauthorized"),
//     so unmatched routes, missing records and bad credentials are
//     indistinguishable within their class.
//   - Maps remaining known errors to JSON with their status codes.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		// Echo's own errors: unmatched routes (404), method mismatches,
		// middleware rejections.
		var he *echo.HTTPError
		if errors.As(err, &he) {
			switch he.Code {
			case http.StatusNotFound, http.StatusMethodNotAllowed:
				// A known path with the wrong method does not resolve either;
				// it collapses into the uniform 404.
				_ = c.String(http.StatusNotFound, notFoundBody)
			case http.StatusUnauthorized:
				_ = c.String(http.StatusUnauthorized, unauthorizedBody)
			default:
				_ = c.JSON(he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)})
			}
			return
		}

		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			_ = c.String(http.StatusNotFound, notFoundBody)
		case errors.Is(err, domain.ErrInvalidCredentials):
			_ = c.String(http.StatusUnauthorized, unauthorizedBody)
		default:
			// Unexpected error: log the real cause, return a generic message.
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unhandled error")
			_ = c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		}
	}
}
