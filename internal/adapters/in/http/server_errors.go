package http

import (
	"errors"
	"net/http"

	"courierservice/internal/core/application/usecases/commands"
	"courierservice/internal/core/application/usecases/queries"
	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	detailNotAuthenticated = "Not authenticated"
	detailOnlyCouriers     = "only couriers can access this resource"
	detailOnlyUsers        = "only users can access this resource"
	detailInvalidPhone     = "invalid phone number format"
	detailInternal         = "internal server error"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func writeError(c echo.Context, status int, detail string) error {
	return c.JSON(status, ErrorResponse{Detail: detail})
}

func writeUnauthorized(c echo.Context, detail string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return writeError(c, http.StatusUnauthorized, detail)
}

// handleError turns a use case error into a response. Anything it does not
// recognise is logged and answered with 500.
func (s *Server) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrInvalidCredentials):
		return writeUnauthorized(c, err.Error())

	case errors.Is(err, commands.ErrUserAlreadyRegistered),
		errors.Is(err, commands.ErrCourierAlreadyRegistered),
		errors.Is(err, commands.ErrRestaurantAlreadyExists),
		errors.Is(err, commands.ErrCourierHasActiveOrder),
		errors.Is(err, commands.ErrPasswordIsRequired):
		return writeError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, commands.ErrRestaurantNotFound),
		errors.Is(err, commands.ErrOrderNotFound),
		errors.Is(err, queries.ErrRestaurantNotFound),
		errors.Is(err, queries.ErrRestaurantOrderNotFound),
		errors.Is(err, queries.ErrOrderNotFound):
		return writeError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, kernel.ErrPhoneNumberFormat):
		return writeError(c, http.StatusBadRequest, detailInvalidPhone)

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return writeError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(c, http.StatusNotFound, err.Error())
	}

	s.logger.ErrorContext(c.Request().Context(), "request failed",
		"method", c.Request().Method,
		"uri", c.Request().RequestURI,
		"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
		"error", err,
	)
	return writeError(c, http.StatusInternalServerError, detailInternal)
}
