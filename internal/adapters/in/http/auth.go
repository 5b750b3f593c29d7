package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"courierservice/internal/core/application/usecases/queries"
	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const identityContextKey = "identity"

// Authenticator resolves the bearer token of a request into a queries.Identity.
type Authenticator struct {
	verifier   ports.TokenVerifier
	identities queries.GetIdentityQueryHandler
	logger     *slog.Logger
}

func NewAuthenticator(
	verifier ports.TokenVerifier,
	identities queries.GetIdentityQueryHandler,
	logger *slog.Logger,
) *Authenticator {
	return &Authenticator{
		verifier:   verifier,
		identities: identities,
		logger:     logger.With("component", "http_auth"),
	}
}

// RequireCourier admits courier tokens only.
func (a *Authenticator) RequireCourier() echo.MiddlewareFunc {
	return a.require(kernel.CourierAccount, detailOnlyCouriers)
}

// RequireUser admits user tokens only.
func (a *Authenticator) RequireUser() echo.MiddlewareFunc {
	return a.require(kernel.UserAccount, detailOnlyUsers)
}

func (a *Authenticator) require(kind kernel.AccountKind, forbidden string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return writeUnauthorized(c, detailNotAuthenticated)
			}

			subject, err := a.verifier.Verify(token)
			if err != nil {
				return writeUnauthorized(c, detailNotAuthenticated)
			}
			if subject.Kind != kind {
				return writeError(c, http.StatusForbidden, forbidden)
			}

			query, err := queries.NewGetIdentityQuery(subject.Kind, subject.Phone)
			if err != nil {
				return writeUnauthorized(c, detailNotAuthenticated)
			}
			identity, err := a.identities.Handle(c.Request().Context(), query)
			if errors.Is(err, queries.ErrIdentityNotFound) {
				return writeUnauthorized(c, detailNotAuthenticated)
			}
			if err != nil {
				a.logger.ErrorContext(c.Request().Context(), "identity lookup failed", "error", err)
				return writeError(c, http.StatusInternalServerError, detailInternal)
			}

			c.Set(identityContextKey, identity)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// identityFrom returns the caller set by the auth middleware.
func identityFrom(c echo.Context) queries.Identity {
	identity, _ := c.Get(identityContextKey).(queries.Identity)
	return identity
}
