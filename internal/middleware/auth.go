// Package middleware holds the identity resolution and authorization
// middleware. Identity resolution runs per request with no caching of results:
// cookie extraction, token verification and the live-user lookup all happen on
// every protected request.
package middleware

import (
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"taskhive/internal/auth"
	apperrors "taskhive/internal/errors"
	"taskhive/internal/model"
	"taskhive/internal/repository"
)

const (
	// TokenCookieName is the cookie carrying the session token.
	TokenCookieName = "token"

	claimsContextKey = "sessionClaims"
	userContextKey   = "currentUser"
)

// Authenticate resolves the request identity: it extracts the token cookie,
// verifies it, resolves the embedded subject to a live user and attaches that
// user to the Echo context. Any failure rejects the request before the
// handler runs.
func Authenticate(tokens *auth.TokenService, users repository.UserRepository) echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + TokenCookieName,
		ContextKey:  claimsContextKey,
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return tokens.Verify(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if _, cookieErr := c.Cookie(TokenCookieName); cookieErr != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "missing token")
			}
			return echo.NewHTTPError(http.StatusBadRequest, "invalid token")
		},
	})

	resolve := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(claimsContextKey).(*auth.SessionClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusInternalServerError, "session claims missing from context")
			}

			// A valid token for a since-deleted user is rejected here.
			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return echo.NewHTTPError(http.StatusBadRequest, "user not found")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, "resolve user")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verify(resolve(next))
	}
}

// CurrentUser returns the user attached by Authenticate.
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(userContextKey).(*model.User)
	return user, ok
}

// Authorize permits the request only when the resolved identity's role grants
// the given action. It must run after Authenticate: a missing identity is a
// wiring bug and is reported as a server error, never a silent pass.
func Authorize(action model.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return echo.NewHTTPError(http.StatusInternalServerError, "identity not resolved before authorization")
			}
			if !user.Role.Can(action) {
				return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
					Error: "admins only",
					Code:  "FORBIDDEN",
				})
			}
			return next(c)
		}
	}
}
