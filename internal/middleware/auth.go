package middleware

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/product_catalog/pkg/logging"
	"github.com/Skotchmaster/product_catalog/pkg/tokens"
)

const (
	ContextKeyClaims   = "claims"
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
	ContextKeyRoles    = "roles"
)

// RequireAuth verifies the bearer token and stores the decoded identity in
// the echo context. Missing, malformed and expired tokens end the request
// with 401.
func RequireAuth(secret []byte) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ContextKeyClaims,
		TokenLookup: "header:Authorization:Bearer ",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			claims, err := tokens.AccessClaimsFromToken(auth, secret)
			if err != nil {
				return nil, err
			}
			id, err := strconv.ParseUint(claims.Subject, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: subject is not a user id", tokens.ErrInvalidToken)
			}

			c.Set(ContextKeyUserID, uint(id))
			c.Set(ContextKeyUsername, claims.Username)
			c.Set(ContextKeyRoles, claims.Roles)
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logging.FromContext(c.Request().Context()).Warn("auth_failed", "status", 401, "reason", "invalid or expired token", "error", err)
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		},
	})
}

// RequireRole lets the request through when the token carries at least one
// of roles. With no roles it only requires RequireAuth to have run.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := Claims(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
			}
			if len(roles) == 0 {
				return next(c)
			}
			for _, r := range claims.Roles {
				if slices.Contains(roles, r) {
					return next(c)
				}
			}
			logging.FromContext(c.Request().Context()).Warn("access_denied", "status", 403, "reason", "missing role", "user_id", c.Get(ContextKeyUserID))
			return echo.NewHTTPError(http.StatusForbidden, "not enough rights")
		}
	}
}

func Claims(c echo.Context) (*tokens.AccessClaims, bool) {
	claims, ok := c.Get(ContextKeyClaims).(*tokens.AccessClaims)
	return claims, ok && claims != nil
}
