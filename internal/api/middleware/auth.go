package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/minesite/dispatch-form/internal/core/domain"
)

// SessionReader returns the user of the stored login session, or nil.
type SessionReader interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
}

// Auth validates the JWT and injects its claims into the context. A token is
// only honoured while the stored session still belongs to the same user, so a
// logout or a later login by someone else revokes it.
func Auth(jwtSecret string, sessions SessionReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				return []byte(jwtSecret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			username, _ := claims["username"].(string)
			role, _ := claims["role"].(string)
			if username == "" || role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			current, err := sessions.CurrentUser(c.Request().Context())
			if err != nil {
				return err
			}
			if current == nil || current.Username != username {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
			}

			c.Set("username", username)
			c.Set("role", role)

			return next(c)
		}
	}
}
