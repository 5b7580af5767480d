package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/vibast-solutions/ms-go-intent/app/service"
)

const (
	ContextKeyTokenOwner = "token_owner"

	// DevOwner is attributed to requests when authentication is disabled.
	DevOwner = "dev_user"
)

type AuthMiddleware struct {
	tokenService service.TokenService
	authEnabled  bool
}

func NewAuthMiddleware(tokenService service.TokenService, authEnabled bool) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService, authEnabled: authEnabled}
}

func (m *AuthMiddleware) RequireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// Let CORS preflight pass.
		if c.Request().Method == http.MethodOptions {
			return next(c)
		}

		if !m.authEnabled {
			c.Set(ContextKeyTokenOwner, DevOwner)
			return next(c)
		}

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			logrus.Debug("Missing authorization header")
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"error": "missing authorization header",
			})
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logrus.Debug("Invalid authorization header format")
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"error": "invalid authorization header format",
			})
		}

		owner, err := m.tokenService.Validate(c.Request().Context(), parts[1])
		if err != nil {
			// Unknown and expired tokens share one response so callers
			// cannot probe which secrets exist.
			if errors.Is(err, service.ErrTokenNotFound) || errors.Is(err, service.ErrTokenExpired) {
				logrus.Debug("Invalid or expired access token")
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "invalid or expired token",
				})
			}
			logrus.WithError(err).Error("Token validation failed")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "internal server error",
			})
		}

		c.Set(ContextKeyTokenOwner, owner)
		return next(c)
	}
}
