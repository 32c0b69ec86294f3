package middleware

import (
	"net/http"
	"strings"

	"taskhub/internal/delivery/http/response"
	"taskhub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is the echo.Context key under which the authenticated
// user identifier is stored.
const ContextKeyUserID = "userID"

const bearerPrefix = "bearer "

// AuthMiddleware provides middleware for bearer-token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and attaches the resolved user id
// to the request context. It is the only gate between an anonymous and an
// identified request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		// The scheme prefix is matched case-insensitively.
		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return response.Error(c, http.StatusUnauthorized, "authorization token missing or invalid")
		}

		userID, err := m.tokenSvc.Verify(authHeader[len(bearerPrefix):])
		if err != nil {
			return response.Error(c, http.StatusUnauthorized, err.Error())
		}

		c.Set(ContextKeyUserID, userID)

		return next(c)
	}
}

// UserID extracts the authenticated user identifier set by Authenticate.
func UserID(c echo.Context) (int64, bool) {
	userID, ok := c.Get(ContextKeyUserID).(int64)

	return userID, ok
}
