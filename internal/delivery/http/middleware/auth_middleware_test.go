package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mockSvc "taskhub/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, authHeader string, tokenSvc *mockSvc.MockTokenService) (*httptest.ResponseRecorder, bool, int64) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var reachedNext bool
	var seenUserID int64
	next := func(c echo.Context) error {
		reachedNext = true
		seenUserID, _ = UserID(c)

		return nil
	}

	require.NoError(t, NewAuthMiddleware(tokenSvc).Authenticate(next)(c))

	return rec, reachedNext, seenUserID
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("passes a valid bearer token through with the user id", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.On("Verify", "good-token").Return(int64(7), nil)

		_, reachedNext, userID := runAuthenticate(t, "Bearer good-token", tokenSvc)

		assert.True(t, reachedNext)
		assert.Equal(t, int64(7), userID)
	})

	t.Run("accepts a lowercase scheme prefix", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.On("Verify", "good-token").Return(int64(7), nil)

		_, reachedNext, _ := runAuthenticate(t, "bearer good-token", tokenSvc)

		assert.True(t, reachedNext)
	})

	t.Run("rejects a request without a token", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)

		rec, reachedNext, _ := runAuthenticate(t, "", tokenSvc)

		assert.False(t, reachedNext)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"authorization token missing or invalid"}`, rec.Body.String())
	})

	t.Run("rejects a header without the bearer scheme", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)

		rec, reachedNext, _ := runAuthenticate(t, "Basic abc123", tokenSvc)

		assert.False(t, reachedNext)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a token the verifier refuses", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.On("Verify", "bad-token").Return(int64(0), errors.New("token has invalid claims"))

		rec, reachedNext, _ := runAuthenticate(t, "Bearer bad-token", tokenSvc)

		assert.False(t, reachedNext)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"token has invalid claims"}`, rec.Body.String())
	})
}
