package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "taskhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func runErrorHandler(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	NewErrorMiddleware(logger).HandleHTTPError(err, c)

	return rec
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	t.Run("maps a domain error to its status and message", func(t *testing.T) {
		rec := runErrorHandler(t, domainerrors.ErrNoTodosFound)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"no todos found"}`, rec.Body.String())
	})

	t.Run("unwraps a domain error carried inside a stack wrapper", func(t *testing.T) {
		rec := runErrorHandler(t, errors.WithStack(domainerrors.ErrNotTodoOwner(3)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"you are not the owner of todo id 3"}`, rec.Body.String())
	})

	t.Run("passes echo's own HTTP errors through", func(t *testing.T) {
		rec := runErrorHandler(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.JSONEq(t, `{"error":"Method Not Allowed"}`, rec.Body.String())
	})

	t.Run("turns anything else into a 500 carrying the message", func(t *testing.T) {
		rec := runErrorHandler(t, errors.New("connection reset"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"connection reset"}`, rec.Body.String())
	})
}
