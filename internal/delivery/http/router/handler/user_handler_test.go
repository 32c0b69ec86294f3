package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskhub/internal/delivery/http/middleware"
	"taskhub/internal/delivery/http/validator"
	domainerrors "taskhub/internal/domain/errors"
	mockUC "taskhub/internal/mocks/usecase"
	"taskhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUserHandler_SignUp(t *testing.T) {
	t.Run("creates the user and returns 201 with a success message", func(t *testing.T) {
		uc := mockUC.NewMockUserUsecase(t)
		uc.On("SignUp", mock.Anything, &usecase.SignUpInput{
			Email:    "alice@example.com",
			Password: "secret",
		}).Return(nil)

		c, rec := newTestContext(t, http.MethodPost, "/signup",
			`{"email":"alice@example.com","password":"secret"}`)

		require.NoError(t, NewUserHandler(uc).SignUp(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"success":"new user created succesfully"}`, rec.Body.String())
	})

	t.Run("rejects a request missing the password", func(t *testing.T) {
		uc := mockUC.NewMockUserUsecase(t)
		c, _ := newTestContext(t, http.MethodPost, "/signup", `{"email":"alice@example.com"}`)

		err := NewUserHandler(uc).SignUp(c)

		assert.ErrorIs(t, err, domainerrors.ErrEmailOrPasswordMissing)
	})

	t.Run("rejects a malformed email address", func(t *testing.T) {
		uc := mockUC.NewMockUserUsecase(t)
		c, _ := newTestContext(t, http.MethodPost, "/signup",
			`{"email":"not-an-email","password":"secret"}`)

		err := NewUserHandler(uc).SignUp(c)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidEmail)
	})
}

func TestUserHandler_SignIn(t *testing.T) {
	t.Run("returns the issued token", func(t *testing.T) {
		uc := mockUC.NewMockUserUsecase(t)
		uc.On("SignIn", mock.Anything, &usecase.SignInInput{
			Email:    "alice@example.com",
			Password: "secret",
		}).Return(&usecase.SignInOutput{Token: "signed-token"}, nil)

		c, rec := newTestContext(t, http.MethodPost, "/signin",
			`{"email":"alice@example.com","password":"secret"}`)

		require.NoError(t, NewUserHandler(uc).SignIn(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"token":"signed-token"}`, rec.Body.String())
	})

	t.Run("rejects a request missing both fields", func(t *testing.T) {
		uc := mockUC.NewMockUserUsecase(t)
		c, _ := newTestContext(t, http.MethodPost, "/signin", "")

		err := NewUserHandler(uc).SignIn(c)

		assert.ErrorIs(t, err, domainerrors.ErrEmailOrPasswordMissing)
	})

	t.Run("propagates usecase errors untouched", func(t *testing.T) {
		uc := mockUC.NewMockUserUsecase(t)
		uc.On("SignIn", mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrPasswordIncorrect)

		c, _ := newTestContext(t, http.MethodPost, "/signin",
			`{"email":"alice@example.com","password":"wrong"}`)

		err := NewUserHandler(uc).SignIn(c)

		assert.ErrorIs(t, err, domainerrors.ErrPasswordIncorrect)
	})
}

func TestUserHandler_ChangePassword(t *testing.T) {
	t.Run("changes the password for the authenticated user", func(t *testing.T) {
		uc := mockUC.NewMockUserUsecase(t)
		uc.On("ChangePassword", mock.Anything, int64(7), &usecase.ChangePasswordInput{
			Password:    "old",
			NewPassword: "new",
		}).Return(nil)

		c, rec := newTestContext(t, http.MethodPut, "/changepassword",
			`{"password":"old","newPassword":"new"}`)
		c.Set(middleware.ContextKeyUserID, int64(7))

		require.NoError(t, NewUserHandler(uc).ChangePassword(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":"password changed succesfully"}`, rec.Body.String())
	})

	t.Run("rejects a request missing either password", func(t *testing.T) {
		uc := mockUC.NewMockUserUsecase(t)
		c, _ := newTestContext(t, http.MethodPut, "/changepassword", `{"password":"old"}`)
		c.Set(middleware.ContextKeyUserID, int64(7))

		err := NewUserHandler(uc).ChangePassword(c)

		assert.ErrorIs(t, err, domainerrors.ErrChangePasswordMissing)
	})

	t.Run("rejects reuse of the current password", func(t *testing.T) {
		uc := mockUC.NewMockUserUsecase(t)
		c, _ := newTestContext(t, http.MethodPut, "/changepassword",
			`{"password":"same","newPassword":"same"}`)
		c.Set(middleware.ContextKeyUserID, int64(7))

		err := NewUserHandler(uc).ChangePassword(c)

		assert.ErrorIs(t, err, domainerrors.ErrPasswordUnchanged)
	})
}
