// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"taskhub/internal/delivery/http/middleware"
	"taskhub/internal/delivery/http/response"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// SignUp handles the user registration request.
func (h *UserHandler) SignUp(c echo.Context) error {
	var input usecase.SignUpInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrEmailOrPasswordMissing
	}

	if input.Email == "" || input.Password == "" {
		return domainerrors.ErrEmailOrPasswordMissing
	}

	// The email format is checked before the usecase is ever reached.
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrInvalidEmail
	}

	if err := h.uc.SignUp(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	// The created record and its hash never leave the server.
	return response.Success(c, http.StatusCreated, "new user created succesfully")
}

// SignIn handles the login request and returns a bearer token.
func (h *UserHandler) SignIn(c echo.Context) error {
	var input usecase.SignInInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrEmailOrPasswordMissing
	}

	if input.Email == "" || input.Password == "" {
		return domainerrors.ErrEmailOrPasswordMissing
	}

	output, err := h.uc.SignIn(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, echo.Map{"token": output.Token})
}

// ChangePassword rotates the authenticated user's password.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	var input usecase.ChangePasswordInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrChangePasswordMissing
	}

	if input.Password == "" || input.NewPassword == "" {
		return domainerrors.ErrChangePasswordMissing
	}

	if input.Password == input.NewPassword {
		return domainerrors.ErrPasswordUnchanged
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	if err := h.uc.ChangePassword(c.Request().Context(), userID, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "password changed succesfully")
}
