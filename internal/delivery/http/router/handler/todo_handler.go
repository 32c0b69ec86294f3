package handler

import (
	"net/http"
	"strconv"

	"taskhub/internal/delivery/http/middleware"
	"taskhub/internal/delivery/http/response"
	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TodoHandler holds dependencies for todo-related handlers.
type TodoHandler struct {
	uc usecase.TodoUsecase
}

// NewTodoHandler is the constructor for TodoHandler, injected by Fx.
func NewTodoHandler(uc usecase.TodoUsecase) *TodoHandler {
	return &TodoHandler{uc: uc}
}

type createTodoRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type updateTodoRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// List returns every stored todo, optionally narrowed by status.
func (h *TodoHandler) List(c echo.Context) error {
	var statusFilter *entity.Status
	if raw := c.QueryParam("status"); raw != "" {
		status, ok := entity.ParseStatus(raw)
		if !ok {
			return domainerrors.ErrIncorrectStatus()
		}
		statusFilter = &status
	}

	todos, err := h.uc.List(c.Request().Context(), statusFilter)
	if err != nil {
		return errors.WithStack(err)
	}

	if len(todos) == 0 {
		return domainerrors.ErrNoTodosFound
	}

	return response.JSON(c, http.StatusOK, todos)
}

// Create stores a new todo owned by the authenticated user.
func (h *TodoHandler) Create(c echo.Context) error {
	var req createTodoRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrNameOrStatusMissing
	}

	if req.Name == "" || req.Status == "" {
		return domainerrors.ErrNameOrStatusMissing
	}

	status, ok := entity.ParseStatus(req.Status)
	if !ok {
		return domainerrors.ErrIncorrectStatus()
	}

	userID, authed := middleware.UserID(c)
	if !authed {
		return domainerrors.ErrTokenMissing
	}

	todo, err := h.uc.Create(c.Request().Context(), &usecase.CreateTodoInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
		UserID:      userID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, todo)
}

// Update changes the fields of a todo owned by the authenticated user.
// The request shape and status enum are validated before the record is
// looked up, so a bad status wins over a missing or foreign id.
func (h *TodoHandler) Update(c echo.Context) error {
	todoID, err := parseTodoID(c)
	if err != nil {
		return err
	}

	var req updateTodoRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrNameOrStatusMissing
	}

	input := &usecase.UpdateTodoInput{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Status != "" {
		status, ok := entity.ParseStatus(req.Status)
		if !ok {
			return domainerrors.ErrIncorrectStatus()
		}
		input.Status = status
	}

	if _, err := h.resolveOwnedTodo(c, todoID); err != nil {
		return err
	}

	updated, err := h.uc.Update(c.Request().Context(), todoID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, updated)
}

// Delete removes a todo owned by the authenticated user.
func (h *TodoHandler) Delete(c echo.Context) error {
	todoID, err := parseTodoID(c)
	if err != nil {
		return err
	}

	if _, err := h.resolveOwnedTodo(c, todoID); err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), todoID); err != nil {
		return errors.WithStack(err)
	}

	return response.Empty(c, http.StatusOK)
}

// parseTodoID extracts the numeric id from the path.
func parseTodoID(c echo.Context) (int64, error) {
	todoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || todoID <= 0 {
		return 0, domainerrors.ErrTodoIDMissing
	}

	return todoID, nil
}

// resolveOwnedTodo loads the record and enforces that the caller owns it.
// Existence is checked before ownership so a stranger probing a missing id
// sees 404, not 401.
func (h *TodoHandler) resolveOwnedTodo(c echo.Context, todoID int64) (*entity.Todo, error) {
	todo, err := h.uc.FindByID(c.Request().Context(), todoID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		return nil, domainerrors.ErrTokenMissing
	}
	if todo.UserID != userID {
		return nil, domainerrors.ErrNotTodoOwner(todoID)
	}

	return todo, nil
}
