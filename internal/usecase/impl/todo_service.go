package impl

import (
	"context"
	"log/slog"

	deliverycontext "taskhub/internal/delivery/context"
	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/errors"
	"taskhub/internal/usecase"

	"go.uber.org/fx"
)

// defaultDescription is stored when a todo is created without one.
const defaultDescription = "no description"

// todoService implements the TodoUsecase interface.
type todoService struct {
	todoRepo repository.TodoRepository
	logger   *slog.Logger
}

// TodoServiceParams holds dependencies for todoService, injected by Fx.
type TodoServiceParams struct {
	fx.In

	TodoRepo repository.TodoRepository
	Logger   *slog.Logger
}

// NewTodoService is the constructor for todoService.
func NewTodoService(params TodoServiceParams) usecase.TodoUsecase {
	return &todoService{
		todoRepo: params.TodoRepo,
		logger:   params.Logger,
	}
}

func (srv *todoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new todo owned by the given user.
func (srv *todoService) Create(ctx context.Context, input *usecase.CreateTodoInput) (*entity.Todo, error) {
	description := input.Description
	if description == "" {
		description = defaultDescription
	}

	todo := &entity.Todo{
		Name:        input.Name,
		Description: description,
		Status:      input.Status,
		UserID:      input.UserID,
	}

	if err := srv.todoRepo.Create(ctx, todo); err != nil {
		srv.log(ctx).Error("Failed to create todo", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create todo")
	}

	srv.log(ctx).Debug("Todo created", slog.Int64("todoID", todo.ID), slog.Int64("userID", todo.UserID))

	return todo, nil
}

// List returns all todos, optionally restricted to one status.
func (srv *todoService) List(ctx context.Context, status *entity.Status) ([]*entity.Todo, error) {
	todos, err := srv.todoRepo.FindAll(ctx, status)
	if err != nil {
		srv.log(ctx).Error("Failed to list todos", slog.Any("error", err))

		return nil, domainerrors.ErrTodoQueryFailed.WrapMessage(err.Error())
	}

	return todos, nil
}

// FindByID returns a single todo or a not-found error carrying the id.
func (srv *todoService) FindByID(ctx context.Context, id int64) (*entity.Todo, error) {
	todo, err := srv.todoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return nil, domainerrors.ErrTodoNotFound(id)
		}

		return nil, domainerrors.ErrTodoQueryFailed.WrapMessage(err.Error())
	}

	return todo, nil
}

// Update applies a partial update: empty input fields retain the stored value.
func (srv *todoService) Update(ctx context.Context, id int64, input *usecase.UpdateTodoInput) (*entity.Todo, error) {
	todo, err := srv.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		todo.Name = input.Name
	}
	if input.Description != "" {
		todo.Description = input.Description
	}
	if input.Status != "" {
		todo.Status = input.Status
	}

	if err := srv.todoRepo.Update(ctx, todo); err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return nil, domainerrors.ErrTodoNotFound(id)
		}

		srv.log(ctx).Error("Failed to update todo", slog.Int64("todoID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update todo")
	}

	// Re-read so the caller sees the stored timestamps.
	return srv.FindByID(ctx, id)
}

// Delete removes a todo by primary key. Existence is checked by the caller;
// deleting an absent id is not an error at this layer.
func (srv *todoService) Delete(ctx context.Context, id int64) error {
	if err := srv.todoRepo.Delete(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete todo", slog.Int64("todoID", id), slog.Any("error", err))

		return domainerrors.ErrTodoDeleteFailed.WrapMessage(err.Error())
	}

	return nil
}
