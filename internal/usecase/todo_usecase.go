package usecase

import (
	"context"

	"taskhub/internal/domain/entity"
)

// CreateTodoInput defines the data required to create a todo. Status has
// already been validated against the enumeration by the delivery layer.
type CreateTodoInput struct {
	Name        string
	Description string
	Status      entity.Status
	UserID      int64
}

// UpdateTodoInput defines a partial update. Empty fields retain the stored value.
type UpdateTodoInput struct {
	Name        string
	Description string
	Status      entity.Status
}

// TodoUsecase defines the interface for todo-related business operations.
type TodoUsecase interface {
	// Create persists a new todo owned by the given user.
	Create(ctx context.Context, input *CreateTodoInput) (*entity.Todo, error)

	// List returns all todos, optionally restricted to one status. The
	// listing is deliberately not scoped to the caller.
	List(ctx context.Context, status *entity.Status) ([]*entity.Todo, error)

	// FindByID returns a single todo or a not-found error carrying the id.
	FindByID(ctx context.Context, id int64) (*entity.Todo, error)

	// Update applies a partial update to an existing todo.
	Update(ctx context.Context, id int64, input *UpdateTodoInput) (*entity.Todo, error)

	// Delete removes a todo by primary key.
	Delete(ctx context.Context, id int64) error
}
