package repository

import (
	"context"
	"errors"

	"taskhub/internal/domain/entity"
)

// ErrTodoNotFound is a domain-specific error returned when a todo is not found.
var ErrTodoNotFound = errors.New("todo not found")

// TodoRepository defines the standard operations for todo persistence.
type TodoRepository interface {
	// Create persists a new todo entity to the storage.
	Create(ctx context.Context, todo *entity.Todo) error

	// FindAll retrieves every todo, optionally restricted to a single status.
	// A nil status means no filtering. An empty result is not an error.
	FindAll(ctx context.Context, status *entity.Status) ([]*entity.Todo, error)

	// FindByID retrieves a single todo by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Todo, error)

	// Update modifies an existing todo entity in the storage.
	Update(ctx context.Context, todo *entity.Todo) error

	// Delete removes a todo by primary key. Deleting an absent id is not an
	// error at this layer; callers verify existence first.
	Delete(ctx context.Context, id int64) error
}
