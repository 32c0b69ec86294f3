package postgres

import (
	"context"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// todoRepository implements the domain.TodoRepository interface using GORM.
type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository is the constructor for todoRepository.
func NewTodoRepository(db *gorm.DB) repository.TodoRepository {
	return &todoRepository{db: db}
}

// Create persists a new todo entity to the database.
func (repo *todoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	todoM := fromTodoDomain(todo)

	if err := repo.db.WithContext(ctx).Create(todoM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrTodoCreationFailed.WrapMessage("owning user does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrTodoCreationFailed.WrapMessage("status outside the allowed enumeration")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrTodoCreationFailed.WrapMessage("missing required todo information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create todo")
	}

	// Update the todo entity with the generated ID and timestamps
	todo.ID = todoM.ID
	todo.CreatedAt = todoM.CreatedAt
	todo.UpdatedAt = todoM.UpdatedAt

	return nil
}

// FindAll retrieves every todo, optionally restricted to a single status.
func (repo *todoRepository) FindAll(ctx context.Context, status *entity.Status) ([]*entity.Todo, error) {
	query := repo.db.WithContext(ctx).Model(&model.TodoModel{}).Order("id")
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var todoModels []*model.TodoModel
	if err := query.Find(&todoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find todos")
	}

	todos := make([]*entity.Todo, 0, len(todoModels))
	for _, todoM := range todoModels {
		todos = append(todos, toTodoDomain(todoM))
	}

	return todos, nil
}

// FindByID retrieves a single todo by its unique ID.
func (repo *todoRepository) FindByID(ctx context.Context, id int64) (*entity.Todo, error) {
	var todoM model.TodoModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&todoM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTodoNotFound
		}

		return nil, errors.Wrap(err, "failed to find todo by id")
	}

	return toTodoDomain(&todoM), nil
}

// Update modifies an existing todo entity in the database. The owning user id
// is deliberately never written; ownership is fixed at creation time.
func (repo *todoRepository) Update(ctx context.Context, todo *entity.Todo) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TodoModel{}).
		Where("id = ?", todo.ID).
		Updates(map[string]any{
			"name":        todo.Name,
			"description": todo.Description,
			"status":      string(todo.Status),
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrTodoUpdateFailed.WrapMessage("status outside the allowed enumeration")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update todo")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTodoNotFound
	}

	return nil
}

// Delete removes a todo by primary key. Hard delete, no soft-delete semantics.
func (repo *todoRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).Delete(&model.TodoModel{}, id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete todo")
	}

	return nil
}

// toTodoDomain converts a GORM TodoModel to a domain Todo entity.
func toTodoDomain(data *model.TodoModel) *entity.Todo {
	if data == nil {
		return nil
	}

	return &entity.Todo{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Status:      entity.Status(data.Status),
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromTodoDomain converts a domain Todo entity to a GORM TodoModel for persistence.
func fromTodoDomain(data *entity.Todo) *model.TodoModel {
	if data == nil {
		return nil
	}

	return &model.TodoModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Status:      string(data.Status),
		UserID:      data.UserID,
	}
}
