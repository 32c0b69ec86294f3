package repository

import (
	"context"

	"taskhub/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockTodoRepository is a testify mock for repository.TodoRepository.
type MockTodoRepository struct {
	mock.Mock
}

func NewMockTodoRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTodoRepository {
	m := &MockTodoRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTodoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	args := m.Called(ctx, todo)

	return args.Error(0)
}

func (m *MockTodoRepository) FindAll(ctx context.Context, status *entity.Status) ([]*entity.Todo, error) {
	args := m.Called(ctx, status)

	todos, _ := args.Get(0).([]*entity.Todo)

	return todos, args.Error(1)
}

func (m *MockTodoRepository) FindByID(ctx context.Context, id int64) (*entity.Todo, error) {
	args := m.Called(ctx, id)

	todo, _ := args.Get(0).(*entity.Todo)

	return todo, args.Error(1)
}

func (m *MockTodoRepository) Update(ctx context.Context, todo *entity.Todo) error {
	args := m.Called(ctx, todo)

	return args.Error(0)
}

func (m *MockTodoRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
