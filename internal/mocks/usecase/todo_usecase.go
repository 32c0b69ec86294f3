package usecase

import (
	"context"

	"taskhub/internal/domain/entity"
	"taskhub/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockTodoUsecase is a testify mock for usecase.TodoUsecase.
type MockTodoUsecase struct {
	mock.Mock
}

func NewMockTodoUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTodoUsecase {
	m := &MockTodoUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTodoUsecase) Create(ctx context.Context, input *usecase.CreateTodoInput) (*entity.Todo, error) {
	args := m.Called(ctx, input)

	todo, _ := args.Get(0).(*entity.Todo)

	return todo, args.Error(1)
}

func (m *MockTodoUsecase) List(ctx context.Context, status *entity.Status) ([]*entity.Todo, error) {
	args := m.Called(ctx, status)

	todos, _ := args.Get(0).([]*entity.Todo)

	return todos, args.Error(1)
}

func (m *MockTodoUsecase) FindByID(ctx context.Context, id int64) (*entity.Todo, error) {
	args := m.Called(ctx, id)

	todo, _ := args.Get(0).(*entity.Todo)

	return todo, args.Error(1)
}

func (m *MockTodoUsecase) Update(ctx context.Context, id int64, input *usecase.UpdateTodoInput) (*entity.Todo, error) {
	args := m.Called(ctx, id, input)

	todo, _ := args.Get(0).(*entity.Todo)

	return todo, args.Error(1)
}

func (m *MockTodoUsecase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
