// Package usecase contains testify mocks for the usecase interfaces consumed
// by the delivery layer.
package usecase

import (
	"context"

	"taskhub/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockUserUsecase is a testify mock for usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

func NewMockUserUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserUsecase {
	m := &MockUserUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserUsecase) SignUp(ctx context.Context, input *usecase.SignUpInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

func (m *MockUserUsecase) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	args := m.Called(ctx, input)

	output, _ := args.Get(0).(*usecase.SignInOutput)

	return output, args.Error(1)
}

func (m *MockUserUsecase) ChangePassword(ctx context.Context, userID int64, input *usecase.ChangePasswordInput) error {
	args := m.Called(ctx, userID, input)

	return args.Error(0)
}
