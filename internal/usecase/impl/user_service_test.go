package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	mockRepo "taskhub/internal/mocks/repository"
	mockSvc "taskhub/internal/mocks/service"
	"taskhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_SignUp(t *testing.T) {
	t.Run("hashes the password and stores a new user", func(t *testing.T) {
		f := createTestUserService(t)

		f.hasher.On("Hash", "secret").Return("hashed-secret", nil)
		f.userRepo.On("Create", context.Background(), &entity.User{
			Email:        "alice@example.com",
			PasswordHash: "hashed-secret",
		}).Return(nil)

		err := f.service.SignUp(context.Background(), &usecase.SignUpInput{
			Email:    "alice@example.com",
			Password: "secret",
		})

		require.NoError(t, err)
	})

	t.Run("returns a hashing failure as a 500 error", func(t *testing.T) {
		f := createTestUserService(t)

		f.hasher.On("Hash", "secret").Return("", errors.New("cost out of range"))

		err := f.service.SignUp(context.Background(), &usecase.SignUpInput{
			Email:    "alice@example.com",
			Password: "secret",
		})

		require.Error(t, err)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 500, appErr.HTTPCode())
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		f := createTestUserService(t)

		f.hasher.On("Hash", "secret").Return("hashed-secret", nil)
		f.userRepo.On("Create", context.Background(), &entity.User{
			Email:        "alice@example.com",
			PasswordHash: "hashed-secret",
		}).Return(domainerrors.ErrUserCreationFailed)

		err := f.service.SignUp(context.Background(), &usecase.SignUpInput{
			Email:    "alice@example.com",
			Password: "secret",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrUserCreationFailed)
	})
}

func TestUserService_SignIn(t *testing.T) {
	t.Run("returns a token for a valid credential", func(t *testing.T) {
		f := createTestUserService(t)

		f.userRepo.On("FindByEmail", context.Background(), "alice@example.com").Return(&entity.User{
			ID:           7,
			Email:        "alice@example.com",
			PasswordHash: "hashed-secret",
		}, nil)
		f.hasher.On("Check", "secret", "hashed-secret").Return(true)
		f.tokenService.On("Issue", int64(7)).Return("signed-token", nil)

		out, err := f.service.SignIn(context.Background(), &usecase.SignInInput{
			Email:    "alice@example.com",
			Password: "secret",
		})

		require.NoError(t, err)
		assert.Equal(t, "signed-token", out.Token)
	})

	t.Run("maps an unknown email to a 404 naming the address", func(t *testing.T) {
		f := createTestUserService(t)

		f.userRepo.On("FindByEmail", context.Background(), "ghost@example.com").
			Return(nil, repository.ErrUserNotFound)

		out, err := f.service.SignIn(context.Background(), &usecase.SignInInput{
			Email:    "ghost@example.com",
			Password: "secret",
		})

		require.Error(t, err)
		assert.Nil(t, out)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.HTTPCode())
		assert.Equal(t, "user with an email address ghost@example.com not found", appErr.Message())
	})

	t.Run("rejects a wrong password with 403", func(t *testing.T) {
		f := createTestUserService(t)

		f.userRepo.On("FindByEmail", context.Background(), "alice@example.com").Return(&entity.User{
			ID:           7,
			Email:        "alice@example.com",
			PasswordHash: "hashed-secret",
		}, nil)
		f.hasher.On("Check", "wrong", "hashed-secret").Return(false)

		out, err := f.service.SignIn(context.Background(), &usecase.SignInInput{
			Email:    "alice@example.com",
			Password: "wrong",
		})

		require.Error(t, err)
		assert.Nil(t, out)
		assert.ErrorIs(t, err, domainerrors.ErrPasswordIncorrect)
	})

	t.Run("surfaces token signing failures as 500", func(t *testing.T) {
		f := createTestUserService(t)

		f.userRepo.On("FindByEmail", context.Background(), "alice@example.com").Return(&entity.User{
			ID:           7,
			Email:        "alice@example.com",
			PasswordHash: "hashed-secret",
		}, nil)
		f.hasher.On("Check", "secret", "hashed-secret").Return(true)
		f.tokenService.On("Issue", int64(7)).Return("", errors.New("key unavailable"))

		out, err := f.service.SignIn(context.Background(), &usecase.SignInInput{
			Email:    "alice@example.com",
			Password: "secret",
		})

		require.Error(t, err)
		assert.Nil(t, out)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 500, appErr.HTTPCode())
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	storedUser := &entity.User{
		ID:           7,
		Email:        "alice@example.com",
		PasswordHash: "hashed-old",
	}

	t.Run("rotates the password after verifying the current one", func(t *testing.T) {
		f := createTestUserService(t)

		f.userRepo.On("FindByID", context.Background(), int64(7)).Return(storedUser, nil)
		f.hasher.On("Check", "old", "hashed-old").Return(true)
		f.hasher.On("Hash", "new").Return("hashed-new", nil)
		f.userRepo.On("UpdatePassword", context.Background(), int64(7), "hashed-new").Return(nil)

		err := f.service.ChangePassword(context.Background(), 7, &usecase.ChangePasswordInput{
			Password:    "old",
			NewPassword: "new",
		})

		require.NoError(t, err)
	})

	t.Run("maps an unknown id to a 404 naming the id", func(t *testing.T) {
		f := createTestUserService(t)

		f.userRepo.On("FindByID", context.Background(), int64(99)).
			Return(nil, repository.ErrUserNotFound)

		err := f.service.ChangePassword(context.Background(), 99, &usecase.ChangePasswordInput{
			Password:    "old",
			NewPassword: "new",
		})

		require.Error(t, err)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.HTTPCode())
		assert.Equal(t, "user with an id 99 not found", appErr.Message())
	})

	t.Run("rejects a wrong current password with 403", func(t *testing.T) {
		f := createTestUserService(t)

		f.userRepo.On("FindByID", context.Background(), int64(7)).Return(storedUser, nil)
		f.hasher.On("Check", "wrong", "hashed-old").Return(false)

		err := f.service.ChangePassword(context.Background(), 7, &usecase.ChangePasswordInput{
			Password:    "wrong",
			NewPassword: "new",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrCurrentPasswordIncorrect)
	})

	t.Run("maps an update failure to a 500 error", func(t *testing.T) {
		f := createTestUserService(t)

		f.userRepo.On("FindByID", context.Background(), int64(7)).Return(storedUser, nil)
		f.hasher.On("Check", "old", "hashed-old").Return(true)
		f.hasher.On("Hash", "new").Return("hashed-new", nil)
		f.userRepo.On("UpdatePassword", context.Background(), int64(7), "hashed-new").
			Return(errors.New("connection reset"))

		err := f.service.ChangePassword(context.Background(), 7, &usecase.ChangePasswordInput{
			Password:    "old",
			NewPassword: "new",
		})

		require.Error(t, err)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 500, appErr.HTTPCode())
	})
}
