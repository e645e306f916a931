package service_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/poketrainer/backend-go/internal/database/models"
	"github.com/poketrainer/backend-go/internal/database/repository"
	"github.com/poketrainer/backend-go/internal/database/service"
	"github.com/poketrainer/backend-go/internal/testutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUserService_CreateUser(t *testing.T) {
	t.Run("success with fresh email", func(t *testing.T) {
		userRepo := new(testutil.MockUserRepository)
		svc := service.NewUserService(userRepo, testLogger())

		userRepo.On("FindByEmail", "trainer@test.com").Return(nil, repository.ErrUserNotFound)
		userRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
			args.Get(0).(*models.User).ID = 1
		}).Return(nil)

		user, err := svc.CreateUser("Trainer", "trainer@test.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
		assert.Equal(t, "trainer@test.com", user.Email)

		// Password is stored hashed, never raw
		assert.NotEqual(t, "secret123", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))

		userRepo.AssertExpectations(t)
	})

	t.Run("conflict on existing email", func(t *testing.T) {
		userRepo := new(testutil.MockUserRepository)
		svc := service.NewUserService(userRepo, testLogger())

		userRepo.On("FindByEmail", "trainer@test.com").Return(&models.User{ID: 1, Email: "trainer@test.com"}, nil)

		user, err := svc.CreateUser("Trainer", "trainer@test.com", "secret123")
		assert.ErrorIs(t, err, service.ErrEmailAlreadyExists)
		assert.Nil(t, user)

		// No insert is attempted
		userRepo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("conflict when the unique index rejects a raced insert", func(t *testing.T) {
		userRepo := new(testutil.MockUserRepository)
		svc := service.NewUserService(userRepo, testLogger())

		userRepo.On("FindByEmail", "trainer@test.com").Return(nil, repository.ErrUserNotFound)
		userRepo.On("Create", mock.AnythingOfType("*models.User")).Return(repository.ErrDuplicateEmail)

		_, err := svc.CreateUser("Trainer", "trainer@test.com", "secret123")
		assert.ErrorIs(t, err, service.ErrEmailAlreadyExists)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	name := "New Name"
	email := "new@test.com"
	password := "newsecret"

	t.Run("user not found", func(t *testing.T) {
		userRepo := new(testutil.MockUserRepository)
		svc := service.NewUserService(userRepo, testLogger())

		userRepo.On("FindByID", uint(999)).Return(nil, repository.ErrUserNotFound)

		_, err := svc.UpdateUser(999, service.UserUpdate{Name: &name})
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		userRepo := new(testutil.MockUserRepository)
		svc := service.NewUserService(userRepo, testLogger())

		existing := &models.User{ID: 1, Name: "Old Name", Email: "old@test.com", Password: "oldhash"}
		userRepo.On("FindByID", uint(1)).Return(existing, nil)
		userRepo.On("Update", mock.AnythingOfType("*models.User")).Return(nil)

		user, err := svc.UpdateUser(1, service.UserUpdate{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "New Name", user.Name)
		assert.Equal(t, "old@test.com", user.Email)
		assert.Equal(t, "oldhash", user.Password)
	})

	t.Run("email change to a taken address conflicts", func(t *testing.T) {
		userRepo := new(testutil.MockUserRepository)
		svc := service.NewUserService(userRepo, testLogger())

		existing := &models.User{ID: 1, Name: "Trainer", Email: "old@test.com", Password: "oldhash"}
		userRepo.On("FindByID", uint(1)).Return(existing, nil)
		userRepo.On("FindByEmail", "new@test.com").Return(&models.User{ID: 2, Email: "new@test.com"}, nil)

		_, err := svc.UpdateUser(1, service.UserUpdate{Email: &email})
		assert.ErrorIs(t, err, service.ErrEmailAlreadyExists)
		userRepo.AssertNotCalled(t, "Update", mock.Anything)
	})

	t.Run("password is re-hashed", func(t *testing.T) {
		userRepo := new(testutil.MockUserRepository)
		svc := service.NewUserService(userRepo, testLogger())

		existing := &models.User{ID: 1, Name: "Trainer", Email: "old@test.com", Password: "oldhash"}
		userRepo.On("FindByID", uint(1)).Return(existing, nil)
		userRepo.On("Update", mock.AnythingOfType("*models.User")).Return(nil)

		user, err := svc.UpdateUser(1, service.UserUpdate{Password: &password})
		require.NoError(t, err)
		assert.NotEqual(t, "newsecret", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("newsecret")))
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		userRepo := new(testutil.MockUserRepository)
		svc := service.NewUserService(userRepo, testLogger())

		userRepo.On("Delete", uint(1)).Return(nil)

		assert.NoError(t, svc.DeleteUser(1))
		userRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		userRepo := new(testutil.MockUserRepository)
		svc := service.NewUserService(userRepo, testLogger())

		userRepo.On("Delete", uint(999)).Return(repository.ErrUserNotFound)

		assert.ErrorIs(t, svc.DeleteUser(999), repository.ErrUserNotFound)
	})
}
