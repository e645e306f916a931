package service

import (
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/poketrainer/backend-go/internal/database/models"
	"github.com/poketrainer/backend-go/internal/database/repository"
)

// UserService defines the interface for user business logic
type UserService interface {
	ListUsers() ([]models.User, error)
	GetUser(userID uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	CreateUser(name, email, password string) (*models.User, error)
	UpdateUser(userID uint, update UserUpdate) (*models.User, error)
	DeleteUser(userID uint) error
}

// UserUpdate carries the partial fields of an update request.
// Nil fields are left untouched; id and created_at are never updatable.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
}

type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *userService) ListUsers() ([]models.User, error) {
	return s.userRepo.FindAll()
}

func (s *userService) GetUser(userID uint) (*models.User, error) {
	return s.userRepo.FindByID(userID)
}

func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	return s.userRepo.FindByEmail(email)
}

func (s *userService) CreateUser(name, email, password string) (*models.User, error) {
	s.logger.Info("📝 [UserService] Creating user", "email", email)

	// Check if email already exists
	existingUser, err := s.userRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		s.logger.Error("❌ [UserService] Database error", "error", err)
		return nil, err
	}

	if existingUser != nil {
		s.logger.Warn("⚠️ [UserService] Email already in use", "email", email)
		return nil, ErrEmailAlreadyExists
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("❌ [UserService] Failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		// Two concurrent creates can both pass the pre-check; the unique
		// index on email decides, and the loser surfaces as a conflict
		if errors.Is(err, repository.ErrDuplicateEmail) {
			s.logger.Warn("⚠️ [UserService] Email already in use", "email", email)
			return nil, ErrEmailAlreadyExists
		}
		s.logger.Error("❌ [UserService] Failed to create user", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [UserService] User created", "user_id", user.ID)
	return user, nil
}

func (s *userService) UpdateUser(userID uint, update UserUpdate) (*models.User, error) {
	s.logger.Info("📝 [UserService] Updating user", "user_id", userID)

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if update.Email != nil && *update.Email != user.Email {
		existing, err := s.userRepo.FindByEmail(*update.Email)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Error("❌ [UserService] Database error", "error", err)
			return nil, err
		}
		if existing != nil {
			s.logger.Warn("⚠️ [UserService] Email already in use", "email", *update.Email)
			return nil, ErrEmailAlreadyExists
		}
		user.Email = *update.Email
	}

	if update.Name != nil {
		user.Name = *update.Name
	}

	if update.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("❌ [UserService] Failed to hash password", "error", err)
			return nil, err
		}
		user.Password = string(hashedPassword)
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyExists
		}
		s.logger.Error("❌ [UserService] Failed to update user", "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Info("✅ [UserService] User updated", "user_id", userID)
	return user, nil
}

func (s *userService) DeleteUser(userID uint) error {
	s.logger.Info("🗑️ [UserService] Deleting user", "user_id", userID)

	if err := s.userRepo.Delete(userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Warn("⚠️ [UserService] User not found", "user_id", userID)
		} else {
			s.logger.Error("❌ [UserService] Failed to delete user", "user_id", userID, "error", err)
		}
		return err
	}

	s.logger.Info("✅ [UserService] User deleted", "user_id", userID)
	return nil
}

// Service errors
var (
	ErrEmailAlreadyExists = errors.New("email already in use")
)
