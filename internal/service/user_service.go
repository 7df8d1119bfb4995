package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Cladkoewka/ToDoListAPI/internal/event"
	"github.com/Cladkoewka/ToDoListAPI/internal/model"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository defines the persistence operations users need.
// Lookups return (nil, nil) when no row matches.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (*model.User, error)
	GetAll(ctx context.Context) ([]model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, user *model.User) error
}

// UserService handles user business operations
type UserService struct {
	userRepo  UserRepository
	publisher EventPublisher
	topic     string
	logger    *zap.Logger
}

// NewUserService creates a new user service. The publisher may be nil when
// event publishing is disabled.
func NewUserService(userRepo UserRepository, publisher EventPublisher, topic string, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo:  userRepo,
		publisher: publisher,
		topic:     topic,
		logger:    logger,
	}
}

// GetAllUsers retrieves all users
func (s *UserService) GetAllUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.GetAll(ctx)
}

// GetUserByID retrieves a specific user by ID
func (s *UserService) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, fmt.Errorf("user %w", ErrNotFound)
	}

	return user, nil
}

// GetUserByEmail retrieves a specific user by email
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	email = strings.TrimSpace(email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, fmt.Errorf("user %w", ErrNotFound)
	}

	return user, nil
}

// CreateUser registers a new user after checking the email is free.
// The password is hashed before anything is persisted.
func (s *UserService) CreateUser(ctx context.Context, create model.UserCreate) (*model.User, error) {
	create.Username = strings.TrimSpace(create.Username)
	create.Email = strings.TrimSpace(create.Email)
	if create.Username == "" {
		return nil, fmt.Errorf("%w: username cannot be empty", ErrInvalidInput)
	}
	if create.Email == "" {
		return nil, fmt.Errorf("%w: email cannot be empty", ErrInvalidInput)
	}

	existing, err := s.userRepo.GetByEmail(ctx, create.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email %w", ErrAlreadyExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(create.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	user := model.NewUserFromCreate(create, string(hash))
	if err := s.userRepo.Create(ctx, &user); err != nil {
		// The unique constraint on email catches races past the check.
		if isDuplicateKey(err) {
			return nil, fmt.Errorf("email %w", ErrAlreadyExists)
		}
		return nil, err
	}

	s.logger.Info("user created", zap.Int("id", user.ID), zap.String("email", user.Email))
	s.publish(ctx, event.UserCreated, user.ID)

	return &user, nil
}

// UpdateUser updates an existing user
func (s *UserService) UpdateUser(ctx context.Context, id int, update model.UserUpdate) (*model.User, error) {
	if update.Username != nil {
		trimmed := strings.TrimSpace(*update.Username)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: username cannot be empty", ErrInvalidInput)
		}
		update.Username = &trimmed
	}
	if update.Email != nil {
		trimmed := strings.TrimSpace(*update.Email)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: email cannot be empty", ErrInvalidInput)
		}
		update.Email = &trimmed
	}

	existing, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("user %w", ErrNotFound)
	}

	updated := existing.WithUpdate(update)
	if err := s.userRepo.Update(ctx, &updated); err != nil {
		if isDuplicateKey(err) {
			return nil, fmt.Errorf("email %w", ErrAlreadyExists)
		}
		return nil, err
	}

	s.publish(ctx, event.UserUpdated, id)

	return &updated, nil
}

// DeleteUser deletes an existing user
func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	existing, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("user %w", ErrNotFound)
	}

	if err := s.userRepo.Delete(ctx, existing); err != nil {
		return err
	}

	s.logger.Info("user deleted", zap.Int("id", id), zap.String("email", existing.Email))
	s.publish(ctx, event.UserDeleted, id)

	return nil
}

// publish emits a lifecycle event. Publishing is best effort: failures are
// logged and never fail the request.
func (s *UserService) publish(ctx context.Context, eventType string, id int) {
	if s.publisher == nil {
		return
	}

	evt := event.New(eventType, id)
	if err := s.publisher.Publish(ctx, s.topic, strconv.Itoa(id), evt); err != nil {
		s.logger.Warn("failed to publish user event",
			zap.String("type", eventType),
			zap.Int("id", id),
			zap.Error(err),
		)
	}
}
