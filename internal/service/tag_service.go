package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Cladkoewka/ToDoListAPI/internal/model"

	"go.uber.org/zap"
)

// TagRepository defines the persistence operations tags need.
// Lookups return (nil, nil) when no row matches.
type TagRepository interface {
	GetByID(ctx context.Context, id int) (*model.Tag, error)
	GetAll(ctx context.Context) ([]model.Tag, error)
	GetByName(ctx context.Context, name string) (*model.Tag, error)
	GetByIDs(ctx context.Context, ids []int) ([]model.Tag, error)
	Create(ctx context.Context, tag *model.Tag) error
	Update(ctx context.Context, tag *model.Tag) error
	Delete(ctx context.Context, tag *model.Tag) error
}

// TagService handles tag business operations
type TagService struct {
	tagRepo TagRepository
	logger  *zap.Logger
}

// NewTagService creates a new tag service
func NewTagService(tagRepo TagRepository, logger *zap.Logger) *TagService {
	return &TagService{
		tagRepo: tagRepo,
		logger:  logger,
	}
}

// GetAllTags retrieves all tags
func (s *TagService) GetAllTags(ctx context.Context) ([]model.Tag, error) {
	return s.tagRepo.GetAll(ctx)
}

// GetTagByID retrieves a specific tag by ID
func (s *TagService) GetTagByID(ctx context.Context, id int) (*model.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if tag == nil {
		return nil, fmt.Errorf("tag %w", ErrNotFound)
	}

	return tag, nil
}

// CreateTag creates a new tag after checking the name is free
func (s *TagService) CreateTag(ctx context.Context, create model.TagCreate) (*model.Tag, error) {
	create.Name = strings.TrimSpace(create.Name)
	if err := validateTagName(create.Name); err != nil {
		return nil, err
	}

	existing, err := s.tagRepo.GetByName(ctx, create.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("tag name %w", ErrAlreadyExists)
	}

	tag := model.NewTagFromCreate(create)
	if err := s.tagRepo.Create(ctx, &tag); err != nil {
		// Races past the existence check end here, stopped by the
		// unique constraint on the name column.
		if isDuplicateKey(err) {
			return nil, fmt.Errorf("tag name %w", ErrAlreadyExists)
		}
		return nil, err
	}

	s.logger.Info("tag created", zap.Int("id", tag.ID), zap.String("name", tag.Name))

	return &tag, nil
}

// UpdateTag renames an existing tag
func (s *TagService) UpdateTag(ctx context.Context, id int, update model.TagUpdate) (*model.Tag, error) {
	update.Name = strings.TrimSpace(update.Name)
	if err := validateTagName(update.Name); err != nil {
		return nil, err
	}

	existing, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("tag %w", ErrNotFound)
	}

	updated := existing.WithUpdate(update)
	if err := s.tagRepo.Update(ctx, &updated); err != nil {
		if isDuplicateKey(err) {
			return nil, fmt.Errorf("tag name %w", ErrAlreadyExists)
		}
		return nil, err
	}

	return &updated, nil
}

// DeleteTag deletes an existing tag
func (s *TagService) DeleteTag(ctx context.Context, id int) error {
	existing, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("tag %w", ErrNotFound)
	}

	if err := s.tagRepo.Delete(ctx, existing); err != nil {
		return err
	}

	s.logger.Info("tag deleted", zap.Int("id", id), zap.String("name", existing.Name))

	return nil
}

func validateTagName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: tag name cannot be empty", ErrInvalidInput)
	}
	if len(name) > 50 {
		return fmt.Errorf("%w: tag name cannot exceed 50 characters", ErrInvalidInput)
	}
	return nil
}
