package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Cladkoewka/ToDoListAPI/internal/event"
	"github.com/Cladkoewka/ToDoListAPI/internal/model"

	"go.uber.org/zap"
)

// TaskRepository defines the persistence operations tasks need.
// Lookups return (nil, nil) when no row matches.
type TaskRepository interface {
	GetByID(ctx context.Context, id int) (*model.Task, error)
	GetAll(ctx context.Context) ([]model.Task, error)
	GetByTagIDs(ctx context.Context, tagIDs []int) ([]model.Task, error)
	Create(ctx context.Context, task *model.Task) error
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, task *model.Task) error
}

// TaskService handles task business operations
type TaskService struct {
	taskRepo  TaskRepository
	tagRepo   TagRepository
	publisher EventPublisher
	topic     string
	logger    *zap.Logger
}

// NewTaskService creates a new task service. The publisher may be nil when
// event publishing is disabled.
func NewTaskService(
	taskRepo TaskRepository,
	tagRepo TagRepository,
	publisher EventPublisher,
	topic string,
	logger *zap.Logger,
) *TaskService {
	return &TaskService{
		taskRepo:  taskRepo,
		tagRepo:   tagRepo,
		publisher: publisher,
		topic:     topic,
		logger:    logger,
	}
}

// GetAllTasks retrieves all tasks with their tags
func (s *TaskService) GetAllTasks(ctx context.Context) ([]model.Task, error) {
	return s.taskRepo.GetAll(ctx)
}

// GetTaskByID retrieves a specific task by ID
func (s *TaskService) GetTaskByID(ctx context.Context, id int) (*model.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if task == nil {
		return nil, fmt.Errorf("task %w", ErrNotFound)
	}

	return task, nil
}

// GetTasksByTagIDs retrieves tasks carrying at least one of the given tags
func (s *TaskService) GetTasksByTagIDs(ctx context.Context, tagIDs []int) ([]model.Task, error) {
	if len(tagIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one tag id is required", ErrInvalidInput)
	}

	return s.taskRepo.GetByTagIDs(ctx, tagIDs)
}

// CreateTask creates a new task, resolving its tag references first
func (s *TaskService) CreateTask(ctx context.Context, create model.TaskCreate) (*model.Task, error) {
	create.Title = strings.TrimSpace(create.Title)
	if err := validateTaskTitle(create.Title); err != nil {
		return nil, err
	}

	tags, err := s.resolveTags(ctx, create.TagIDs)
	if err != nil {
		return nil, err
	}

	task := model.NewTaskFromCreate(create)
	task.Tags = tags

	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}

	s.logger.Info("task created", zap.Int("id", task.ID), zap.String("title", task.Title))
	s.publish(ctx, event.TaskCreated, task.ID)

	return &task, nil
}

// UpdateTask updates an existing task
func (s *TaskService) UpdateTask(ctx context.Context, id int, update model.TaskUpdate) (*model.Task, error) {
	if update.Title != nil {
		trimmed := strings.TrimSpace(*update.Title)
		if err := validateTaskTitle(trimmed); err != nil {
			return nil, err
		}
		update.Title = &trimmed
	}

	existing, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("task %w", ErrNotFound)
	}

	updated := existing.WithUpdate(update)
	if update.TagIDs != nil {
		tags, err := s.resolveTags(ctx, update.TagIDs)
		if err != nil {
			return nil, err
		}
		updated.Tags = tags
	}

	if err := s.taskRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	s.publish(ctx, event.TaskUpdated, id)

	return &updated, nil
}

// DeleteTask deletes an existing task
func (s *TaskService) DeleteTask(ctx context.Context, id int) error {
	existing, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("task %w", ErrNotFound)
	}

	if err := s.taskRepo.Delete(ctx, existing); err != nil {
		return err
	}

	s.logger.Info("task deleted", zap.Int("id", id), zap.String("title", existing.Title))
	s.publish(ctx, event.TaskDeleted, id)

	return nil
}

// resolveTags loads the referenced tags and rejects ids with no tag behind them
func (s *TaskService) resolveTags(ctx context.Context, ids []int) ([]model.Tag, error) {
	if len(ids) == 0 {
		return []model.Tag{}, nil
	}

	tags, err := s.tagRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	found := make(map[int]bool, len(tags))
	for _, tag := range tags {
		found[tag.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			return nil, fmt.Errorf("%w: tag %d does not exist", ErrInvalidInput, id)
		}
	}

	return tags, nil
}

// publish emits a lifecycle event. Publishing is best effort: failures are
// logged and never fail the request.
func (s *TaskService) publish(ctx context.Context, eventType string, id int) {
	if s.publisher == nil {
		return
	}

	evt := event.New(eventType, id)
	if err := s.publisher.Publish(ctx, s.topic, strconv.Itoa(id), evt); err != nil {
		s.logger.Warn("failed to publish task event",
			zap.String("type", eventType),
			zap.Int("id", id),
			zap.Error(err),
		)
	}
}

func validateTaskTitle(title string) error {
	if title == "" {
		return fmt.Errorf("%w: task title cannot be empty", ErrInvalidInput)
	}
	if len(title) > 200 {
		return fmt.Errorf("%w: task title cannot exceed 200 characters", ErrInvalidInput)
	}
	return nil
}
