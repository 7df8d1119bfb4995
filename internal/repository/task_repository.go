package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Cladkoewka/ToDoListAPI/internal/model"
	"github.com/Cladkoewka/ToDoListAPI/internal/service"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

// TaskRepository handles database operations for tasks and their tag links
type TaskRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

var _ service.TaskRepository = (*TaskRepository)(nil)

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *sqlx.DB, logger *zap.Logger) *TaskRepository {
	return &TaskRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves a task with its tags, returning (nil, nil) when it does
// not exist
func (r *TaskRepository) GetByID(ctx context.Context, id int) (*model.Task, error) {
	query := `
		SELECT id, title, description, done, due_date, created_at, updated_at
		FROM tasks
		WHERE id = $1
	`

	var task model.Task
	if err := r.db.GetContext(ctx, &task, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("failed to get task by ID", zap.Error(err), zap.Int("id", id))
		return nil, err
	}

	tasks := []model.Task{task}
	if err := r.loadTags(ctx, tasks); err != nil {
		return nil, err
	}

	return &tasks[0], nil
}

// GetAll retrieves all tasks with their tags
func (r *TaskRepository) GetAll(ctx context.Context) ([]model.Task, error) {
	query := `
		SELECT id, title, description, done, due_date, created_at, updated_at
		FROM tasks
		ORDER BY id
	`

	tasks := []model.Task{}
	if err := r.db.SelectContext(ctx, &tasks, query); err != nil {
		r.logger.Error("failed to get tasks", zap.Error(err))
		return nil, err
	}

	if err := r.loadTags(ctx, tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

// GetByTagIDs retrieves tasks linked to at least one of the given tags
func (r *TaskRepository) GetByTagIDs(ctx context.Context, tagIDs []int) ([]model.Task, error) {
	query := `
		SELECT DISTINCT t.id, t.title, t.description, t.done, t.due_date, t.created_at, t.updated_at
		FROM tasks t
		JOIN task_tags tt ON tt.task_id = t.id
		WHERE tt.tag_id = ANY($1)
		ORDER BY t.id
	`

	tasks := []model.Task{}
	if err := r.db.SelectContext(ctx, &tasks, query, pq.Array(tagIDs)); err != nil {
		r.logger.Error("failed to get tasks by tags", zap.Error(err))
		return nil, err
	}

	if err := r.loadTags(ctx, tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

// Create inserts a task and its tag links in one transaction, filling in the
// storage-assigned ID and creation time
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("failed to begin transaction", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO tasks (title, description, done, due_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err = tx.QueryRowxContext(ctx, query, task.Title, task.Description, task.Done, task.DueDate).
		Scan(&task.ID, &task.CreatedAt)
	if err != nil {
		r.logger.Error("failed to create task", zap.Error(err))
		return err
	}

	if err := replaceTaskTags(ctx, tx, task.ID, task.Tags); err != nil {
		r.logger.Error("failed to link task tags", zap.Error(err), zap.Int("id", task.ID))
		return err
	}

	return tx.Commit()
}

// Update rewrites a task and its tag links in one transaction, filling in the
// new update time
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("failed to begin transaction", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	query := `
		UPDATE tasks
		SET title = $1, description = $2, done = $3, due_date = $4, updated_at = now()
		WHERE id = $5
		RETURNING updated_at
	`

	err = tx.QueryRowxContext(ctx, query, task.Title, task.Description, task.Done, task.DueDate, task.ID).
		Scan(&task.UpdatedAt)
	if err != nil {
		r.logger.Error("failed to update task", zap.Error(err), zap.Int("id", task.ID))
		return err
	}

	if err := replaceTaskTags(ctx, tx, task.ID, task.Tags); err != nil {
		r.logger.Error("failed to link task tags", zap.Error(err), zap.Int("id", task.ID))
		return err
	}

	return tx.Commit()
}

// Delete removes a task. Its tag links are removed by the schema's cascade.
func (r *TaskRepository) Delete(ctx context.Context, task *model.Task) error {
	query := `DELETE FROM tasks WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, task.ID); err != nil {
		r.logger.Error("failed to delete task", zap.Error(err), zap.Int("id", task.ID))
		return err
	}

	return nil
}

// loadTags attaches tags to the given tasks in a single round trip
func (r *TaskRepository) loadTags(ctx context.Context, tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	ids := make([]int, len(tasks))
	index := make(map[int]*model.Task, len(tasks))
	for i := range tasks {
		ids[i] = tasks[i].ID
		tasks[i].Tags = []model.Tag{}
		index[tasks[i].ID] = &tasks[i]
	}

	query := `
		SELECT tt.task_id, t.id, t.name
		FROM task_tags tt
		JOIN tags t ON t.id = tt.tag_id
		WHERE tt.task_id = ANY($1)
		ORDER BY t.name
	`

	rows, err := r.db.QueryxContext(ctx, query, pq.Array(ids))
	if err != nil {
		r.logger.Error("failed to load task tags", zap.Error(err))
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var taskID int
		var tag model.Tag
		if err := rows.Scan(&taskID, &tag.ID, &tag.Name); err != nil {
			r.logger.Error("failed to scan task tag", zap.Error(err))
			return err
		}
		if task, ok := index[taskID]; ok {
			task.Tags = append(task.Tags, tag)
		}
	}

	return rows.Err()
}

// replaceTaskTags rewrites the task_tags links for a task inside tx
func replaceTaskTags(ctx context.Context, tx *sqlx.Tx, taskID int, tags []model.Tag) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM task_tags WHERE task_id = $1`, taskID); err != nil {
		return err
	}

	for _, tag := range tags {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO task_tags (task_id, tag_id) VALUES ($1, $2)`,
			taskID, tag.ID,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
