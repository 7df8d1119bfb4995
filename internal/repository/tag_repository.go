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

// TagRepository handles database operations for tags
type TagRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

var _ service.TagRepository = (*TagRepository)(nil)

// NewTagRepository creates a new tag repository
func NewTagRepository(db *sqlx.DB, logger *zap.Logger) *TagRepository {
	return &TagRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves a tag by ID, returning (nil, nil) when it does not exist
func (r *TagRepository) GetByID(ctx context.Context, id int) (*model.Tag, error) {
	query := `SELECT id, name FROM tags WHERE id = $1`

	var tag model.Tag
	if err := r.db.GetContext(ctx, &tag, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("failed to get tag by ID", zap.Error(err), zap.Int("id", id))
		return nil, err
	}

	return &tag, nil
}

// GetAll retrieves all tags ordered by name
func (r *TagRepository) GetAll(ctx context.Context) ([]model.Tag, error) {
	query := `SELECT id, name FROM tags ORDER BY name`

	tags := []model.Tag{}
	if err := r.db.SelectContext(ctx, &tags, query); err != nil {
		r.logger.Error("failed to get tags", zap.Error(err))
		return nil, err
	}

	return tags, nil
}

// GetByName retrieves a tag by its unique name, returning (nil, nil) when it
// does not exist
func (r *TagRepository) GetByName(ctx context.Context, name string) (*model.Tag, error) {
	query := `SELECT id, name FROM tags WHERE name = $1`

	var tag model.Tag
	if err := r.db.GetContext(ctx, &tag, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("failed to get tag by name", zap.Error(err), zap.String("name", name))
		return nil, err
	}

	return &tag, nil
}

// GetByIDs retrieves the tags matching the given ids. Missing ids are simply
// absent from the result.
func (r *TagRepository) GetByIDs(ctx context.Context, ids []int) ([]model.Tag, error) {
	if len(ids) == 0 {
		return []model.Tag{}, nil
	}

	query := `SELECT id, name FROM tags WHERE id = ANY($1) ORDER BY name`

	tags := []model.Tag{}
	if err := r.db.SelectContext(ctx, &tags, query, pq.Array(ids)); err != nil {
		r.logger.Error("failed to get tags by ids", zap.Error(err))
		return nil, err
	}

	return tags, nil
}

// Create inserts a new tag and fills in its storage-assigned ID
func (r *TagRepository) Create(ctx context.Context, tag *model.Tag) error {
	query := `INSERT INTO tags (name) VALUES ($1) RETURNING id`

	if err := r.db.GetContext(ctx, &tag.ID, query, tag.Name); err != nil {
		r.logger.Error("failed to create tag", zap.Error(err), zap.String("name", tag.Name))
		return err
	}

	return nil
}

// Update renames an existing tag
func (r *TagRepository) Update(ctx context.Context, tag *model.Tag) error {
	query := `UPDATE tags SET name = $1 WHERE id = $2`

	if _, err := r.db.ExecContext(ctx, query, tag.Name, tag.ID); err != nil {
		r.logger.Error("failed to update tag", zap.Error(err), zap.Int("id", tag.ID))
		return err
	}

	return nil
}

// Delete removes a tag. Links to tasks are removed by the schema's cascade.
func (r *TagRepository) Delete(ctx context.Context, tag *model.Tag) error {
	query := `DELETE FROM tags WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, tag.ID); err != nil {
		r.logger.Error("failed to delete tag", zap.Error(err), zap.Int("id", tag.ID))
		return err
	}

	return nil
}
