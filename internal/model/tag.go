package model

// Tag represents a label that can be attached to tasks
type Tag struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// TagCreate represents data needed to create a new tag
type TagCreate struct {
	Name string `json:"name" binding:"required,max=50"`
}

// TagUpdate represents data for updating a tag
type TagUpdate struct {
	Name string `json:"name" binding:"required,max=50"`
}

// NewTagFromCreate maps a create request to a new tag entity.
// The ID is assigned by storage on insert.
func NewTagFromCreate(create TagCreate) Tag {
	return Tag{
		Name: create.Name,
	}
}

// WithUpdate returns a copy of the tag with the update applied.
// The receiver is never modified.
func (t Tag) WithUpdate(update TagUpdate) Tag {
	t.Name = update.Name
	return t
}
