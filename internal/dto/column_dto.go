package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateColumnRequest represents the request to create a column
type CreateColumnRequest struct {
	BoardID uuid.UUID `json:"boardId" binding:"required" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	Title   string    `json:"title" binding:"required" example:"In Progress"`
	Index   int       `json:"index" example:"1"`
}

// UpdateColumnRequest represents a partial column update
type UpdateColumnRequest struct {
	Title *string `json:"title,omitempty"`
	Index *int    `json:"index,omitempty"`
}

// Fields returns the set of provided (non-nil) fields as update columns
func (r *UpdateColumnRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Index != nil {
		fields["index"] = *r.Index
	}
	return fields
}

// ColumnResponse represents the column projection
type ColumnResponse struct {
	ID        uuid.UUID `json:"id"`
	BoardID   uuid.UUID `json:"boardId"`
	Title     string    `json:"title"`
	Index     int       `json:"index"`
	IsDeleted bool      `json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
