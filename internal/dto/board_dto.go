package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateBoardRequest represents the request to create a board
type CreateBoardRequest struct {
	Title string `json:"title" binding:"required" example:"My New Board"`
}

// UpdateBoardRequest represents a partial board update. Nil fields are left
// untouched; at least one field must be provided.
type UpdateBoardRequest struct {
	Title *string `json:"title,omitempty" example:"Renamed Board"`
}

// Fields returns the set of provided (non-nil) fields as update columns
func (r *UpdateBoardRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	return fields
}

// BoardResponse represents the board projection returned to the owner
type BoardResponse struct {
	ID        uuid.UUID        `json:"id"`
	Title     string           `json:"title"`
	IsDeleted bool             `json:"isDeleted"`
	Columns   []ColumnResponse `json:"columns"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}
