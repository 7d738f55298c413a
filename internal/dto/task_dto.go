package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateTaskRequest represents the request to create a checklist task
type CreateTaskRequest struct {
	TicketID uuid.UUID `json:"ticketId" binding:"required"`
	Title    string    `json:"title" binding:"required" example:"Write migration"`
}

// UpdateTaskRequest represents a partial task update
type UpdateTaskRequest struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// Fields returns the set of provided (non-nil) fields as update columns
func (r *UpdateTaskRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Completed != nil {
		fields["completed"] = *r.Completed
	}
	return fields
}

// TaskResponse represents the task projection
type TaskResponse struct {
	ID        uuid.UUID `json:"id"`
	TicketID  uuid.UUID `json:"ticketId"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	IsDeleted bool      `json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
