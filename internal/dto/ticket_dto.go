package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateTicketRequest represents the request to create a ticket. Description
// defaults to the empty string.
type CreateTicketRequest struct {
	ColumnID    uuid.UUID `json:"columnId" binding:"required"`
	Title       string    `json:"title" binding:"required" example:"Fix login flow"`
	Description string    `json:"description"`
}

// UpdateTicketRequest represents a partial ticket update
type UpdateTicketRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Fields returns the set of provided (non-nil) fields as update columns
func (r *UpdateTicketRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	return fields
}

// TicketResponse represents the ticket projection
type TicketResponse struct {
	ID          uuid.UUID            `json:"id"`
	ColumnID    uuid.UUID            `json:"columnId"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	IsDeleted   bool                 `json:"isDeleted"`
	Tasks       []TaskResponse       `json:"tasks"`
	Attachments []AttachmentResponse `json:"attachments,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}
