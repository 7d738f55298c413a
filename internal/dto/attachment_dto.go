package dto

import (
	"time"

	"github.com/google/uuid"
)

// PresignedURLRequest asks for an upload slot for one file
type PresignedURLRequest struct {
	FileName    string `json:"fileName" binding:"required" example:"diagram.png"`
	ContentType string `json:"contentType" binding:"required" example:"image/png"`
	FileSize    int64  `json:"fileSize" binding:"required,min=1" example:"20480"`
}

// PresignedURLResponse carries the upload URL and the id of the TEMP
// attachment row to confirm after the upload finishes
type PresignedURLResponse struct {
	AttachmentID uuid.UUID `json:"attachmentId"`
	UploadURL    string    `json:"uploadUrl"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// ConfirmAttachmentRequest binds a previously presigned upload to a ticket
type ConfirmAttachmentRequest struct {
	AttachmentID uuid.UUID `json:"attachmentId" binding:"required"`
}

// AttachmentResponse represents the attachment projection
type AttachmentResponse struct {
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"fileName"`
	FileURL     string    `json:"fileUrl"`
	FileSize    int64     `json:"fileSize"`
	ContentType string    `json:"contentType"`
	UploadedBy  uuid.UUID `json:"uploadedBy"`
	UploadedAt  time.Time `json:"uploadedAt"`
}
