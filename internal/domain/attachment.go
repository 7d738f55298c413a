package domain

import (
	"time"

	"github.com/google/uuid"
)

// AttachmentStatus represents the lifecycle of an uploaded file
type AttachmentStatus string

const (
	// AttachmentStatusTemp marks a presigned upload slot that has not been
	// confirmed yet; temp rows past ExpiresAt are purged by the cleanup job.
	AttachmentStatusTemp AttachmentStatus = "TEMP"
	// AttachmentStatusConfirmed marks an attachment bound to a ticket
	AttachmentStatusConfirmed AttachmentStatus = "CONFIRMED"
)

// Attachment holds file metadata for a ticket attachment. FileKey is the S3
// object key; download URLs are derived from it at response time.
type Attachment struct {
	BaseModel
	TicketID    *uuid.UUID       `gorm:"type:uuid;index:idx_attachments_ticket_id" json:"ticketId,omitempty"`
	Status      AttachmentStatus `gorm:"type:varchar(20);not null;default:'TEMP';index:idx_attachments_status" json:"status"`
	FileName    string           `gorm:"type:varchar(255);not null" json:"fileName"`
	FileKey     string           `gorm:"type:varchar(512);not null" json:"-"`
	FileSize    int64            `gorm:"not null" json:"fileSize"`
	ContentType string           `gorm:"type:varchar(100);not null" json:"contentType"`
	UploadedBy  uuid.UUID        `gorm:"type:uuid;not null" json:"uploadedBy"`
	ExpiresAt   *time.Time       `gorm:"index" json:"expiresAt,omitempty"`
}

// TableName specifies the table name for Attachment
func (Attachment) TableName() string {
	return "attachments"
}
