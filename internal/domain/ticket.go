package domain

import "github.com/google/uuid"

// Ticket belongs to exactly one column
type Ticket struct {
	BaseModel
	ColumnID    uuid.UUID `gorm:"type:uuid;not null;index:idx_tickets_column_id" json:"columnId"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null;default:''" json:"description"`
	IsDeleted   bool      `gorm:"not null;default:false" json:"isDeleted"`
	Tasks       []Task    `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
	// Attachments are looked up through the attachment repository, not eager-loaded
	Attachments []Attachment `gorm:"-" json:"attachments,omitempty"`
}

// TableName specifies the table name for Ticket
func (Ticket) TableName() string {
	return "tickets"
}
