package domain

import "github.com/google/uuid"

// Task is a checklist item belonging to exactly one ticket
type Task struct {
	BaseModel
	TicketID  uuid.UUID `gorm:"type:uuid;not null;index:idx_tasks_ticket_id" json:"ticketId"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	IsDeleted bool      `gorm:"not null;default:false" json:"isDeleted"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}
