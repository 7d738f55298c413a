package domain

import "github.com/google/uuid"

// Column belongs to exactly one board and is ordered within it by Index.
// The (board_id, index) pair is indexed but deliberately not unique:
// soft-deleted columns keep their index and would collide with re-created
// ones otherwise.
type Column struct {
	BaseModel
	BoardID   uuid.UUID `gorm:"type:uuid;not null;index:idx_columns_board_id;index:idx_columns_board_index,priority:1" json:"boardId"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Index     int       `gorm:"not null;default:0;index:idx_columns_board_index,priority:2" json:"index"`
	IsDeleted bool      `gorm:"not null;default:false" json:"isDeleted"`
	Tickets   []Ticket  `gorm:"foreignKey:ColumnID;constraint:OnDelete:CASCADE" json:"tickets,omitempty"`
}

// TableName specifies the table name for Column
func (Column) TableName() string {
	return "columns"
}
