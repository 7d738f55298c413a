package domain

import "github.com/google/uuid"

// Board is the top-level container, owned by exactly one user. Every read
// and mutation is scoped by UserID; a board owned by someone else behaves
// as not found.
type Board struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_boards_user_id" json:"userId"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	IsDeleted bool      `gorm:"not null;default:false;index:idx_boards_is_deleted" json:"isDeleted"`
	Columns   []Column  `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"columns,omitempty"`
}

// TableName specifies the table name for Board
func (Board) TableName() string {
	return "boards"
}
