package domain

import (
	"time"

	"github.com/google/uuid"
)

// BaseModel holds the fields shared by every entity. Soft deletion is an
// explicit is_deleted flag on each entity rather than GORM's DeletedAt:
// soft-deleted rows stay queryable and only the hard-delete endpoints remove
// them physically.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}
