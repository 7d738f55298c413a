package domain

// User represents a credential holder. The password hash is never serialized.
type User struct {
	BaseModel
	Email    string  `gorm:"uniqueIndex;not null" json:"email"`
	Password string  `gorm:"not null" json:"-"`
	Name     string  `gorm:"not null;default:''" json:"name"`
	Boards   []Board `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"boards,omitempty"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
