package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered user. The Class field determines how many
// rings the user may bear at once (see rules.ClassLimits).
type User struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string `gorm:"size:255;unique;not null"`
	Email     string `gorm:"size:255;unique;not null"`
	Password  string `gorm:"size:255;not null"` // bcrypt hash, never serialized
	Class     string `gorm:"size:50;not null"`
}

// BeforeCreate assigns a UUID so the id exists before the insert.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
