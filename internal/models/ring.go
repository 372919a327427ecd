package models

import "gorm.io/gorm"

// Ring represents a forged ring. Bearer is the id of the user currently
// holding the ring and is the authorization anchor for update/delete.
// ForgedBy is recorded at creation and never changed afterwards.
type Ring struct {
	gorm.Model
	Name     string `gorm:"size:16;not null"`
	Power    string `gorm:"size:1000;not null"`
	Bearer   string `gorm:"type:uuid;not null;index"`
	ForgedBy string `gorm:"size:255;not null"`
	Image    string `gorm:"size:255"`
}
