package rules

import (
	"errors"

	"github.com/LucasLevingston/AneisDePoder/internal/database"
	"github.com/LucasLevingston/AneisDePoder/internal/errs"
	"github.com/LucasLevingston/AneisDePoder/internal/models"

	"gorm.io/gorm"
)

// CheckRingExists resolves the target ring before any mutation or read.
func CheckRingExists(ringID uint) (models.Ring, error) {
	var ring models.Ring
	if err := database.DB.First(&ring, ringID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Ring{}, errs.NotFound("Ring not found")
		}
		return models.Ring{}, err
	}
	return ring, nil
}
