package rules

import (
	"errors"

	"github.com/LucasLevingston/AneisDePoder/internal/database"
	"github.com/LucasLevingston/AneisDePoder/internal/errs"
	"github.com/LucasLevingston/AneisDePoder/internal/models"

	"gorm.io/gorm"
)

// ClassLimits maps a user class to the number of rings it may bear at once.
var ClassLimits = map[string]int{
	"Elfo":   3,
	"Anões":  7,
	"Homem":  9,
	"Sauron": 1,
}

// CheckQuota verifies that the user identified by userID may bear one more
// ring. The count and the subsequent insert are not atomic: two concurrent
// creations for the same near-limit user can both pass and breach the limit
// by one. Known behavior, kept as is.
func CheckQuota(userID string) error {
	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFound("User not found")
		}
		return err
	}

	limit, ok := ClassLimits[user.Class]
	if !ok {
		return errs.Forbidden("Unknown race")
	}

	var count int64
	if err := database.DB.Model(&models.Ring{}).Where("bearer = ?", userID).Count(&count).Error; err != nil {
		return err
	}

	if count >= int64(limit) {
		return errs.Forbidden("You have reached the limit of rings allowed for your class.")
	}
	return nil
}
