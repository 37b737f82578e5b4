package quota

import (
	"errors"

	"tuneloom-backend/db"
	"tuneloom-backend/models"

	"gorm.io/gorm"
)

const (
	// FreeGenerationLimit is the lifetime number of song generations a
	// free-tier account gets before upgrading.
	FreeGenerationLimit = 4

	// FreeMonthlyPlayLimit caps plays per rolling month for free accounts.
	FreeMonthlyPlayLimit = 25
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrLimitReached    = errors.New("generation limit reached")
)

// ConsumeGeneration checks the caller's generation allowance and, for
// non-premium accounts, consumes one unit of it. The consume is a single
// conditional UPDATE so two concurrent requests cannot both slip past the
// limit. Premium accounts always pass and are never counted.
func ConsumeGeneration(userID string) error {
	var profile models.Profile
	if err := db.DB.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfileNotFound
		}
		return err
	}

	if profile.IsPremium {
		return nil
	}

	result := db.DB.Model(&models.Profile{}).
		Where("user_id = ? AND is_premium = false AND generation_count < ?", userID, FreeGenerationLimit).
		Update("generation_count", gorm.Expr("generation_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLimitReached
	}

	return nil
}
