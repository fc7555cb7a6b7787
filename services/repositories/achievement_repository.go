package repositories

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/itsmontel/steppet_api/model"
)

// AchievementRepository persists per-user achievement state. The static
// catalog lives in code; only the mutable rows round-trip.
type AchievementRepository struct {
	BaseRepository
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *AchievementRepository) GetUserAchievements(userID string) ([]model.UserAchievement, error) {
	var rows []model.UserAchievement
	if err := ds.db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// LoadSet merges the persisted rows against the catalog.
func (ds *AchievementRepository) LoadSet(userID string) (*model.AchievementSet, error) {
	rows, err := ds.GetUserAchievements(userID)
	if err != nil {
		return nil, err
	}
	return model.MergeAchievements(model.Catalog(), rows), nil
}

// SaveDirty upserts only the rows the set mutated since it was loaded.
func (ds *AchievementRepository) SaveDirty(userID string, set *model.AchievementSet) error {
	dirty := set.Dirty()
	if len(dirty) == 0 {
		return nil
	}

	now := time.Now()
	return ds.db.Transaction(func(tx *gorm.DB) error {
		for _, id := range dirty {
			a, ok := set.Get(id)
			if !ok {
				continue
			}

			var row model.UserAchievement
			err := tx.Where("user_id = ? AND achievement_id = ?", userID, id).First(&row).Error
			if err == gorm.ErrRecordNotFound {
				id, _ := uuid.NewV7()
				row = model.UserAchievement{
					ID:            id.String(),
					UserID:        userID,
					AchievementID: id,
					CreatedAt:     now,
				}
			} else if err != nil {
				return err
			}

			row.Progress = a.Progress
			row.Unlocked = a.Unlocked
			row.UnlockedAt = a.UnlockedAt
			row.UpdatedAt = now

			if err := tx.Save(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
