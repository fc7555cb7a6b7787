package repositories

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/itsmontel/steppet_api/model"
)

// StepRepository handles the daily step ledger and streak state.
type StepRepository struct {
	BaseRepository
}

func NewStepRepository(db *gorm.DB) *StepRepository {
	return &StepRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *StepRepository) GetRecord(userID string, day time.Time) (*model.DailyStepRecord, error) {
	var record model.DailyStepRecord
	err := ds.db.Where("user_id = ? AND day = ?", userID, model.StartOfDay(day)).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// UpsertRecord finds or creates the record keyed by (user, start-of-day)
// and overwrites steps, goal and derived health.
func (ds *StepRepository) UpsertRecord(userID string, day time.Time, steps, goalSteps int) (*model.DailyStepRecord, error) {
	normalized := model.StartOfDay(day)
	now := time.Now()

	record, err := ds.GetRecord(userID, normalized)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		id, _ := uuid.NewV7()
		record = &model.DailyStepRecord{
			ID:        id.String(),
			UserID:    userID,
			Day:       normalized,
			CreatedAt: now,
		}
	}

	record.Steps = steps
	record.GoalSteps = goalSteps
	record.Health = model.HealthScore(steps, goalSteps)
	record.UpdatedAt = now

	if err := ds.db.Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// GetRange returns records in [start, end) ascending by day.
func (ds *StepRepository) GetRange(userID string, start, end time.Time) ([]model.DailyStepRecord, error) {
	var records []model.DailyStepRecord
	err := ds.db.
		Where("user_id = ? AND day >= ? AND day < ?", userID, model.StartOfDay(start), model.StartOfDay(end)).
		Order("day ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// GetOlderThan returns records strictly before cutoff, for archival.
func (ds *StepRepository) GetOlderThan(userID string, cutoff time.Time) ([]model.DailyStepRecord, error) {
	var records []model.DailyStepRecord
	err := ds.db.
		Where("user_id = ? AND day < ?", userID, model.StartOfDay(cutoff)).
		Order("day ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (ds *StepRepository) DeleteOlderThan(userID string, cutoff time.Time) (int64, error) {
	res := ds.db.
		Where("user_id = ? AND day < ?", userID, model.StartOfDay(cutoff)).
		Delete(&model.DailyStepRecord{})
	return res.RowsAffected, res.Error
}

func (ds *StepRepository) BestDay(userID string) (int, error) {
	var best *int
	err := ds.db.Model(&model.DailyStepRecord{}).
		Where("user_id = ?", userID).
		Select("MAX(steps)").
		Scan(&best).Error
	if err != nil {
		return 0, err
	}
	if best == nil {
		return 0, nil
	}
	return *best, nil
}

func (ds *StepRepository) GetStreak(userID string) (*model.StreakData, error) {
	var streak model.StreakData
	err := ds.db.Where("user_id = ?", userID).First(&streak).Error
	if err == gorm.ErrRecordNotFound {
		now := time.Now()
		id, _ := uuid.NewV7()
		streak = model.StreakData{
			ID:        id.String(),
			UserID:    userID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := ds.db.Create(&streak).Error; err != nil {
			return nil, err
		}
		return &streak, nil
	}
	if err != nil {
		return nil, err
	}
	return &streak, nil
}

func (ds *StepRepository) UpdateStreak(streak *model.StreakData) error {
	streak.UpdatedAt = time.Now()
	return ds.db.Save(streak).Error
}
