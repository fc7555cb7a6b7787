package seeders

import (
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/itsmontel/steppet_api/model"
)

// StepHistorySeeder backfills daily step records for a user
type StepHistorySeeder struct {
	db *gorm.DB
}

func NewStepHistorySeeder(db *gorm.DB) *StepHistorySeeder {
	return &StepHistorySeeder{db: db}
}

// SeedHistory writes the last `days` days of step records, recomputing
// streak and lifetime aggregates from the generated data. Existing
// records for a day are left untouched.
func (s *StepHistorySeeder) SeedHistory(userID string, days int) error {
	var user model.User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		return err
	}

	var streak model.StreakData
	if err := s.db.Where("user_id = ?", userID).First(&streak).Error; err != nil {
		return err
	}

	// Fixed seed keeps reseeded databases comparable across runs.
	rng := rand.New(rand.NewSource(42))

	today := model.StartOfDay(time.Now())
	created := 0

	for i := days; i >= 1; i-- {
		day := today.AddDate(0, 0, -i)

		var existing model.DailyStepRecord
		err := s.db.Where("user_id = ? AND day = ?", userID, day).First(&existing).Error
		if err == nil {
			continue
		} else if err != gorm.ErrRecordNotFound {
			return err
		}

		// Roughly two thirds of days hit goal, the rest fall short.
		steps := user.DailyStepGoal/2 + rng.Intn(user.DailyStepGoal)
		id, _ := uuid.NewV7()
		record := model.DailyStepRecord{
			ID:        id.String(),
			UserID:    userID,
			Day:       day,
			Steps:     steps,
			GoalSteps: user.DailyStepGoal,
			Health:    model.HealthScore(steps, user.DailyStepGoal),
			CreatedAt: day,
			UpdatedAt: day,
		}
		if err := s.db.Create(&record).Error; err != nil {
			return err
		}
		created++

		streak.Update(record.GoalMet(), day)
		user.TotalSteps += int64(record.Steps)
		user.DaysUsed++
		if record.GoalMet() {
			user.GoalsAchieved++
		}
		seen := day
		user.LastSeenDay = &seen
	}

	if err := s.db.Save(&streak).Error; err != nil {
		return err
	}
	if err := s.db.Save(&user).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d step records for user %s (streak: %d, longest: %d)",
		created, userID, streak.CurrentStreak, streak.LongestStreak)
	return nil
}
