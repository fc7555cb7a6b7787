package seeders

import (
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/itsmontel/steppet_api/model"
)

const (
	DemoDeviceID     = "demo-device-0001"
	DemoDeviceSecret = "demo-secret"
)

// DemoUserSeeder creates a demo user with a pet, streak and credit ledger
type DemoUserSeeder struct {
	db *gorm.DB
}

func NewDemoUserSeeder(db *gorm.DB) *DemoUserSeeder {
	return &DemoUserSeeder{db: db}
}

// SeedDemoUser creates the demo user if missing and returns its ID.
// Re-running is a no-op on an already seeded database.
func (s *DemoUserSeeder) SeedDemoUser() (string, error) {
	var existing model.User
	if err := s.db.Where("device_id = ?", DemoDeviceID).First(&existing).Error; err == nil {
		log.Println("Demo user already exists, skipping user seeding")
		return existing.ID, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoDeviceSecret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	now := time.Now()
	userID, _ := uuid.NewV7()
	user := model.User{
		ID:            userID.String(),
		DeviceID:      DemoDeviceID,
		SecretHash:    string(hash),
		Name:          "Demo",
		DailyStepGoal: model.DefaultStepGoal,
		FirstLaunch:   now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return "", err
	}

	petID, _ := uuid.NewV7()
	pet := model.Pet{
		ID:        petID.String(),
		UserID:    user.ID,
		Name:      model.DefaultPetName,
		Species:   model.DefaultPetKind,
		Health:    model.DefaultPetHealth,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.Create(&pet).Error; err != nil {
		return "", err
	}

	streakID, _ := uuid.NewV7()
	streak := model.StreakData{
		ID:        streakID.String(),
		UserID:    user.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.Create(&streak).Error; err != nil {
		return "", err
	}

	day := model.StartOfDay(now)
	ledgerID, _ := uuid.NewV7()
	ledger := model.CreditLedger{
		ID:                   ledgerID.String(),
		UserID:               user.ID,
		DailyFreeCredits:     model.DailyCreditAllowance,
		LastDailyCreditsDate: &day,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := s.db.Create(&ledger).Error; err != nil {
		return "", err
	}

	log.Printf("Created demo user %s (device: %s, secret: %s)", user.ID, DemoDeviceID, DemoDeviceSecret)
	return user.ID, nil
}
