package seeders

import (
	"log"

	"gorm.io/gorm"
)

// MainSeeder coordinates all seeding operations
type MainSeeder struct {
	db *gorm.DB
}

func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{db: db}
}

// SeedAll runs all seeders in the correct order
func (s *MainSeeder) SeedAll(historyDays int) error {
	log.Println("Starting database seeding...")

	// 1. Demo user first, everything else hangs off its ID
	userSeeder := NewDemoUserSeeder(s.db)
	userID, err := userSeeder.SeedDemoUser()
	if err != nil {
		log.Printf("Demo user seeding failed: %v", err)
		return err
	}

	// 2. Step history (depends on the demo user)
	historySeeder := NewStepHistorySeeder(s.db)
	if err := historySeeder.SeedHistory(userID, historyDays); err != nil {
		log.Printf("Step history seeding failed: %v", err)
		return err
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

func (s *MainSeeder) SeedDemoUserOnly() (string, error) {
	userSeeder := NewDemoUserSeeder(s.db)
	return userSeeder.SeedDemoUser()
}

func (s *MainSeeder) SeedHistoryOnly(historyDays int) error {
	userSeeder := NewDemoUserSeeder(s.db)
	userID, err := userSeeder.SeedDemoUser()
	if err != nil {
		return err
	}

	historySeeder := NewStepHistorySeeder(s.db)
	return historySeeder.SeedHistory(userID, historyDays)
}
