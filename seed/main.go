package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/itsmontel/steppet_api/model"
	"github.com/itsmontel/steppet_api/seed/seeders"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		seedType = flag.String("type", "all", "Type of seeding: all, demo, history")
		dbPath   = flag.String("db", "", "Database path (overrides DB_DATABASE env var)")
		days     = flag.Int("days", 30, "Days of step history to backfill")
		help     = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	databasePath := *dbPath
	if databasePath == "" {
		databasePath = os.Getenv("DB_DATABASE")
		if databasePath == "" {
			databasePath = "steppet.db"
		}
	}

	db, err := gorm.Open(sqlite.Open(databasePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Printf("Connected to database: %s", databasePath)

	err = db.AutoMigrate(
		&model.User{},
		&model.Pet{},
		&model.DailyStepRecord{},
		&model.StreakData{},
		&model.UserAchievement{},
		&model.CreditLedger{},
		&model.NotificationEvent{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	mainSeeder := seeders.NewMainSeeder(db)

	switch *seedType {
	case "all":
		log.Println("Running complete database seeding...")
		if err := mainSeeder.SeedAll(*days); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	case "demo":
		log.Println("Seeding demo user only...")
		if _, err := mainSeeder.SeedDemoUserOnly(); err != nil {
			log.Fatalf("Failed to seed demo user: %v", err)
		}
	case "history":
		log.Println("Seeding step history only...")
		if err := mainSeeder.SeedHistoryOnly(*days); err != nil {
			log.Fatalf("Failed to seed step history: %v", err)
		}
	default:
		log.Fatalf("Unknown seed type: %s. Use 'all', 'demo', or 'history'", *seedType)
	}

	log.Println("Seeding operation completed successfully!")
}

func showHelp() {
	log.Println(`
Database Seeding Tool for StepPet

Usage: go run seed/main.go [flags]

Flags:
  -type string
        Type of seeding to perform (default "all")
        Options: all, demo, history
  -db string
        Database path (overrides DB_DATABASE environment variable)
  -days int
        Days of step history to backfill (default 30)
  -help
        Show this help message

Examples:
  # Seed a demo user with 30 days of history
  go run seed/main.go

  # Seed only the demo user
  go run seed/main.go -type=demo

  # Backfill 90 days of history
  go run seed/main.go -type=history -days=90

Environment Variables:
  DB_DATABASE - Default database path (default: steppet.db)
`)
}
