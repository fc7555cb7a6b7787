package main

import (
	"os"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/itsmontel/steppet_api/services"
)

// @title StepPet API
// @version 1.0
// @description Pet health, streak and achievement engine for step tracking.
// @BasePath /api/v1
func main() {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Err(err).Msg("Error loading .env file")
	}

	var db context.Service
	if os.Getenv("DB_DRIVER") == "postgres" {
		db = &services.PostgresService{}
	} else {
		db = &services.SqliteService{}
	}

	ctx, err := context.NewCtx(
		&services.JWTService{},
		&services.AuthMiddleware{},
		db,
		&services.RedisService{},
		&services.ArchiveService{},
		&services.MonitoringService{},
		&services.RateLimitService{},

		&services.AchievementService{},
		&services.WidgetService{},
		&services.UserService{},
		&services.PetService{},
		&services.StepService{},
		&services.CreditService{},
		&services.NotificationService{},
		&services.AuthService{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err)
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err)
		return
	}
}
