package services

import (
	goctx "context"
	"fmt"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/itsmontel/steppet_api/dto"
	"github.com/itsmontel/steppet_api/model"
	"github.com/itsmontel/steppet_api/services/repositories"
)

// WidgetService serves the compact snapshot the home-screen widget polls.
// Snapshots are cached in Redis; cache failures degrade to a direct read.
type WidgetService struct {
	context.DefaultService

	db       Storage
	redisSvc *RedisService

	users *repositories.UserRepository
	pets  *repositories.PetRepository
	steps *repositories.StepRepository
}

const WIDGET_SVC = "widget_svc"

const widgetCacheTTL = 5 * time.Minute

func (svc WidgetService) Id() string {
	return WIDGET_SVC
}

func (svc *WidgetService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *WidgetService) Start() error {
	svc.db = svc.Service(DB_SVC).(Storage)
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)

	svc.users = repositories.NewUserRepository(svc.db.Db())
	svc.pets = repositories.NewPetRepository(svc.db.Db())
	svc.steps = repositories.NewStepRepository(svc.db.Db())

	return nil
}

func widgetCacheKey(userID string) string {
	return fmt.Sprintf("widget:%s", userID)
}

func (svc *WidgetService) GetSnapshot(userID string) (*dto.WidgetSnapshotResponse, error) {
	ctx := goctx.Background()

	var cached dto.WidgetSnapshotResponse
	if err := svc.redisSvc.GetJSON(ctx, widgetCacheKey(userID), &cached); err != nil {
		log.WithError(err).WithField("userID", userID).Warn("Widget cache read failed")
	} else if cached.PetName != "" {
		return &cached, nil
	}

	snapshot, err := svc.buildSnapshot(userID)
	if err != nil {
		return nil, err
	}

	if err := svc.redisSvc.Set(ctx, widgetCacheKey(userID), snapshot, widgetCacheTTL); err != nil {
		log.WithError(err).WithField("userID", userID).Warn("Widget cache write failed")
	}

	return snapshot, nil
}

// Invalidate drops the cached snapshot after a write that changes what the
// widget shows. Best effort.
func (svc *WidgetService) Invalidate(userID string) {
	if err := svc.redisSvc.Delete(goctx.Background(), widgetCacheKey(userID)); err != nil {
		log.WithError(err).WithField("userID", userID).Warn("Widget cache invalidation failed")
	}
}

func (svc *WidgetService) buildSnapshot(userID string) (*dto.WidgetSnapshotResponse, error) {
	user, err := svc.users.GetUser(userID)
	if err != nil {
		return nil, svc.db.HandleError(err)
	}

	pet, err := svc.pets.GetPet(userID)
	if err != nil {
		return nil, svc.db.HandleError(err)
	}

	todaySteps := 0
	if record, err := svc.steps.GetRecord(userID, model.StartOfDay(time.Now())); err == nil && record != nil {
		todaySteps = record.Steps
	}

	streak, err := svc.steps.GetStreak(userID)
	if err != nil {
		return nil, svc.db.HandleError(err)
	}

	return &dto.WidgetSnapshotResponse{
		PetType:       pet.Species,
		PetName:       pet.Name,
		Mood:          pet.Mood(),
		TodaySteps:    todaySteps,
		GoalSteps:     user.DailyStepGoal,
		Health:        pet.Health,
		CurrentStreak: streak.CurrentStreak,
	}, nil
}
