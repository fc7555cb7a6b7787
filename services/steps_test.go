package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/itsmontel/steppet_api/dto"
	"github.com/itsmontel/steppet_api/model"
	"github.com/itsmontel/steppet_api/services/repositories"
	"github.com/itsmontel/steppet_api/shared"
)

func testStepService(t *testing.T) (*StepService, string) {
	t.Helper()

	gdb := testDB(t)
	userID := seedCreditFixture(t, gdb, model.DailyCreditAllowance, 0)

	storage := &SqliteService{db: gdb}
	svc := &StepService{
		db:      storage,
		userSvc: &UserService{},
		achievementSvc: &AchievementService{
			db:           storage,
			achievements: repositories.NewAchievementRepository(gdb),
		},
		widgetSvc:     &WidgetService{redisSvc: &RedisService{}},
		monitoringSvc: &MonitoringService{},
		users:         repositories.NewUserRepository(gdb),
		pets:          repositories.NewPetRepository(gdb),
		steps:         repositories.NewStepRepository(gdb),
		credits:       repositories.NewCreditRepository(gdb),
		notifications: repositories.NewNotificationRepository(gdb),
	}
	return svc, userID
}

func TestRecordSteps_RejectsPastDay(t *testing.T) {
	svc, userID := testStepService(t)

	yesterday := time.Now().AddDate(0, 0, -1)
	_, err := svc.RecordSteps(userID, dto.RecordStepsRequest{Steps: 5000, RecordedAt: &yesterday})
	if err == nil {
		t.Fatal("expected past-day submission to be rejected")
	}
	appErr, ok := shared.GetAppError(err)
	if !ok {
		t.Fatalf("error = %v, want AppError", err)
	}
	if appErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want %d", appErr.StatusCode, http.StatusBadRequest)
	}
}

func TestRecordSteps_RejectsFutureDay(t *testing.T) {
	svc, userID := testStepService(t)

	tomorrow := time.Now().AddDate(0, 0, 1)
	_, err := svc.RecordSteps(userID, dto.RecordStepsRequest{Steps: 5000, RecordedAt: &tomorrow})
	if err == nil {
		t.Fatal("expected future-day submission to be rejected")
	}
}

func TestRecordSteps_AcceptsSameDayTimestamp(t *testing.T) {
	svc, userID := testStepService(t)

	now := time.Now()
	resp, err := svc.RecordSteps(userID, dto.RecordStepsRequest{Steps: 4200, RecordedAt: &now})
	if err != nil {
		t.Fatalf("RecordSteps failed: %v", err)
	}
	if resp.Record.Steps != 4200 {
		t.Errorf("Record.Steps = %d, want 4200", resp.Record.Steps)
	}
}
