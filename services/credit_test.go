package services

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/itsmontel/steppet_api/dto"
	"github.com/itsmontel/steppet_api/model"
	"github.com/itsmontel/steppet_api/services/repositories"
	"github.com/itsmontel/steppet_api/shared"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	err = gdb.AutoMigrate(
		&model.User{},
		&model.Pet{},
		&model.DailyStepRecord{},
		&model.StreakData{},
		&model.UserAchievement{},
		&model.CreditLedger{},
		&model.NotificationEvent{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return gdb
}

func testCreditService(t *testing.T, gdb *gorm.DB) *CreditService {
	t.Helper()

	return &CreditService{
		db:            &SqliteService{db: gdb},
		userSvc:       &UserService{},
		widgetSvc:     &WidgetService{redisSvc: &RedisService{}},
		monitoringSvc: &MonitoringService{},
		pets:          repositories.NewPetRepository(gdb),
		steps:         repositories.NewStepRepository(gdb),
		credits:       repositories.NewCreditRepository(gdb),
	}
}

func seedCreditFixture(t *testing.T, gdb *gorm.DB, free, purchased int) string {
	t.Helper()

	now := time.Now()
	day := model.StartOfDay(now)

	user := model.User{
		ID:            "user-1",
		DeviceID:      "device-1",
		Name:          model.DefaultUserName,
		DailyStepGoal: model.DefaultStepGoal,
		FirstLaunch:   now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	pet := model.Pet{
		ID:        "pet-1",
		UserID:    user.ID,
		Name:      model.DefaultPetName,
		Species:   model.DefaultPetKind,
		Health:    0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := gdb.Create(&pet).Error; err != nil {
		t.Fatalf("failed to seed pet: %v", err)
	}

	ledger := model.CreditLedger{
		ID:                   "ledger-1",
		UserID:               user.ID,
		DailyFreeCredits:     free,
		PurchasedCredits:     purchased,
		LastDailyCreditsDate: &day,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := gdb.Create(&ledger).Error; err != nil {
		t.Fatalf("failed to seed ledger: %v", err)
	}

	return user.ID
}

// Concurrent spends against a one-credit balance must pay out exactly once.
func TestSpendCredit_SerializedPerUser(t *testing.T) {
	gdb := testDB(t)
	svc := testCreditService(t, gdb)
	userID := seedCreditFixture(t, gdb, 0, 1)

	var wg sync.WaitGroup
	results := make(chan *dto.SpendCreditResponse, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if resp, err := svc.SpendCredit(userID, dto.SpendCreditRequest{Kind: shared.CreditSourceGame}); err == nil {
				results <- resp
			}
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for range results {
		succeeded++
	}
	if succeeded != 1 {
		t.Fatalf("successful spends = %d, want 1", succeeded)
	}

	var ledger model.CreditLedger
	if err := gdb.Where("user_id = ?", userID).First(&ledger).Error; err != nil {
		t.Fatalf("failed to load ledger: %v", err)
	}
	if ledger.PurchasedCredits != 0 {
		t.Errorf("PurchasedCredits = %d, want 0", ledger.PurchasedCredits)
	}
	if ledger.TodayHealthBoost != 3 {
		t.Errorf("TodayHealthBoost = %d, want 3 (one game boost)", ledger.TodayHealthBoost)
	}

	var pet model.Pet
	if err := gdb.Where("user_id = ?", userID).First(&pet).Error; err != nil {
		t.Fatalf("failed to load pet: %v", err)
	}
	if pet.Health != 3 {
		t.Errorf("pet.Health = %d, want 3", pet.Health)
	}
}

func TestSpendCredit_ZeroBalanceNoMutation(t *testing.T) {
	gdb := testDB(t)
	svc := testCreditService(t, gdb)
	userID := seedCreditFixture(t, gdb, 0, 0)

	_, err := svc.SpendCredit(userID, dto.SpendCreditRequest{Kind: shared.CreditSourceActivity})
	if err == nil {
		t.Fatal("expected spend with zero balance to fail")
	}

	var ledger model.CreditLedger
	if err := gdb.Where("user_id = ?", userID).First(&ledger).Error; err != nil {
		t.Fatalf("failed to load ledger: %v", err)
	}
	if ledger.TodayHealthBoost != 0 {
		t.Errorf("TodayHealthBoost = %d, want 0", ledger.TodayHealthBoost)
	}
}
