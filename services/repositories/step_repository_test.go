package repositories

import (
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/itsmontel/steppet_api/model"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.DailyStepRecord{},
		&model.StreakData{},
		&model.CreditLedger{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestUpsertRecord_CreateThenUpdate(t *testing.T) {
	repo := NewStepRepository(testDB(t))
	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	rec, err := repo.UpsertRecord("u1", day, 4000, 10000)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Steps != 4000 || rec.Health != 40 {
		t.Errorf("record = %d steps / %d health, want 4000/40", rec.Steps, rec.Health)
	}

	rec2, err := repo.UpsertRecord("u1", day, 10500, 10000)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if rec2.ID != rec.ID {
		t.Error("same-day upsert created a second record")
	}
	if rec2.Steps != 10500 || rec2.Health != 100 {
		t.Errorf("record = %d steps / %d health, want 10500/100", rec2.Steps, rec2.Health)
	}

	var count int64
	repo.DB().Model(&model.DailyStepRecord{}).Where("user_id = ?", "u1").Count(&count)
	if count != 1 {
		t.Errorf("record count = %d, want 1", count)
	}
}

func TestGetRange_OrderedWithinWindow(t *testing.T) {
	repo := NewStepRepository(testDB(t))
	start := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		if _, err := repo.UpsertRecord("u1", start.AddDate(0, 0, i), 1000*(i+1), 10000); err != nil {
			t.Fatalf("seed day %d: %v", i, err)
		}
	}

	records, err := repo.GetRange("u1", start.AddDate(0, 0, 1), start.AddDate(0, 0, 4))
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len = %d, want 3", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].Day.Before(records[i-1].Day) {
			t.Error("records not ascending by day")
		}
	}
}

func TestGetStreak_CreatesOnMissing(t *testing.T) {
	repo := NewStepRepository(testDB(t))

	streak, err := repo.GetStreak("u1")
	if err != nil {
		t.Fatalf("first get: %v", err)
	}
	if streak.CurrentStreak != 0 || streak.UserID != "u1" {
		t.Errorf("fresh streak = %+v", streak)
	}

	again, err := repo.GetStreak("u1")
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if again.ID != streak.ID {
		t.Error("second GetStreak created a new row")
	}
}

func TestDeleteOlderThan(t *testing.T) {
	repo := NewStepRepository(testDB(t))
	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 10; i++ {
		if _, err := repo.UpsertRecord("u1", base.AddDate(0, 0, i), 5000, 10000); err != nil {
			t.Fatalf("seed day %d: %v", i, err)
		}
	}

	cutoff := base.AddDate(0, 0, 4)
	deleted, err := repo.DeleteOlderThan("u1", cutoff)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted != 4 {
		t.Errorf("deleted = %d, want 4", deleted)
	}

	remaining, err := repo.GetRange("u1", base, base.AddDate(0, 0, 10))
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	for _, r := range remaining {
		if r.Day.Before(cutoff) {
			t.Errorf("record %v survived below cutoff %v", r.Day, cutoff)
		}
	}
}

func TestBestDay(t *testing.T) {
	repo := NewStepRepository(testDB(t))
	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	for i, steps := range []int{4000, 14000, 9000} {
		if _, err := repo.UpsertRecord("u1", base.AddDate(0, 0, i), steps, 10000); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	best, err := repo.BestDay("u1")
	if err != nil {
		t.Fatalf("best day: %v", err)
	}
	if best != 14000 {
		t.Errorf("best = %d, want 14000", best)
	}

	empty, err := repo.BestDay("nobody")
	if err != nil {
		t.Fatalf("best day empty: %v", err)
	}
	if empty != 0 {
		t.Errorf("best for unknown user = %d, want 0", empty)
	}
}
