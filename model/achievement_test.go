package model

import (
	"testing"
	"time"
)

func newSet(saved ...UserAchievement) *AchievementSet {
	return MergeAchievements(Catalog(), saved)
}

func TestCatalogSize(t *testing.T) {
	if n := len(Catalog()); n != 70 {
		t.Errorf("catalog has %d entries, want 70", n)
	}
}

func TestCatalogUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, def := range Catalog() {
		if seen[def.ID] {
			t.Errorf("duplicate catalog id %q", def.ID)
		}
		seen[def.ID] = true
	}
}

func TestUpdateProgress_ThresholdBoundary(t *testing.T) {
	now := day(2026, time.March, 10)
	s := newSet()

	s.UpdateProgress("ten_thousand", 9999, now)
	a, _ := s.Get("ten_thousand")
	if a.Unlocked {
		t.Error("unlocked at 9999 steps")
	}
	if a.Progress != 9999 {
		t.Errorf("progress = %d, want 9999", a.Progress)
	}

	s.UpdateProgress("ten_thousand", 10000, now)
	a, _ = s.Get("ten_thousand")
	if !a.Unlocked {
		t.Error("not unlocked at 10000 steps")
	}
	if a.Progress != 10000 {
		t.Errorf("progress = %d, want capped at 10000", a.Progress)
	}
}

func TestUpdateProgress_CapsAboveTarget(t *testing.T) {
	now := day(2026, time.March, 10)
	s := newSet()

	s.UpdateProgress("ten_thousand", 25000, now)
	a, _ := s.Get("ten_thousand")
	if a.Progress != 10000 {
		t.Errorf("progress = %d, want 10000", a.Progress)
	}
}

func TestUnlock_Monotonic(t *testing.T) {
	now := day(2026, time.March, 10)
	s := newSet()

	s.UpdateProgress("ten_thousand", 10000, now)
	a, _ := s.Get("ten_thousand")
	unlockedAt := *a.UnlockedAt

	// A later lower reading never re-locks or moves the timestamp.
	s.UpdateProgress("ten_thousand", 500, now.AddDate(0, 0, 1))
	a, _ = s.Get("ten_thousand")
	if !a.Unlocked {
		t.Error("achievement re-locked")
	}
	if !a.UnlockedAt.Equal(unlockedAt) {
		t.Error("unlock timestamp moved")
	}
}

func TestUnlockedNow_OnlyThisPass(t *testing.T) {
	now := day(2026, time.March, 10)
	prev := now.AddDate(0, 0, -5)
	s := newSet(UserAchievement{
		AchievementID: "first_step", Progress: 1, Unlocked: true, UnlockedAt: &prev,
	})

	s.UpdateProgress("ten_thousand", 10000, now)

	got := s.UnlockedNow()
	if len(got) != 1 || got[0].ID != "ten_thousand" {
		t.Errorf("UnlockedNow = %v, want only ten_thousand", got)
	}
}

func TestMerge_SavedStateWins(t *testing.T) {
	s := newSet(UserAchievement{AchievementID: "ten_thousand", Progress: 4000})

	a, _ := s.Get("ten_thousand")
	if a.Progress != 4000 {
		t.Errorf("progress = %d, want 4000", a.Progress)
	}
	if a.Target != 10000 {
		t.Errorf("target = %d, want catalog value 10000", a.Target)
	}
}

func TestMerge_UnknownSavedIDDropped(t *testing.T) {
	s := newSet(UserAchievement{AchievementID: "retired_badge", Progress: 3})

	if _, ok := s.Get("retired_badge"); ok {
		t.Error("unknown saved id survived merge")
	}
	if n := len(s.All()); n != len(Catalog()) {
		t.Errorf("set size = %d, want %d", n, len(Catalog()))
	}
}

func TestMerge_OverTargetProgressClamped(t *testing.T) {
	s := newSet(UserAchievement{AchievementID: "ten_thousand", Progress: 99999})

	a, _ := s.Get("ten_thousand")
	if a.Progress != 10000 {
		t.Errorf("progress = %d, want clamped to 10000", a.Progress)
	}
}

func TestResetDailyAchievements(t *testing.T) {
	now := day(2026, time.March, 10)
	s := newSet()

	s.UpdateProgress("ten_thousand", 8000, now)
	s.UpdateProgress("marathon_day", 8000, now)
	s.UpdateProgress("hundred_k_total", 8000, now)
	s.UpdateProgress("first_step", 1, now)

	s.ResetDailyAchievements()

	a, _ := s.Get("ten_thousand")
	if a.Progress != 0 {
		t.Errorf("ten_thousand progress = %d, want 0 after rollover", a.Progress)
	}
	a, _ = s.Get("marathon_day")
	if a.Progress != 0 {
		t.Errorf("marathon_day progress = %d, want 0 after rollover", a.Progress)
	}

	// Lifetime totals survive the rollover.
	a, _ = s.Get("hundred_k_total")
	if a.Progress != 8000 {
		t.Errorf("hundred_k_total progress = %d, want 8000", a.Progress)
	}

	// Unlocked entries are never reset.
	a, _ = s.Get("first_step")
	if !a.Unlocked || a.Progress != 1 {
		t.Errorf("first_step = %+v, want unlocked with full progress", a)
	}
}

func TestIncrementStreakProgress_Caps(t *testing.T) {
	now := day(2026, time.March, 10)
	s := newSet(UserAchievement{AchievementID: "early_bird", Progress: 4})

	a, _ := s.Get("early_bird")
	target := a.Target

	for i := 0; i < target+3; i++ {
		s.IncrementStreakProgress("early_bird", target, now)
	}

	a, _ = s.Get("early_bird")
	if a.Progress != target {
		t.Errorf("progress = %d, want %d", a.Progress, target)
	}
	if !a.Unlocked {
		t.Error("not unlocked at cap")
	}
}

func TestCheckAchievements_StepThresholds(t *testing.T) {
	now := day(2026, time.March, 10)
	s := newSet()

	s.CheckAchievements(MetricsSnapshot{
		Date:       now,
		TodaySteps: 15000,
		TotalSteps: 15000,
		GoalSteps:  10000,
		Health:     100,
		DaysUsed:   1,
	})

	for _, id := range []string{"step_up", "getting_started", "ten_thousand", "fifteen_k", "first_goal", "first_step", "full_health_first"} {
		a, _ := s.Get(id)
		if !a.Unlocked {
			t.Errorf("%s not unlocked", id)
		}
	}

	a, _ := s.Get("twenty_k")
	if a.Unlocked {
		t.Error("twenty_k unlocked at 15000 steps")
	}
}

func TestCheckAchievements_ExactAndMultiples(t *testing.T) {
	now := day(2026, time.March, 10)
	s := newSet()

	s.CheckAchievements(MetricsSnapshot{
		Date:       now,
		TodaySteps: 20000,
		GoalSteps:  10000,
	})

	if a, _ := s.Get("double_trouble"); !a.Unlocked {
		t.Error("double_trouble not unlocked at 2x goal")
	}
	if a, _ := s.Get("triple_threat"); a.Unlocked {
		t.Error("triple_threat unlocked at 2x goal")
	}

	s2 := newSet()
	s2.CheckAchievements(MetricsSnapshot{Date: now, TodaySteps: 7777, GoalSteps: 10000})
	if a, _ := s2.Get("lucky_seven"); !a.Unlocked {
		t.Error("lucky_seven not unlocked at exactly 7777")
	}

	s3 := newSet()
	s3.CheckAchievements(MetricsSnapshot{Date: now, TodaySteps: 10000, GoalSteps: 10000})
	if a, _ := s3.Get("photo_finish"); !a.Unlocked {
		t.Error("photo_finish not unlocked at exact goal")
	}
}

func TestCheckAchievements_HealthRecovery(t *testing.T) {
	now := day(2026, time.March, 10)
	s := newSet()

	s.CheckAchievements(MetricsSnapshot{Date: now, Health: 100, PrevHealth: 80})
	if a, _ := s.Get("health_recovery"); a.Unlocked {
		t.Error("health_recovery unlocked without a low starting point")
	}

	s.CheckAchievements(MetricsSnapshot{Date: now, Health: 100, PrevHealth: 30})
	if a, _ := s.Get("health_recovery"); !a.Unlocked {
		t.Error("health_recovery not unlocked climbing from 30 to 100")
	}
}

func TestCheckAchievements_CloseCall(t *testing.T) {
	lateNight := time.Date(2026, time.March, 10, 23, 40, 0, 0, time.UTC)
	s := newSet()

	s.CheckAchievements(MetricsSnapshot{
		Date:             lateNight,
		TodaySteps:       10000,
		GoalSteps:        10000,
		GoalJustAchieved: true,
	})
	if a, _ := s.Get("close_call"); !a.Unlocked {
		t.Error("close_call not unlocked for a 23h goal")
	}

	s2 := newSet()
	earlier := time.Date(2026, time.March, 10, 22, 59, 0, 0, time.UTC)
	s2.CheckAchievements(MetricsSnapshot{
		Date:             earlier,
		TodaySteps:       10000,
		GoalSteps:        10000,
		GoalJustAchieved: true,
	})
	if a, _ := s2.Get("close_call"); a.Unlocked {
		t.Error("close_call unlocked before 23h")
	}
}

func TestDirtyTracking(t *testing.T) {
	now := day(2026, time.March, 10)
	s := newSet()

	s.UpdateProgress("ten_thousand", 5000, now)
	s.UpdateProgress("ten_thousand", 5000, now)

	dirty := s.Dirty()
	if len(dirty) != 1 || dirty[0] != "ten_thousand" {
		t.Errorf("Dirty() = %v, want [ten_thousand]", dirty)
	}
}
