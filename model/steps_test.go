package model

import (
	"testing"
	"time"

	"github.com/itsmontel/steppet_api/shared"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestHealthScore(t *testing.T) {
	cases := []struct {
		steps, goal, want int
	}{
		{0, 10000, 0},
		{5000, 10000, 50},
		{10000, 10000, 100},
		{15000, 10000, 100},
		{50, 10000, 1},
		{49, 10000, 0},
		{3333, 10000, 33},
		{-100, 10000, 0},
		{5000, 0, 0},
		{5000, -1, 0},
	}

	for _, c := range cases {
		if got := HealthScore(c.steps, c.goal); got != c.want {
			t.Errorf("HealthScore(%d, %d) = %d, want %d", c.steps, c.goal, got, c.want)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	a := day(2026, time.March, 10)
	if got := DaysBetween(a, a.AddDate(0, 0, 1)); got != 1 {
		t.Errorf("DaysBetween next day = %d, want 1", got)
	}
	if got := DaysBetween(a, a.AddDate(0, 0, -3)); got != -3 {
		t.Errorf("DaysBetween three days back = %d, want -3", got)
	}
	if got := DaysBetween(a, a.Add(23*time.Hour)); got != 0 {
		t.Errorf("DaysBetween same day = %d, want 0", got)
	}
}

func TestStreakUpdate_Increment(t *testing.T) {
	d1 := day(2026, time.March, 10)
	s := StreakData{CurrentStreak: 4, LongestStreak: 4}
	s.LastGoalAchievedDate = &d1

	s.Update(true, d1.AddDate(0, 0, 1))

	if s.CurrentStreak != 5 {
		t.Errorf("streak = %d, want 5", s.CurrentStreak)
	}
	if s.LongestStreak != 5 {
		t.Errorf("longest = %d, want 5", s.LongestStreak)
	}
	if !s.LastGoalAchievedDate.Equal(d1.AddDate(0, 0, 1)) {
		t.Errorf("anchor = %v, want %v", s.LastGoalAchievedDate, d1.AddDate(0, 0, 1))
	}
}

func TestStreakUpdate_SameDayNoIncrement(t *testing.T) {
	d1 := day(2026, time.March, 10)
	s := StreakData{CurrentStreak: 4, LongestStreak: 4}
	s.LastGoalAchievedDate = &d1

	s.Update(true, d1.Add(18*time.Hour))

	if s.CurrentStreak != 4 {
		t.Errorf("streak = %d, want 4", s.CurrentStreak)
	}
}

func TestStreakUpdate_SameDayFloorsZero(t *testing.T) {
	d1 := day(2026, time.March, 10)
	s := StreakData{CurrentStreak: 0, LongestStreak: 9}
	s.LastGoalAchievedDate = &d1

	s.Update(true, d1)

	if s.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1", s.CurrentStreak)
	}
	if s.LongestStreak != 9 {
		t.Errorf("longest = %d, want 9", s.LongestStreak)
	}
}

func TestStreakUpdate_GapResetsToOne(t *testing.T) {
	d1 := day(2026, time.March, 10)
	s := StreakData{CurrentStreak: 14, LongestStreak: 14}
	s.LastGoalAchievedDate = &d1

	s.Update(true, d1.AddDate(0, 0, 3))

	if s.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1", s.CurrentStreak)
	}
	if s.LongestStreak != 14 {
		t.Errorf("longest = %d, want 14", s.LongestStreak)
	}
}

func TestStreakUpdate_BackdatedAnchorStays(t *testing.T) {
	d1 := day(2026, time.March, 10)
	s := StreakData{CurrentStreak: 4, LongestStreak: 4}
	s.LastGoalAchievedDate = &d1

	s.Update(true, d1.AddDate(0, 0, -2))

	if s.CurrentStreak != 4 {
		t.Errorf("streak = %d, want 4", s.CurrentStreak)
	}
	if !s.LastGoalAchievedDate.Equal(d1) {
		t.Errorf("anchor moved backward to %v", s.LastGoalAchievedDate)
	}
}

func TestStreakUpdate_FirstAchievement(t *testing.T) {
	s := StreakData{}

	s.Update(true, day(2026, time.March, 10))

	if s.CurrentStreak != 1 || s.LongestStreak != 1 {
		t.Errorf("streak = %d/%d, want 1/1", s.CurrentStreak, s.LongestStreak)
	}
}

func TestStreakUpdate_LazyResetOnMiss(t *testing.T) {
	d1 := day(2026, time.March, 10)
	s := StreakData{CurrentStreak: 7, LongestStreak: 7}
	s.LastGoalAchievedDate = &d1

	// Next day without goal: streak stands.
	s.Update(false, d1.AddDate(0, 0, 1))
	if s.CurrentStreak != 7 {
		t.Errorf("streak after one missed day = %d, want 7", s.CurrentStreak)
	}

	// Two days later the gap is discovered, the streak zeroes.
	s.Update(false, d1.AddDate(0, 0, 2))
	if s.CurrentStreak != 0 {
		t.Errorf("streak after gap = %d, want 0", s.CurrentStreak)
	}
	if s.LongestStreak != 7 {
		t.Errorf("longest = %d, want 7", s.LongestStreak)
	}
}

func TestBadgeForStreak(t *testing.T) {
	cases := []struct {
		streak int
		badge  string
	}{
		{0, shared.BadgeNone},
		{2, shared.BadgeNone},
		{3, shared.BadgeBronze},
		{6, shared.BadgeBronze},
		{7, shared.BadgeSilver},
		{13, shared.BadgeSilver},
		{14, shared.BadgeGold},
		{29, shared.BadgeGold},
		{30, shared.BadgePlatinum},
		{99, shared.BadgePlatinum},
		{100, shared.BadgeDiamond},
		{365, shared.BadgeDiamond},
	}

	for _, c := range cases {
		if got := BadgeForStreak(c.streak); got != c.badge {
			t.Errorf("BadgeForStreak(%d) = %q, want %q", c.streak, got, c.badge)
		}
	}
}

func TestCrossedMilestone(t *testing.T) {
	if got := CrossedMilestone(6, 7); got != 7 {
		t.Errorf("CrossedMilestone(6, 7) = %d, want 7", got)
	}
	if got := CrossedMilestone(7, 8); got != 0 {
		t.Errorf("CrossedMilestone(7, 8) = %d, want 0", got)
	}
	if got := CrossedMilestone(0, 30); got != 30 {
		t.Errorf("CrossedMilestone(0, 30) = %d, want 30 (highest crossed)", got)
	}
	if got := CrossedMilestone(99, 100); got != 100 {
		t.Errorf("CrossedMilestone(99, 100) = %d, want 100", got)
	}
}

func TestWeekStart(t *testing.T) {
	// 2026-03-11 is a Wednesday; the week starts on Monday the 9th.
	wed := time.Date(2026, time.March, 11, 15, 30, 0, 0, time.UTC)
	if got := WeekStart(wed); !got.Equal(day(2026, time.March, 9)) {
		t.Errorf("WeekStart(wed) = %v, want 2026-03-09", got)
	}

	// Sunday belongs to the week started the previous Monday.
	sun := day(2026, time.March, 15)
	if got := WeekStart(sun); !got.Equal(day(2026, time.March, 9)) {
		t.Errorf("WeekStart(sun) = %v, want 2026-03-09", got)
	}

	mon := day(2026, time.March, 9)
	if got := WeekStart(mon); !got.Equal(mon) {
		t.Errorf("WeekStart(mon) = %v, want itself", got)
	}
}

func TestSummarize(t *testing.T) {
	start := day(2026, time.March, 9)
	records := []DailyStepRecord{
		{Day: start, Steps: 10000, GoalSteps: 10000, Health: 100},
		{Day: start.AddDate(0, 0, 1), Steps: 12000, GoalSteps: 10000, Health: 100},
		{Day: start.AddDate(0, 0, 2), Steps: 4000, GoalSteps: 10000, Health: 40},
		{Day: start.AddDate(0, 0, 3), Steps: 11000, GoalSteps: 10000, Health: 100},
		// Outside the window, must be ignored.
		{Day: start.AddDate(0, 0, 7), Steps: 99999, GoalSteps: 10000, Health: 100},
	}

	s := Summarize(records, start, start.AddDate(0, 0, 7))

	if s.TotalSteps != 37000 {
		t.Errorf("TotalSteps = %d, want 37000", s.TotalSteps)
	}
	if s.AverageSteps != 9250 {
		t.Errorf("AverageSteps = %d, want 9250", s.AverageSteps)
	}
	if s.GoalsAchieved != 3 {
		t.Errorf("GoalsAchieved = %d, want 3", s.GoalsAchieved)
	}
	if s.BestDay != 12000 {
		t.Errorf("BestDay = %d, want 12000", s.BestDay)
	}
	if s.AverageHealth != 85 {
		t.Errorf("AverageHealth = %d, want 85", s.AverageHealth)
	}
	if s.LongestStreak != 2 {
		t.Errorf("LongestStreak = %d, want 2", s.LongestStreak)
	}
}

func TestSummarize_Empty(t *testing.T) {
	start := day(2026, time.March, 9)
	s := Summarize(nil, start, start.AddDate(0, 0, 7))

	if s.TotalSteps != 0 || s.AverageSteps != 0 || s.BestDay != 0 {
		t.Errorf("empty summary not zeroed: %+v", s)
	}
}
