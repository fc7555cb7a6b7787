package model

import (
	"math"
	"time"

	"github.com/itsmontel/steppet_api/shared"
)

type DailyStepRecord struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;uniqueIndex:idx_user_day"`
	Day       time.Time `json:"day" gorm:"not null;uniqueIndex:idx_user_day"`
	Steps     int       `json:"steps" gorm:"not null"`
	GoalSteps int       `json:"goal_steps" gorm:"not null"`
	Health    int       `json:"health" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

func (r *DailyStepRecord) GoalMet() bool {
	return r.GoalSteps > 0 && r.Steps >= r.GoalSteps
}

// StartOfDay truncates to local midnight. All day-keyed state uses this
// normalization before storage or differencing.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the whole-day difference between two normalized days.
func DaysBetween(from, to time.Time) int {
	from = StartOfDay(from)
	to = StartOfDay(to)
	return int(math.Round(to.Sub(from).Hours() / 24))
}

// HealthScore derives the 0-100 health contribution of a day's steps.
// A non-positive goal forces 0 instead of dividing by zero.
func HealthScore(steps, goalSteps int) int {
	if goalSteps <= 0 {
		return 0
	}
	if steps < 0 {
		steps = 0
	}
	score := int(math.Round(float64(steps) / float64(goalSteps) * 100))
	return ClampHealth(score)
}

type StreakData struct {
	ID                   string     `json:"id" gorm:"primaryKey"`
	UserID               string     `json:"user_id" gorm:"not null;uniqueIndex"`
	CurrentStreak        int        `json:"current_streak" gorm:"not null"`
	LongestStreak        int        `json:"longest_streak" gorm:"not null"`
	LastGoalAchievedDate *time.Time `json:"last_goal_achieved_date"`
	CreatedAt            time.Time  `json:"created_at" gorm:"not null"`
	UpdatedAt            time.Time  `json:"updated_at" gorm:"not null"`
}

// Update runs the streak transition for one day. Callers are responsible
// for invoking it at most once per evaluation; the same-day case does not
// increment, it only floors a zero streak back to 1.
func (s *StreakData) Update(goalAchieved bool, date time.Time) {
	day := StartOfDay(date)

	if !goalAchieved {
		// Lazy reset: the streak stands until an evaluation discovers a gap.
		if s.LastGoalAchievedDate != nil && DaysBetween(*s.LastGoalAchievedDate, day) > 1 {
			s.CurrentStreak = 0
		}
		return
	}

	moveDate := true
	if s.LastGoalAchievedDate == nil {
		s.CurrentStreak = 1
	} else {
		switch delta := DaysBetween(*s.LastGoalAchievedDate, day); {
		case delta == 1:
			s.CurrentStreak++
		case delta <= 0:
			// Same day, or a date submitted out of order. No increment,
			// but a zero streak is floored back to 1. The anchor date
			// never moves backward.
			if s.CurrentStreak == 0 {
				s.CurrentStreak = 1
			}
			moveDate = delta == 0
		default:
			s.CurrentStreak = 1
		}
	}

	if moveDate {
		s.LastGoalAchievedDate = &day
	}
	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
}

func (s *StreakData) Badge() string {
	return BadgeForStreak(s.CurrentStreak)
}

func BadgeForStreak(streak int) string {
	switch {
	case streak < 3:
		return shared.BadgeNone
	case streak < 7:
		return shared.BadgeBronze
	case streak < 14:
		return shared.BadgeSilver
	case streak < 30:
		return shared.BadgeGold
	case streak < 100:
		return shared.BadgePlatinum
	default:
		return shared.BadgeDiamond
	}
}

var StreakMilestones = []int{7, 14, 30, 50, 100, 365}

// CrossedMilestone reports the milestone reached when the streak moved
// from prev to current, or 0 when none was crossed. A backfilled streak can
// jump over several milestones at once; only the highest one is reported.
func CrossedMilestone(prev, current int) int {
	for i := len(StreakMilestones) - 1; i >= 0; i-- {
		m := StreakMilestones[i]
		if prev < m && current >= m {
			return m
		}
	}
	return 0
}

type PeriodSummary struct {
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	TotalSteps    int       `json:"total_steps"`
	AverageSteps  int       `json:"average_steps"`
	GoalsAchieved int       `json:"goals_achieved"`
	BestDay       int       `json:"best_day"`
	AverageHealth int       `json:"average_health"`
	LongestStreak int       `json:"longest_streak,omitempty"`
}

// WeekStart returns the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// MonthStart returns the first day of the calendar month containing t.
func MonthStart(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// Summarize aggregates records belonging to [start, end). Records are
// assumed day-normalized and ascending; days without a record count as
// zero-step days only implicitly (they are absent from every total).
func Summarize(records []DailyStepRecord, start, end time.Time) PeriodSummary {
	summary := PeriodSummary{Start: start, End: end}

	counted := 0
	inMonthStreak := 0
	for _, r := range records {
		if r.Day.Before(start) || !r.Day.Before(end) {
			continue
		}
		counted++
		summary.TotalSteps += r.Steps
		summary.AverageHealth += r.Health
		if r.Steps > summary.BestDay {
			summary.BestDay = r.Steps
		}
		if r.GoalMet() {
			summary.GoalsAchieved++
			inMonthStreak++
			if inMonthStreak > summary.LongestStreak {
				summary.LongestStreak = inMonthStreak
			}
		} else {
			inMonthStreak = 0
		}
	}

	if counted > 0 {
		summary.AverageSteps = summary.TotalSteps / counted
		summary.AverageHealth = summary.AverageHealth / counted
	}

	return summary
}
