package model

import "time"

// UserAchievement is the persisted per-user mutable state for one catalog
// entry. Immutable fields (target, rarity, category) stay in the catalog.
type UserAchievement struct {
	ID            string     `json:"id" gorm:"primaryKey"`
	UserID        string     `json:"user_id" gorm:"not null;uniqueIndex:idx_user_achievement"`
	AchievementID string     `json:"achievement_id" gorm:"not null;uniqueIndex:idx_user_achievement"`
	Progress      int        `json:"progress" gorm:"not null"`
	Unlocked      bool       `json:"unlocked" gorm:"not null"`
	UnlockedAt    *time.Time `json:"unlocked_at"`
	CreatedAt     time.Time  `json:"created_at" gorm:"not null"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"not null"`
}

// Achievement is the merged view of a catalog definition and its per-user
// state.
type Achievement struct {
	AchievementDef
	Progress   int        `json:"progress"`
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

// AchievementSet holds one user's merged achievements and records which
// entries changed so callers can persist only the dirty rows.
type AchievementSet struct {
	items       []Achievement
	index       map[string]int
	dirty       map[string]bool
	unlockedNow []string
}

// MergeAchievements builds the set by keyed union: saved state wins for the
// mutable fields, the catalog wins for the immutable ones. Saved ids absent
// from the catalog are dropped; catalog ids without saved state start fresh.
func MergeAchievements(defs []AchievementDef, saved []UserAchievement) *AchievementSet {
	byID := make(map[string]UserAchievement, len(saved))
	for _, s := range saved {
		byID[s.AchievementID] = s
	}

	set := &AchievementSet{
		items: make([]Achievement, 0, len(defs)),
		index: make(map[string]int, len(defs)),
		dirty: make(map[string]bool),
	}

	for _, def := range defs {
		a := Achievement{AchievementDef: def}
		if s, ok := byID[def.ID]; ok {
			a.Progress = s.Progress
			a.Unlocked = s.Unlocked
			a.UnlockedAt = s.UnlockedAt
			if a.Progress > def.Target {
				a.Progress = def.Target
			}
			if a.Unlocked {
				a.Progress = def.Target
			}
		}
		set.index[def.ID] = len(set.items)
		set.items = append(set.items, a)
	}

	return set
}

func (s *AchievementSet) All() []Achievement {
	out := make([]Achievement, len(s.items))
	copy(out, s.items)
	return out
}

func (s *AchievementSet) Get(id string) (Achievement, bool) {
	i, ok := s.index[id]
	if !ok {
		return Achievement{}, false
	}
	return s.items[i], true
}

func (s *AchievementSet) Unlocked() []Achievement {
	var out []Achievement
	for _, a := range s.items {
		if a.Unlocked {
			out = append(out, a)
		}
	}
	return out
}

func (s *AchievementSet) UnlockedCount() int {
	n := 0
	for _, a := range s.items {
		if a.Unlocked {
			n++
		}
	}
	return n
}

// Dirty returns the ids mutated since the set was built.
func (s *AchievementSet) Dirty() []string {
	out := make([]string, 0, len(s.dirty))
	for _, a := range s.items {
		if s.dirty[a.ID] {
			out = append(out, a.ID)
		}
	}
	return out
}

// UnlockedNow returns achievements unlocked during this evaluation pass,
// in unlock order. The service layer turns these into notification events.
func (s *AchievementSet) UnlockedNow() []Achievement {
	out := make([]Achievement, 0, len(s.unlockedNow))
	for _, id := range s.unlockedNow {
		if a, ok := s.Get(id); ok {
			out = append(out, a)
		}
	}
	return out
}

// UpdateProgress sets progress capped at the target and unlocks when the
// target is reached. Unknown ids and already-unlocked entries are no-ops.
func (s *AchievementSet) UpdateProgress(id string, progress int, now time.Time) {
	i, ok := s.index[id]
	if !ok || s.items[i].Unlocked {
		return
	}

	capped := progress
	if capped > s.items[i].Target {
		capped = s.items[i].Target
	}
	if capped < 0 {
		capped = 0
	}
	if capped == s.items[i].Progress {
		if capped >= s.items[i].Target {
			s.unlock(i, now)
		}
		return
	}

	s.items[i].Progress = capped
	s.dirty[id] = true
	if capped >= s.items[i].Target {
		s.unlock(i, now)
	}
}

// Unlock marks the achievement unlocked directly. Idempotent; unknown ids
// are ignored.
func (s *AchievementSet) Unlock(id string, now time.Time) {
	i, ok := s.index[id]
	if !ok || s.items[i].Unlocked {
		return
	}
	s.unlock(i, now)
}

func (s *AchievementSet) unlock(i int, now time.Time) {
	s.items[i].Unlocked = true
	s.items[i].Progress = s.items[i].Target
	s.items[i].UnlockedAt = &now
	s.dirty[s.items[i].ID] = true
	s.unlockedNow = append(s.unlockedNow, s.items[i].ID)
}

// IncrementStreakProgress adds one day of progress, capped at max, and
// unlocks on reaching it. Callers must invoke it at most once per day per
// id; the set has no way to detect a double count.
func (s *AchievementSet) IncrementStreakProgress(id string, max int, now time.Time) {
	i, ok := s.index[id]
	if !ok || s.items[i].Unlocked {
		return
	}

	next := s.items[i].Progress + 1
	if next > max {
		next = max
	}
	s.UpdateProgress(id, next, now)
}

// ResetDailyProgress zeroes the progress of a not-yet-unlocked achievement.
func (s *AchievementSet) ResetDailyProgress(id string) {
	i, ok := s.index[id]
	if !ok || s.items[i].Unlocked {
		return
	}
	if s.items[i].Progress != 0 {
		s.items[i].Progress = 0
		s.dirty[s.items[i].ID] = true
	}
}

// MetricsSnapshot carries the derived values a bulk evaluation reads. All
// fields are computed before the call; the evaluation itself is pure.
type MetricsSnapshot struct {
	Date             time.Time
	TodaySteps       int
	WeekSteps        int
	TotalSteps       int
	Streak           int
	Health           int
	PrevHealth       int
	GoalSteps        int
	GoalsAchieved    int
	DaysUsed         int
	PetsUsed         int
	GoalJustAchieved bool
}

// CheckAchievements evaluates every rule family against the snapshot.
// Threshold and milestone rules go through UpdateProgress and are idempotent
// within a day; the consecutive-day family is driven separately by the day
// rollover, not from here.
func (s *AchievementSet) CheckAchievements(m MetricsSnapshot) {
	now := m.Date

	if m.DaysUsed >= 1 {
		s.UpdateProgress("first_step", 1, now)
	}

	// Single-day step thresholds, zeroed at rollover if unmet.
	s.UpdateProgress("step_up", m.TodaySteps, now)
	s.UpdateProgress("getting_started", m.TodaySteps, now)
	s.UpdateProgress("ten_thousand", m.TodaySteps, now)
	s.UpdateProgress("fifteen_k", m.TodaySteps, now)
	s.UpdateProgress("twenty_k", m.TodaySteps, now)
	s.UpdateProgress("marathon_day", m.TodaySteps, now)
	s.UpdateProgress("ultra_walker", m.TodaySteps, now)

	// Lifetime totals.
	s.UpdateProgress("hundred_k_total", m.TotalSteps, now)
	s.UpdateProgress("half_million", m.TotalSteps, now)
	s.UpdateProgress("millionaire", m.TotalSteps, now)
	s.UpdateProgress("five_million", m.TotalSteps, now)
	s.UpdateProgress("ten_million", m.TotalSteps, now)

	// Streak thresholds track the live streak value.
	s.UpdateProgress("on_fire", m.Streak, now)
	s.UpdateProgress("week_warrior", m.Streak, now)
	s.UpdateProgress("two_week_titan", m.Streak, now)
	s.UpdateProgress("monthly_master", m.Streak, now)
	s.UpdateProgress("dedication", m.Streak, now)
	s.UpdateProgress("streak_legend", m.Streak, now)

	// Weekly step volume.
	s.UpdateProgress("weekly_75k", m.WeekSteps, now)
	s.UpdateProgress("weekly_100k", m.WeekSteps, now)

	if m.Health == 100 {
		s.UpdateProgress("full_health_first", 1, now)
	}
	if m.Health == 100 && m.PrevHealth < 50 {
		s.UpdateProgress("health_recovery", 1, now)
	}

	if m.GoalSteps > 0 && m.TodaySteps >= m.GoalSteps {
		s.UpdateProgress("first_goal", 1, now)
	}

	// Usage milestones.
	s.UpdateProgress("one_week_user", m.DaysUsed, now)
	s.UpdateProgress("one_month_user", m.DaysUsed, now)
	s.UpdateProgress("three_month_user", m.DaysUsed, now)
	s.UpdateProgress("six_month_user", m.DaysUsed, now)
	s.UpdateProgress("one_year_user", m.DaysUsed, now)
	s.UpdateProgress("first_anniversary", m.DaysUsed, now)
	s.UpdateProgress("hundred_goals", m.GoalsAchieved, now)
	s.UpdateProgress("thousand_goals", m.GoalsAchieved, now)

	s.UpdateProgress("pet_lover", m.PetsUsed, now)

	// Multiplicative goal rules.
	if m.GoalSteps > 0 && m.TodaySteps >= m.GoalSteps*2 {
		s.UpdateProgress("double_trouble", 1, now)
	}
	if m.GoalSteps > 0 && m.TodaySteps >= m.GoalSteps*3 {
		s.UpdateProgress("triple_threat", 1, now)
	}

	if m.TodaySteps == 7777 {
		s.UpdateProgress("lucky_seven", 1, now)
	}
	if m.GoalSteps > 0 && m.TodaySteps == m.GoalSteps {
		s.UpdateProgress("photo_finish", 1, now)
	}
	if m.GoalJustAchieved && now.Hour() == 23 {
		s.UpdateProgress("close_call", 1, now)
	}
	if m.GoalSteps > 0 && m.WeekSteps >= m.GoalSteps*7*5/4 {
		s.UpdateProgress("overachiever", 1, now)
	}

	s.checkSpecialDates(m, now)
}

func (s *AchievementSet) checkSpecialDates(m MetricsSnapshot, now time.Time) {
	if m.GoalSteps <= 0 || m.TodaySteps < m.GoalSteps {
		return
	}
	month, day := now.Month(), now.Day()
	if month == time.January && day == 1 {
		s.UpdateProgress("new_years_walk", 1, now)
	}
	if month == time.December && day == 25 {
		s.UpdateProgress("holiday_spirit", 1, now)
	}
}

// ResetDailyAchievements zeroes partial progress of every single-day-window
// achievement. Run once at each day rollover.
func (s *AchievementSet) ResetDailyAchievements() {
	for _, id := range DailyAchievementIDs {
		s.ResetDailyProgress(id)
	}
}
