package dto

import "time"

// ==================== STEP DTOs ====================

type RecordStepsRequest struct {
	Steps int `json:"steps" validate:"gte=0,lte=500000" example:"8421"`
	// Optional client timestamp; defaults to server time when absent.
	RecordedAt *time.Time `json:"recorded_at,omitempty" example:"2025-06-01T14:05:00Z"`
}

func (r RecordStepsRequest) Validate() error {
	return GetValidator().Struct(r)
}

type StepRecordResponse struct {
	Day       time.Time `json:"day" example:"2025-06-01T00:00:00Z"`
	Steps     int       `json:"steps" example:"8421"`
	GoalSteps int       `json:"goal_steps" example:"10000"`
	Health    int       `json:"health" example:"84"`
	GoalMet   bool      `json:"goal_met" example:"false"`
}

type RecordStepsResponse struct {
	Record        StepRecordResponse    `json:"record"`
	Pet           PetResponse           `json:"pet"`
	Streak        StreakResponse        `json:"streak"`
	NewUnlocks    []AchievementResponse `json:"new_unlocks"`
	GoalAchieved  bool                  `json:"goal_achieved" example:"false"`
	StreakCrossed int                   `json:"streak_milestone,omitempty" example:"7"`
}

type StepHistoryResponse struct {
	Records []StepRecordResponse `json:"records"`
	Total   int                  `json:"total" example:"30"`
}

type PeriodSummaryResponse struct {
	Start         time.Time `json:"start" example:"2025-05-26T00:00:00Z"`
	End           time.Time `json:"end" example:"2025-06-02T00:00:00Z"`
	TotalSteps    int       `json:"total_steps" example:"61230"`
	AverageSteps  int       `json:"average_steps" example:"8747"`
	GoalsAchieved int       `json:"goals_achieved" example:"4"`
	BestDay       int       `json:"best_day" example:"14892"`
	AverageHealth int       `json:"average_health" example:"81"`
	LongestStreak int       `json:"longest_streak,omitempty" example:"5"`
}

type LifetimeStatsResponse struct {
	TotalSteps    int64 `json:"total_steps" example:"1412345"`
	GoalsAchieved int   `json:"goals_achieved" example:"112"`
	DaysUsed      int   `json:"days_used" example:"230"`
	BestDay       int   `json:"best_day" example:"31204"`
}

// ==================== STREAK DTOs ====================

type StreakResponse struct {
	CurrentStreak        int        `json:"current_streak" example:"5"`
	LongestStreak        int        `json:"longest_streak" example:"12"`
	Badge                string     `json:"badge" example:"bronze"`
	LastGoalAchievedDate *time.Time `json:"last_goal_achieved_date,omitempty" example:"2025-06-01T00:00:00Z"`
}
