package dto

import "time"

// ==================== USER PROFILE DTOs ====================

type UserProfileResponse struct {
	UserID        string    `json:"user_id" example:"0190d4a0-..."`
	Name          string    `json:"name" example:"Friend"`
	DailyStepGoal int       `json:"daily_step_goal" example:"10000"`
	ActivityLevel string    `json:"activity_level" example:"active"`
	Premium       bool      `json:"premium" example:"false"`
	FirstLaunch   time.Time `json:"first_launch" example:"2025-01-01T00:00:00Z"`
	DaysUsed      int       `json:"days_used" example:"42"`
	GoalsAchieved int       `json:"goals_achieved" example:"17"`
	TotalSteps    int64     `json:"total_steps" example:"412345"`
}

type UpdateProfileRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=40" example:"Alex"`
}

func (u UpdateProfileRequest) Validate() error {
	return GetValidator().Struct(u)
}

type UpdateGoalRequest struct {
	DailyStepGoal int `json:"daily_step_goal" validate:"required,gte=1000,lte=100000" example:"10000"`
}

func (u UpdateGoalRequest) Validate() error {
	return GetValidator().Struct(u)
}

type SetPremiumRequest struct {
	Premium bool `json:"premium" example:"true"`
}

// ProfileUpdateResponse pairs the updated profile with any achievements the
// change unlocked.
type ProfileUpdateResponse struct {
	Profile    UserProfileResponse   `json:"profile"`
	NewUnlocks []AchievementResponse `json:"new_unlocks"`
}

// ==================== CLIENT EVENT DTOs ====================

// Client-side interactions that feed single-trigger achievements the server
// cannot observe on its own (section visits, notification opt-in).
type ClientEventRequest struct {
	Event   string `json:"event" validate:"required,oneof=section_visited notifications_enabled health_checked" example:"section_visited"`
	Section string `json:"section,omitempty" validate:"omitempty,oneof=home pet awards stats profile" example:"awards"`
}

func (c ClientEventRequest) Validate() error {
	return GetValidator().Struct(c)
}

type ClientEventResponse struct {
	NewUnlocks []AchievementResponse `json:"new_unlocks"`
}
