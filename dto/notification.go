package dto

import "time"

// ==================== NOTIFICATION DTOs ====================

type NotificationEventResponse struct {
	ID        string    `json:"id" example:"0190d4a0-..."`
	Kind      string    `json:"kind" example:"achievement_unlocked"`
	RefID     string    `json:"ref_id,omitempty" example:"ten_thousand"`
	PetName   string    `json:"pet_name" example:"Whiskers"`
	Streak    int       `json:"streak,omitempty" example:"7"`
	CreatedAt time.Time `json:"created_at" example:"2025-06-01T21:14:00Z"`
}

type NotificationFeedResponse struct {
	Events []NotificationEventResponse `json:"events"`
	Total  int                         `json:"total" example:"3"`
}

// ==================== WIDGET DTOs ====================

type WidgetSnapshotResponse struct {
	PetType       string `json:"pet_type" example:"cat"`
	PetName       string `json:"pet_name" example:"Whiskers"`
	Mood          string `json:"mood" example:"happy"`
	TodaySteps    int    `json:"today_steps" example:"8421"`
	GoalSteps     int    `json:"goal_steps" example:"10000"`
	Health        int    `json:"health" example:"84"`
	CurrentStreak int    `json:"current_streak" example:"5"`
}
