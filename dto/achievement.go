package dto

import "time"

// ==================== ACHIEVEMENT DTOs ====================

type AchievementResponse struct {
	ID          string     `json:"id" example:"ten_thousand"`
	Title       string     `json:"title" example:"10K Club"`
	Description string     `json:"description" example:"Walk 10,000 steps in a single day"`
	Category    string     `json:"category" example:"steps"`
	Rarity      string     `json:"rarity" example:"common"`
	Icon        string     `json:"icon" example:"walk"`
	Progress    int        `json:"progress" example:"8421"`
	Target      int        `json:"target" example:"10000"`
	Unlocked    bool       `json:"unlocked" example:"false"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty" example:"2025-06-01T21:14:00Z"`
}

type AchievementListResponse struct {
	Achievements []AchievementResponse `json:"achievements"`
	Unlocked     int                   `json:"unlocked" example:"12"`
	Total        int                   `json:"total" example:"70"`
}
