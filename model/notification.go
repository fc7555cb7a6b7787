package model

import "time"

const (
	EventGoalAchieved        = "goal_achieved"
	EventAchievementUnlocked = "achievement_unlocked"
	EventStreakMilestone     = "streak_milestone"
	EventPetStatus           = "pet_status"
)

// NotificationEvent is the side-channel record the engine emits on state
// changes. The mobile push scheduler consumes the pending feed and marks
// events shown.
type NotificationEvent struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;index"`
	Kind      string    `json:"kind" gorm:"not null"`
	RefID     string    `json:"ref_id"`
	PetName   string    `json:"pet_name"`
	Streak    int       `json:"streak"`
	Shown     bool      `json:"shown" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}
