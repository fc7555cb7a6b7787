package model

import "time"

const (
	DefaultUserName = "Friend"
	DefaultStepGoal = 10000
	DefaultPetName  = "Whiskers"
	DefaultPetKind  = "cat"

	// New pets start at full health so the first impression is a happy pet.
	DefaultPetHealth = 100
	MinStepGoal     = 1000
	MaxStepGoal     = 100000
	RetentionDays   = 365
)

type User struct {
	ID            string     `json:"id" gorm:"primaryKey"`
	DeviceID      string     `json:"device_id" gorm:"not null;uniqueIndex"`
	SecretHash    string     `json:"-" gorm:"not null"`
	Name          string     `json:"name" gorm:"not null"`
	DailyStepGoal int        `json:"daily_step_goal" gorm:"not null"`
	Premium       bool       `json:"premium" gorm:"not null"`
	FirstLaunch   time.Time  `json:"first_launch" gorm:"not null"`
	LastSeenDay   *time.Time `json:"last_seen_day"`
	DaysUsed      int        `json:"days_used" gorm:"not null"`
	GoalsAchieved int        `json:"goals_achieved" gorm:"not null"`
	TotalSteps    int64      `json:"total_steps" gorm:"not null"`
	PetsUsed      int        `json:"pets_used" gorm:"not null"`
	SpeciesUsed   string     `json:"species_used" gorm:"not null;default:''"`
	SectionsSeen  string     `json:"sections_seen" gorm:"not null;default:''"`
	CreatedAt     time.Time  `json:"created_at" gorm:"not null"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"not null"`
}

// Activity levels with their recommended daily goals, used for goal
// suggestions in the profile.
type ActivityLevel struct {
	Name            string `json:"name"`
	RecommendedGoal int    `json:"recommended_goal"`
}

var ActivityLevels = []ActivityLevel{
	{Name: "sedentary", RecommendedGoal: 5000},
	{Name: "lightly_active", RecommendedGoal: 7500},
	{Name: "active", RecommendedGoal: 10000},
	{Name: "very_active", RecommendedGoal: 12500},
}

// ActivityLevelForGoal maps a daily goal onto the closest-not-greater level.
func ActivityLevelForGoal(goal int) string {
	level := ActivityLevels[0].Name
	for _, l := range ActivityLevels {
		if goal >= l.RecommendedGoal {
			level = l.Name
		}
	}
	return level
}
