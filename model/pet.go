package model

import (
	"time"

	"github.com/itsmontel/steppet_api/shared"
)

type Pet struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;uniqueIndex"`
	Name      string    `json:"name" gorm:"not null"`
	Species   string    `json:"species" gorm:"not null"`
	Health    int       `json:"health" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

func (p *Pet) Mood() string {
	return MoodFromHealth(p.Health)
}

// SetHealth clamps into [0,100] before assignment.
func (p *Pet) SetHealth(health int) {
	p.Health = ClampHealth(health)
}

func ClampHealth(health int) int {
	if health < 0 {
		return 0
	}
	if health > 100 {
		return 100
	}
	return health
}

// MoodFromHealth maps a health scalar to one of the five mood bands.
// Out-of-range values are clamped first, so the function is total.
func MoodFromHealth(health int) string {
	health = ClampHealth(health)
	switch {
	case health <= 20:
		return shared.MoodSick
	case health <= 40:
		return shared.MoodSad
	case health <= 60:
		return shared.MoodContent
	case health <= 80:
		return shared.MoodHappy
	default:
		return shared.MoodFullHealth
	}
}

type SpeciesInfo struct {
	Species string `json:"species"`
	Premium bool   `json:"premium"`
}

var AllSpecies = []SpeciesInfo{
	{Species: shared.SpeciesDog, Premium: true},
	{Species: shared.SpeciesCat, Premium: false},
	{Species: shared.SpeciesBunny, Premium: true},
	{Species: shared.SpeciesHamster, Premium: true},
	{Species: shared.SpeciesHorse, Premium: true},
}

func ValidSpecies(species string) bool {
	for _, s := range AllSpecies {
		if s.Species == species {
			return true
		}
	}
	return false
}

func PremiumSpecies(species string) bool {
	for _, s := range AllSpecies {
		if s.Species == species {
			return s.Premium
		}
	}
	return false
}
