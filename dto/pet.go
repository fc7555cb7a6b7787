package dto

import "time"

// ==================== PET DTOs ====================

type PetResponse struct {
	ID        string    `json:"id" example:"0190d4a0-..."`
	Name      string    `json:"name" example:"Whiskers"`
	Species   string    `json:"species" example:"cat"`
	Health    int       `json:"health" example:"72"`
	Mood      string    `json:"mood" example:"happy"`
	CreatedAt time.Time `json:"created_at" example:"2025-01-01T00:00:00Z"`
}

type UpdatePetRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=40" example:"Biscuit"`
	Species *string `json:"species,omitempty" validate:"omitempty,species" example:"dog"`
}

func (u UpdatePetRequest) Validate() error {
	return GetValidator().Struct(u)
}

type PetUpdateResponse struct {
	Pet        PetResponse           `json:"pet"`
	NewUnlocks []AchievementResponse `json:"new_unlocks"`
}

type MoodResponse struct {
	Health int    `json:"health" example:"72"`
	Mood   string `json:"mood" example:"happy"`
}

type SpeciesResponse struct {
	Species string `json:"species" example:"dog"`
	Premium bool   `json:"premium" example:"true"`
}
