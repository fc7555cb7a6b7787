package dto

// ==================== CREDIT DTOs ====================

type CreditStatusResponse struct {
	DailyFreeCredits int `json:"daily_free_credits" example:"2"`
	PurchasedCredits int `json:"purchased_credits" example:"5"`
	TotalCredits     int `json:"total_credits" example:"7"`
	TodayHealthBoost int `json:"today_health_boost" example:"8"`
}

type SpendCreditRequest struct {
	Kind string `json:"kind" validate:"required,credit_kind" example:"activity"`
}

func (s SpendCreditRequest) Validate() error {
	return GetValidator().Struct(s)
}

type SpendCreditResponse struct {
	Credits     CreditStatusResponse `json:"credits"`
	HealthDelta int                  `json:"health_delta" example:"5"`
	PetHealth   int                  `json:"pet_health" example:"93"`
	PetMood     string               `json:"pet_mood" example:"fullHealth"`
}

type PurchaseCreditsRequest struct {
	Package string `json:"package" validate:"required,oneof=small medium large" example:"medium"`
}

func (p PurchaseCreditsRequest) Validate() error {
	return GetValidator().Struct(p)
}
