package handlers

import (
	"github.com/itsmontel/steppet_api/dto"
)

type AuthServiceInterface interface {
	RegisterDevice(req dto.RegisterDeviceRequest) (*dto.RegisterDeviceResponse, error)
	Login(req dto.LoginDeviceRequest) (*dto.TokenPair, error)
	Refresh(req dto.RefreshTokenRequest) (*dto.TokenPair, error)
}

type UserServiceInterface interface {
	GetProfile(userID string) (*dto.UserProfileResponse, error)
	UpdateProfile(userID string, req dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
	UpdateGoal(userID string, req dto.UpdateGoalRequest) (*dto.UserProfileResponse, []dto.AchievementResponse, error)
	SetPremium(userID string, req dto.SetPremiumRequest) (*dto.UserProfileResponse, []dto.AchievementResponse, error)
	RecordClientEvent(userID string, req dto.ClientEventRequest) ([]dto.AchievementResponse, error)
}

type PetServiceInterface interface {
	GetPet(userID string) (*dto.PetResponse, error)
	GetMood(userID string) (*dto.MoodResponse, error)
	UpdatePet(userID string, req dto.UpdatePetRequest) (*dto.PetResponse, []dto.AchievementResponse, error)
	ListSpecies() []dto.SpeciesResponse
}

type StepServiceInterface interface {
	RecordSteps(userID string, req dto.RecordStepsRequest) (*dto.RecordStepsResponse, error)
	GetToday(userID string) (*dto.StepRecordResponse, error)
	GetHistory(userID string, days int) (*dto.StepHistoryResponse, error)
	GetWeeklySummary(userID string) (*dto.PeriodSummaryResponse, error)
	GetMonthlySummary(userID string) (*dto.PeriodSummaryResponse, error)
	GetLifetimeStats(userID string) (*dto.LifetimeStatsResponse, error)
	GetStreak(userID string) (*dto.StreakResponse, error)
}

type AchievementServiceInterface interface {
	ListAchievements(userID string) (*dto.AchievementListResponse, error)
	ListUnlocked(userID string) (*dto.AchievementListResponse, error)
}

type CreditServiceInterface interface {
	GetStatus(userID string) (*dto.CreditStatusResponse, error)
	SpendCredit(userID string, req dto.SpendCreditRequest) (*dto.SpendCreditResponse, error)
	PurchaseCredits(userID string, req dto.PurchaseCreditsRequest) (*dto.CreditStatusResponse, error)
}

type NotificationServiceInterface interface {
	GetPendingFeed(userID string, limit int) (*dto.NotificationFeedResponse, error)
	MarkShown(userID, eventID string) error
}

type WidgetServiceInterface interface {
	GetSnapshot(userID string) (*dto.WidgetSnapshotResponse, error)
}
