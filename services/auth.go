package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/itsmontel/steppet_api/dto"
	"github.com/itsmontel/steppet_api/model"
	"github.com/itsmontel/steppet_api/services/repositories"
	"github.com/itsmontel/steppet_api/shared"
)

type AuthService struct {
	context.DefaultService

	db     Storage
	jwtSvc *JWTService

	users   *repositories.UserRepository
	pets    *repositories.PetRepository
	steps   *repositories.StepRepository
	credits *repositories.CreditRepository
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthService) Start() error {
	svc.db = svc.Service(DB_SVC).(Storage)
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)

	svc.users = repositories.NewUserRepository(svc.db.Db())
	svc.pets = repositories.NewPetRepository(svc.db.Db())
	svc.steps = repositories.NewStepRepository(svc.db.Db())
	svc.credits = repositories.NewCreditRepository(svc.db.Db())

	return nil
}

// RegisterDevice creates an account for a new device, or logs the device back
// in when it already has one and presents the right secret.
func (svc *AuthService) RegisterDevice(req dto.RegisterDeviceRequest) (*dto.RegisterDeviceResponse, error) {
	now := time.Now()

	existing, err := svc.users.GetUserByDeviceID(req.DeviceID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svc.db.HandleError(err)
	}

	if existing != nil {
		if !svc.users.VerifyDeviceSecret(existing, req.DeviceSecret) {
			return nil, shared.NewUnauthorizedError(fmt.Errorf("secret mismatch for device %s", req.DeviceID), "Invalid device credentials")
		}

		tokens, err := svc.jwtSvc.GenerateTokenPair(existing.ID)
		if err != nil {
			return nil, shared.NewInternalError(err, "Failed to issue tokens")
		}

		return &dto.RegisterDeviceResponse{
			UserID:  existing.ID,
			Created: false,
			Tokens:  *tokens,
		}, nil
	}

	user, err := svc.users.CreateUser(req.DeviceID, req.DeviceSecret, req.Name, now)
	if err != nil {
		return nil, svc.db.HandleError(err)
	}

	if err := svc.initializeUserState(user, now); err != nil {
		return nil, err
	}

	tokens, err := svc.jwtSvc.GenerateTokenPair(user.ID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to issue tokens")
	}

	log.WithField("userID", user.ID).Info("Registered new device")

	return &dto.RegisterDeviceResponse{
		UserID:  user.ID,
		Created: true,
		Tokens:  *tokens,
	}, nil
}

// initializeUserState seeds the pet, streak row and credit ledger a fresh
// account starts with.
func (svc *AuthService) initializeUserState(user *model.User, now time.Time) error {
	if _, err := svc.pets.CreatePet(user.ID, model.DefaultPetName, model.DefaultPetKind, now); err != nil {
		return svc.db.HandleError(err)
	}

	if _, err := svc.steps.GetStreak(user.ID); err != nil {
		return svc.db.HandleError(err)
	}

	if _, err := svc.credits.GetLedger(user.ID); err != nil {
		return svc.db.HandleError(err)
	}

	return nil
}

func (svc *AuthService) Login(req dto.LoginDeviceRequest) (*dto.TokenPair, error) {
	user, err := svc.users.GetUserByDeviceID(req.DeviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewUnauthorizedError(err, "Invalid device credentials")
		}
		return nil, svc.db.HandleError(err)
	}

	if !svc.users.VerifyDeviceSecret(user, req.DeviceSecret) {
		return nil, shared.NewUnauthorizedError(fmt.Errorf("secret mismatch for device %s", req.DeviceID), "Invalid device credentials")
	}

	tokens, err := svc.jwtSvc.GenerateTokenPair(user.ID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to issue tokens")
	}

	return tokens, nil
}

func (svc *AuthService) Refresh(req dto.RefreshTokenRequest) (*dto.TokenPair, error) {
	userID, err := svc.jwtSvc.VerifyRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, shared.NewUnauthorizedError(err, "Invalid refresh token")
	}

	if _, err := svc.users.GetUser(userID); err != nil {
		return nil, shared.NewUnauthorizedError(err, "User not found")
	}

	tokens, err := svc.jwtSvc.GenerateTokenPair(userID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to issue tokens")
	}

	return tokens, nil
}
