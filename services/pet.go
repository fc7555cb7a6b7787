package services

import (
	"fmt"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/itsmontel/steppet_api/dto"
	"github.com/itsmontel/steppet_api/model"
	"github.com/itsmontel/steppet_api/services/repositories"
	"github.com/itsmontel/steppet_api/shared"
)

// PetService exposes the pet and its mood, renames and species swaps.
type PetService struct {
	context.DefaultService

	db             Storage
	userSvc        *UserService
	achievementSvc *AchievementService
	widgetSvc      *WidgetService

	users *repositories.UserRepository
	pets  *repositories.PetRepository
}

const PET_SVC = "pet_svc"

func (svc PetService) Id() string {
	return PET_SVC
}

func (svc *PetService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *PetService) Start() error {
	svc.db = svc.Service(DB_SVC).(Storage)
	svc.userSvc = svc.Service(USER_SVC).(*UserService)
	svc.achievementSvc = svc.Service(ACHIEVEMENT_SVC).(*AchievementService)
	svc.widgetSvc = svc.Service(WIDGET_SVC).(*WidgetService)

	svc.users = repositories.NewUserRepository(svc.db.Db())
	svc.pets = repositories.NewPetRepository(svc.db.Db())

	return nil
}

func (svc *PetService) GetPet(userID string) (*dto.PetResponse, error) {
	pet, err := svc.pets.GetPet(userID)
	if err != nil {
		return nil, svc.db.HandleError(err)
	}
	return toPetResponse(pet), nil
}

func (svc *PetService) GetMood(userID string) (*dto.MoodResponse, error) {
	pet, err := svc.pets.GetPet(userID)
	if err != nil {
		return nil, svc.db.HandleError(err)
	}
	return &dto.MoodResponse{Health: pet.Health, Mood: pet.Mood()}, nil
}

// UpdatePet renames the pet or swaps its species. Premium species require a
// premium account; the first rename and the first species swap each feed a
// one-shot achievement, and trying all species feeds the pet lover counter.
func (svc *PetService) UpdatePet(userID string, req dto.UpdatePetRequest) (*dto.PetResponse, []dto.AchievementResponse, error) {
	mu := svc.userSvc.LockUser(userID)
	mu.Lock()
	defer mu.Unlock()

	pet, err := svc.pets.GetPet(userID)
	if err != nil {
		return nil, nil, svc.db.HandleError(err)
	}

	var unlocked []model.Achievement

	if req.Name != nil && *req.Name != pet.Name {
		pet.Name = *req.Name

		granted, err := svc.achievementSvc.GrantOneShot(userID, "pet_parent")
		if err != nil {
			log.WithError(err).WithField("userID", userID).Error("Failed to grant pet parent achievement")
		} else {
			unlocked = append(unlocked, granted...)
		}
	}

	if req.Species != nil && *req.Species != pet.Species {
		user, err := svc.users.GetUser(userID)
		if err != nil {
			return nil, nil, svc.db.HandleError(err)
		}

		if model.PremiumSpecies(*req.Species) && !user.Premium {
			return nil, nil, shared.NewForbiddenError(fmt.Errorf("species %s requires premium", *req.Species), "This species requires a premium account")
		}

		pet.Species = *req.Species

		granted, err := svc.achievementSvc.GrantOneShot(userID, "customizer")
		if err != nil {
			log.WithError(err).WithField("userID", userID).Error("Failed to grant customizer achievement")
		} else {
			unlocked = append(unlocked, granted...)
		}

		count, err := svc.users.MarkSpeciesUsed(user, *req.Species)
		if err != nil {
			return nil, nil, svc.db.HandleError(err)
		}
		granted, err = svc.achievementSvc.SetProgress(userID, "pet_lover", count)
		if err != nil {
			log.WithError(err).WithField("userID", userID).Error("Failed to track species usage")
		} else {
			unlocked = append(unlocked, granted...)
		}
	}

	if err := svc.pets.UpdatePet(pet); err != nil {
		return nil, nil, svc.db.HandleError(err)
	}

	svc.widgetSvc.Invalidate(userID)

	return toPetResponse(pet), toAchievementResponses(unlocked), nil
}

func (svc *PetService) ListSpecies() []dto.SpeciesResponse {
	out := make([]dto.SpeciesResponse, len(model.AllSpecies))
	for i, s := range model.AllSpecies {
		out[i] = dto.SpeciesResponse{Species: s.Species, Premium: s.Premium}
	}
	return out
}

func toPetResponse(pet *model.Pet) *dto.PetResponse {
	return &dto.PetResponse{
		ID:        pet.ID,
		Name:      pet.Name,
		Species:   pet.Species,
		Health:    pet.Health,
		Mood:      pet.Mood(),
		CreatedAt: pet.CreatedAt,
	}
}
