package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/itsmontel/steppet_api/dto"
	"github.com/itsmontel/steppet_api/shared"
)

type PetHandler struct {
	petSvc PetServiceInterface
}

func NewPetHandler(petSvc PetServiceInterface) *PetHandler {
	return &PetHandler{
		petSvc: petSvc,
	}
}

// @Summary Get pet
// @Description Get the user's pet with its current health and mood
// @Tags pet
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.PetResponse}
// @Router /api/v1/pet [get]
func (h *PetHandler) GetPet(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	pet, err := h.petSvc.GetPet(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", pet)
}

// @Summary Get pet mood
// @Description Get only the health scalar and derived mood band
// @Tags pet
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.MoodResponse}
// @Router /api/v1/pet/mood [get]
func (h *PetHandler) GetMood(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	mood, err := h.petSvc.GetMood(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", mood)
}

// @Summary Update pet
// @Description Rename the pet or change its species; premium species need a premium account
// @Tags pet
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param updateRequest body dto.UpdatePetRequest true "Pet fields"
// @Success 200 {object} shared.Response{data=dto.PetUpdateResponse}
// @Router /api/v1/pet [put]
func (h *PetHandler) UpdatePet(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.UpdatePetRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	pet, unlocks, err := h.petSvc.UpdatePet(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", dto.PetUpdateResponse{
		Pet:        *pet,
		NewUnlocks: unlocks,
	})
}

// @Summary List species
// @Description List every pet species with its premium flag
// @Tags pet
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=[]dto.SpeciesResponse}
// @Router /api/v1/pet/species [get]
func (h *PetHandler) ListSpecies(c *fiber.Ctx) error {
	return shared.ResponseJSON(c, http.StatusOK, "Success", h.petSvc.ListSpecies())
}
