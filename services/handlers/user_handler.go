package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/itsmontel/steppet_api/dto"
	"github.com/itsmontel/steppet_api/shared"
)

type UserHandler struct {
	userSvc UserServiceInterface
}

func NewUserHandler(userSvc UserServiceInterface) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

// @Summary Get user profile
// @Description Get user profile
// @Tags user
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.UserProfileResponse}
// @Router /api/v1/user/profile [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	profile, err := h.userSvc.GetProfile(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", profile)
}

// @Summary Update user profile
// @Description Update the display name
// @Tags user
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param updateRequest body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} shared.Response{data=dto.UserProfileResponse}
// @Router /api/v1/user/profile [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	profile, err := h.userSvc.UpdateProfile(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", profile)
}

// @Summary Update daily step goal
// @Description Change the daily step goal used by the health formula
// @Tags user
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param goalRequest body dto.UpdateGoalRequest true "New daily goal"
// @Success 200 {object} shared.Response{data=dto.ProfileUpdateResponse}
// @Router /api/v1/user/goal [put]
func (h *UserHandler) UpdateGoal(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.UpdateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	profile, unlocks, err := h.userSvc.UpdateGoal(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", dto.ProfileUpdateResponse{
		Profile:    *profile,
		NewUnlocks: unlocks,
	})
}

// @Summary Set premium flag
// @Description Toggle the premium entitlement for the account
// @Tags user
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param premiumRequest body dto.SetPremiumRequest true "Premium flag"
// @Success 200 {object} shared.Response{data=dto.ProfileUpdateResponse}
// @Router /api/v1/user/premium [put]
func (h *UserHandler) SetPremium(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.SetPremiumRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	profile, unlocks, err := h.userSvc.SetPremium(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", dto.ProfileUpdateResponse{
		Profile:    *profile,
		NewUnlocks: unlocks,
	})
}

// @Summary Record a client event
// @Description Feed client-side interactions into single-trigger achievements
// @Tags user
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param eventRequest body dto.ClientEventRequest true "Client event"
// @Success 200 {object} shared.Response{data=dto.ClientEventResponse}
// @Router /api/v1/user/events [post]
func (h *UserHandler) RecordClientEvent(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.ClientEventRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	unlocks, err := h.userSvc.RecordClientEvent(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", dto.ClientEventResponse{NewUnlocks: unlocks})
}
