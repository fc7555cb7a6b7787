package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/itsmontel/steppet_api/dto"
	"github.com/itsmontel/steppet_api/shared"
)

type AuthHandler struct {
	authSvc AuthServiceInterface
}

func NewAuthHandler(authSvc AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authSvc: authSvc,
	}
}

// @Summary Register a device
// @Description Create an account keyed by device id, or log the device back in when it already has one
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body dto.RegisterDeviceRequest true "Device credentials"
// @Success 201 {object} shared.Response{data=dto.RegisterDeviceResponse}
// @Router /api/v1/register [post]
func (h *AuthHandler) RegisterDevice(c *fiber.Ctx) error {
	var req dto.RegisterDeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.authSvc.RegisterDevice(req)
	if err != nil {
		return err
	}

	if resp.Created {
		return shared.ResponseJSON(c, http.StatusCreated, "Device registered successfully", resp)
	}
	return shared.ResponseJSON(c, http.StatusOK, "Login successful", resp)
}

// @Summary Login device
// @Description Authenticate a registered device and return a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body dto.LoginDeviceRequest true "Device credentials"
// @Success 200 {object} shared.Response{data=dto.TokenPair}
// @Router /api/v1/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginDeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.authSvc.Login(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Login successful", resp)
}

// @Summary Refresh access token
// @Description Generate a new token pair from a refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param refreshRequest body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} shared.Response{data=dto.TokenPair}
// @Router /api/v1/refresh [post]
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.authSvc.Refresh(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Token refreshed successfully", resp)
}
