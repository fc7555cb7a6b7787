package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/itsmontel/steppet_api/dto"
	"github.com/itsmontel/steppet_api/shared"
)

type StepHandler struct {
	stepSvc StepServiceInterface
}

func NewStepHandler(stepSvc StepServiceInterface) *StepHandler {
	return &StepHandler{
		stepSvc: stepSvc,
	}
}

// @Summary Record steps
// @Description Submit the cumulative step total for a day; updates pet health, streak and achievements
// @Tags steps
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param stepsRequest body dto.RecordStepsRequest true "Step total"
// @Success 200 {object} shared.Response{data=dto.RecordStepsResponse}
// @Router /api/v1/steps [post]
func (h *StepHandler) RecordSteps(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.RecordStepsRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.stepSvc.RecordSteps(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Get today's record
// @Description Get the step record for the current day
// @Tags steps
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.StepRecordResponse}
// @Router /api/v1/steps/today [get]
func (h *StepHandler) GetToday(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	record, err := h.stepSvc.GetToday(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", record)
}

// @Summary Get step history
// @Description Get recent daily step records, newest window first
// @Tags steps
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param days query int false "Number of days" default(30)
// @Success 200 {object} shared.Response{data=dto.StepHistoryResponse}
// @Router /api/v1/steps/history [get]
func (h *StepHandler) GetHistory(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	days, _ := strconv.Atoi(c.Query("days", "30"))

	history, err := h.stepSvc.GetHistory(userID, days)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", history)
}

// @Summary Get weekly summary
// @Description Aggregate totals for the current Monday-anchored week
// @Tags steps
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.PeriodSummaryResponse}
// @Router /api/v1/steps/weekly [get]
func (h *StepHandler) GetWeeklySummary(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	summary, err := h.stepSvc.GetWeeklySummary(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", summary)
}

// @Summary Get monthly summary
// @Description Aggregate totals for the current calendar month
// @Tags steps
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.PeriodSummaryResponse}
// @Router /api/v1/steps/monthly [get]
func (h *StepHandler) GetMonthlySummary(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	summary, err := h.stepSvc.GetMonthlySummary(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", summary)
}

// @Summary Get lifetime stats
// @Description Lifetime step totals, goals achieved, days used and best day
// @Tags steps
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.LifetimeStatsResponse}
// @Router /api/v1/steps/stats [get]
func (h *StepHandler) GetLifetimeStats(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	stats, err := h.stepSvc.GetLifetimeStats(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", stats)
}

// @Summary Get streak
// @Description Get the current streak, longest streak and badge level
// @Tags steps
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.StreakResponse}
// @Router /api/v1/streak [get]
func (h *StepHandler) GetStreak(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	streak, err := h.stepSvc.GetStreak(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", streak)
}
