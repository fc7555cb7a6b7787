package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/itsmontel/steppet_api/dto"
	"github.com/itsmontel/steppet_api/shared"
)

type CreditHandler struct {
	creditSvc CreditServiceInterface
}

func NewCreditHandler(creditSvc CreditServiceInterface) *CreditHandler {
	return &CreditHandler{
		creditSvc: creditSvc,
	}
}

// @Summary Get credit status
// @Description Current free and purchased credit balance plus today's boost
// @Tags credits
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.CreditStatusResponse}
// @Router /api/v1/credits [get]
func (h *CreditHandler) GetStatus(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	status, err := h.creditSvc.GetStatus(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", status)
}

// @Summary Spend a credit
// @Description Convert one credit into a pet health boost for today
// @Tags credits
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param spendRequest body dto.SpendCreditRequest true "Boost kind"
// @Success 200 {object} shared.Response{data=dto.SpendCreditResponse}
// @Router /api/v1/credits/spend [post]
func (h *CreditHandler) SpendCredit(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.SpendCreditRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.creditSvc.SpendCredit(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Purchase credits
// @Description Add a purchased credit pack to the ledger
// @Tags credits
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param purchaseRequest body dto.PurchaseCreditsRequest true "Credit package"
// @Success 200 {object} shared.Response{data=dto.CreditStatusResponse}
// @Router /api/v1/credits/purchase [post]
func (h *CreditHandler) PurchaseCredits(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.PurchaseCreditsRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	status, err := h.creditSvc.PurchaseCredits(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", status)
}
