package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/itsmontel/steppet_api/shared"
)

type AchievementHandler struct {
	achievementSvc AchievementServiceInterface
}

func NewAchievementHandler(achievementSvc AchievementServiceInterface) *AchievementHandler {
	return &AchievementHandler{
		achievementSvc: achievementSvc,
	}
}

// @Summary List achievements
// @Description Full catalog merged with the user's progress and unlock state
// @Tags achievements
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.AchievementListResponse}
// @Router /api/v1/achievements [get]
func (h *AchievementHandler) ListAchievements(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	list, err := h.achievementSvc.ListAchievements(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", list)
}

// @Summary List unlocked achievements
// @Description Only the achievements the user has already unlocked
// @Tags achievements
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.AchievementListResponse}
// @Router /api/v1/achievements/unlocked [get]
func (h *AchievementHandler) ListUnlocked(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	list, err := h.achievementSvc.ListUnlocked(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", list)
}
