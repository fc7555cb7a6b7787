package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/itsmontel/steppet_api/shared"
)

type NotificationHandler struct {
	notificationSvc NotificationServiceInterface
	widgetSvc       WidgetServiceInterface
}

func NewNotificationHandler(notificationSvc NotificationServiceInterface, widgetSvc WidgetServiceInterface) *NotificationHandler {
	return &NotificationHandler{
		notificationSvc: notificationSvc,
		widgetSvc:       widgetSvc,
	}
}

// @Summary Get pending notifications
// @Description Events emitted by the engine that have not been shown yet
// @Tags notifications
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param limit query int false "Maximum events" default(50)
// @Success 200 {object} shared.Response{data=dto.NotificationFeedResponse}
// @Router /api/v1/notifications [get]
func (h *NotificationHandler) GetPendingFeed(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	feed, err := h.notificationSvc.GetPendingFeed(userID, limit)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", feed)
}

// @Summary Mark notification shown
// @Description Remove one event from the pending feed
// @Tags notifications
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param id path string true "Event id"
// @Success 200 {object} shared.Response
// @Router /api/v1/notifications/{id}/shown [post]
func (h *NotificationHandler) MarkShown(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	eventID := c.Params("id")

	if err := h.notificationSvc.MarkShown(userID, eventID); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", nil)
}

// @Summary Get widget snapshot
// @Description Compact pet and progress snapshot for the home-screen widget
// @Tags notifications
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.WidgetSnapshotResponse}
// @Router /api/v1/widget [get]
func (h *NotificationHandler) GetWidgetSnapshot(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	snapshot, err := h.widgetSvc.GetSnapshot(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", snapshot)
}
