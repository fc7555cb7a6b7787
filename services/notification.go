package services

import (
	"errors"

	"github.com/alphabatem/common/context"
	"gorm.io/gorm"

	"github.com/itsmontel/steppet_api/dto"
	"github.com/itsmontel/steppet_api/services/repositories"
	"github.com/itsmontel/steppet_api/shared"
)

// NotificationService serves the pending event feed the mobile push
// scheduler polls, and marks consumed events shown.
type NotificationService struct {
	context.DefaultService

	db Storage

	notifications *repositories.NotificationRepository
}

const NOTIFICATION_SVC = "notification_svc"

func (svc NotificationService) Id() string {
	return NOTIFICATION_SVC
}

func (svc *NotificationService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *NotificationService) Start() error {
	svc.db = svc.Service(DB_SVC).(Storage)
	svc.notifications = repositories.NewNotificationRepository(svc.db.Db())
	return nil
}

func (svc *NotificationService) GetPendingFeed(userID string, limit int) (*dto.NotificationFeedResponse, error) {
	events, err := svc.notifications.GetPending(userID, limit)
	if err != nil {
		return nil, svc.db.HandleError(err)
	}

	out := make([]dto.NotificationEventResponse, len(events))
	for i, e := range events {
		out[i] = dto.NotificationEventResponse{
			ID:        e.ID,
			Kind:      e.Kind,
			RefID:     e.RefID,
			PetName:   e.PetName,
			Streak:    e.Streak,
			CreatedAt: e.CreatedAt,
		}
	}

	return &dto.NotificationFeedResponse{Events: out, Total: len(out)}, nil
}

func (svc *NotificationService) MarkShown(userID, eventID string) error {
	err := svc.notifications.MarkShown(userID, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.NewNotFoundError(err, "Notification event not found")
		}
		return svc.db.HandleError(err)
	}
	return nil
}
