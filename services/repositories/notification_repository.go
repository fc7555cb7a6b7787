package repositories

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/itsmontel/steppet_api/model"
)

// NotificationRepository stores the engine's side-channel events until the
// mobile client consumes them.
type NotificationRepository struct {
	BaseRepository
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *NotificationRepository) CreateEvent(event *model.NotificationEvent) error {
	now := time.Now()
	if event.ID == "" {
		id, _ := uuid.NewV7()
		event.ID = id.String()
	}
	event.CreatedAt = now
	event.UpdatedAt = now
	return ds.db.Create(event).Error
}

func (ds *NotificationRepository) GetPending(userID string, limit int) ([]model.NotificationEvent, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var events []model.NotificationEvent
	err := ds.db.
		Where("user_id = ? AND shown = ?", userID, false).
		Order("created_at ASC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (ds *NotificationRepository) MarkShown(userID, eventID string) error {
	res := ds.db.Model(&model.NotificationEvent{}).
		Where("id = ? AND user_id = ?", eventID, userID).
		Updates(map[string]interface{}{"shown": true, "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
