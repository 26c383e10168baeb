package db

import (
	"github.com/fertivia/clinic/internal/models"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	database *gorm.DB
}

func NewNotificationRepository(database *gorm.DB) *NotificationRepository {
	return &NotificationRepository{database: database}
}

func (repo *NotificationRepository) Create(notification *models.Notification) error {
	return repo.database.Create(notification).Error
}

func (repo *NotificationRepository) CountUnreadByClient(clientID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Notification{}).
		Where("client_id = ? AND notification_status = ?", clientID, models.NotificationUnread).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// MarkReadByIDs moves the given notifications from unread to read in one
// statement. Rows already read or hidden stay as they are, which keeps the
// status progression forward-only and the call idempotent.
func (repo *NotificationRepository) MarkReadByIDs(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return repo.database.Model(&models.Notification{}).
		Where("id IN ? AND notification_status = ?", ids, models.NotificationUnread).
		Update("notification_status", models.NotificationRead).Error
}

// HideAllByClient hides every notification of one client, whatever its
// prior status.
func (repo *NotificationRepository) HideAllByClient(clientID uint) error {
	return repo.database.Model(&models.Notification{}).
		Where("client_id = ?", clientID).
		Update("notification_status", models.NotificationHidden).Error
}

func (repo *NotificationRepository) ListByClient(clientID uint) ([]models.Notification, error) {
	notifications := make([]models.Notification, 0)
	if err := repo.database.
		Where("client_id = ?", clientID).
		Order("notification_date DESC, id DESC").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}
