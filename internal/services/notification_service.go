package services

import (
	"errors"

	"github.com/fertivia/clinic/internal/models"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	MarkReadByIDs(ids []uint) error
	HideAllByClient(clientID uint) error
}

type NotificationClientRepository interface {
	FindByToken(token string) (models.Client, error)
}

type NotificationService struct {
	notifications NotificationRepository
	clients       NotificationClientRepository
}

func NewNotificationService(notifications NotificationRepository, clients NotificationClientRepository) *NotificationService {
	return &NotificationService{notifications: notifications, clients: clients}
}

// MarkRead moves the given notifications to read. The id set is taken at
// face value without an ownership check against any session; the mobile
// app only ever submits its own ids, and the gap is recorded rather than
// silently closed.
func (service *NotificationService) MarkRead(notificationIDs []uint) error {
	return service.notifications.MarkReadByIDs(notificationIDs)
}

// HideAll hides every notification of the client resolved from the token,
// whatever status each is in. Calling it again is a no-op.
func (service *NotificationService) HideAll(token string) error {
	client, err := service.clients.FindByToken(token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrInvalidToken
	}
	if err != nil {
		return err
	}
	return service.notifications.HideAllByClient(client.ID)
}
