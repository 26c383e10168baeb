package services

import (
	"errors"

	"github.com/fertivia/clinic/internal/models"
	"gorm.io/gorm"
)

type ProfileClientRepository interface {
	FindByToken(token string) (models.Client, error)
	UpdateByID(clientID uint, updates map[string]any) error
}

type ProfileNotificationRepository interface {
	CountUnreadByClient(clientID uint) (int64, error)
}

type ProfileService struct {
	clients       ProfileClientRepository
	notifications ProfileNotificationRepository
}

// ProfileUpdate is the allow-list of client-editable profile fields. Nil
// fields are left untouched; supplied values are written as-is, numeric
// ranges included.
type ProfileUpdate struct {
	FirstName             *string  `json:"first_name"`
	LastName              *string  `json:"last_name"`
	Weight                *float64 `json:"weight"`
	Height                *float64 `json:"height"`
	CycleType             *string  `json:"cycle_type"`
	PeriodLength          *int     `json:"period_length"`
	MenstrualCyclusLength *int     `json:"menstrual_cyclus_length"`
	Language              *string  `json:"language"`
	Address               *string  `json:"address"`
	City                  *string  `json:"city"`
	Country               *string  `json:"country"`
	PostalCode            *string  `json:"postal_code"`
	Telephone             *string  `json:"telephone"`
}

// UserData is the profile snapshot returned to the client app.
type UserData struct {
	Client              models.Client
	UnreadNotifications int64
}

func NewProfileService(clients ProfileClientRepository, notifications ProfileNotificationRepository) *ProfileService {
	return &ProfileService{clients: clients, notifications: notifications}
}

func (service *ProfileService) GetUserData(token string) (UserData, error) {
	client, err := service.resolveToken(token)
	if err != nil {
		return UserData{}, err
	}

	unread, err := service.notifications.CountUnreadByClient(client.ID)
	if err != nil {
		return UserData{}, err
	}

	return UserData{Client: client, UnreadNotifications: unread}, nil
}

func (service *ProfileService) EditClient(token string, update ProfileUpdate) error {
	client, err := service.resolveToken(token)
	if err != nil {
		return err
	}

	changes := update.changes()
	if len(changes) == 0 {
		return nil
	}
	return service.clients.UpdateByID(client.ID, changes)
}

func (service *ProfileService) resolveToken(token string) (models.Client, error) {
	client, err := service.clients.FindByToken(token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Client{}, ErrInvalidToken
	}
	if err != nil {
		return models.Client{}, err
	}
	return client, nil
}

func (update ProfileUpdate) changes() map[string]any {
	changes := make(map[string]any)
	if update.FirstName != nil {
		changes["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		changes["last_name"] = *update.LastName
	}
	if update.Weight != nil {
		changes["weight"] = *update.Weight
	}
	if update.Height != nil {
		changes["height"] = *update.Height
	}
	if update.CycleType != nil {
		changes["cycle_type"] = *update.CycleType
	}
	if update.PeriodLength != nil {
		changes["period_length"] = *update.PeriodLength
	}
	if update.MenstrualCyclusLength != nil {
		changes["menstrual_cyclus_length"] = *update.MenstrualCyclusLength
	}
	if update.Language != nil {
		changes["language"] = *update.Language
	}
	if update.Address != nil {
		changes["address"] = *update.Address
	}
	if update.City != nil {
		changes["city"] = *update.City
	}
	if update.Country != nil {
		changes["country"] = *update.Country
	}
	if update.PostalCode != nil {
		changes["postal_code"] = *update.PostalCode
	}
	if update.Telephone != nil {
		changes["telephone"] = *update.Telephone
	}
	return changes
}
