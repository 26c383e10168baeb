package api

import (
	"github.com/fertivia/clinic/internal/db"
	"github.com/fertivia/clinic/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	repositories  *db.Repositories
	auth          *services.AuthService
	profile       *services.ProfileService
	tests         *services.TestService
	notifications *services.NotificationService
	uploads       *services.UploadService
	translations  *services.TranslationService
	crm           *services.CRMService
}

func NewHandler(database *gorm.DB, presigner services.Presigner) *Handler {
	repositories := db.NewRepositories(database)
	return &Handler{
		repositories:  repositories,
		auth:          services.NewAuthService(repositories.Clients, repositories.AdminUsers),
		profile:       services.NewProfileService(repositories.Clients, repositories.Notifications),
		tests:         services.NewTestService(repositories.TestResults, repositories.Clients),
		notifications: services.NewNotificationService(repositories.Notifications, repositories.Clients),
		uploads:       services.NewUploadService(repositories.Clients, presigner),
		translations:  services.NewTranslationService(repositories.Translations),
		crm:           services.NewCRMService(repositories.Clients, repositories.CustomerNotes, repositories.TestResults),
	}
}
