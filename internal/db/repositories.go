package db

import "gorm.io/gorm"

type Repositories struct {
	Clients       *ClientRepository
	Notifications *NotificationRepository
	TestResults   *TestResultRepository
	AdminUsers    *AdminUserRepository
	CustomerNotes *CustomerNoteRepository
	Translations  *TranslationRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Clients:       NewClientRepository(database),
		Notifications: NewNotificationRepository(database),
		TestResults:   NewTestResultRepository(database),
		AdminUsers:    NewAdminUserRepository(database),
		CustomerNotes: NewCustomerNoteRepository(database),
		Translations:  NewTranslationRepository(database),
	}
}
