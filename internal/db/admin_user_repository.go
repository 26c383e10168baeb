package db

import (
	"github.com/fertivia/clinic/internal/models"
	"gorm.io/gorm"
)

type AdminUserRepository struct {
	database *gorm.DB
}

func NewAdminUserRepository(database *gorm.DB) *AdminUserRepository {
	return &AdminUserRepository{database: database}
}

func (repo *AdminUserRepository) FindByEmail(email string) (models.AdminUser, error) {
	var admin models.AdminUser
	if err := repo.database.Where("email = ?", email).First(&admin).Error; err != nil {
		return models.AdminUser{}, err
	}
	return admin, nil
}

func (repo *AdminUserRepository) Create(admin *models.AdminUser) error {
	return repo.database.Create(admin).Error
}

func (repo *AdminUserRepository) Save(admin *models.AdminUser) error {
	return repo.database.Save(admin).Error
}
