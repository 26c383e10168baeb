package db

import (
	"github.com/fertivia/clinic/internal/models"
	"gorm.io/gorm"
)

type CustomerNoteRepository struct {
	database *gorm.DB
}

func NewCustomerNoteRepository(database *gorm.DB) *CustomerNoteRepository {
	return &CustomerNoteRepository{database: database}
}

func (repo *CustomerNoteRepository) Create(note *models.CustomerNote) error {
	return repo.database.Create(note).Error
}

func (repo *CustomerNoteRepository) ListByCustomerNewestFirst(customerID uint) ([]models.CustomerNote, error) {
	notes := make([]models.CustomerNote, 0)
	if err := repo.database.
		Where("customer_id = ?", customerID).
		Order("datetime DESC, id DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}
