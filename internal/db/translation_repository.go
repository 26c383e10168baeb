package db

import (
	"github.com/fertivia/clinic/internal/models"
	"gorm.io/gorm"
)

type TranslationRepository struct {
	database *gorm.DB
}

func NewTranslationRepository(database *gorm.DB) *TranslationRepository {
	return &TranslationRepository{database: database}
}

func (repo *TranslationRepository) Create(translation *models.Translation) error {
	return repo.database.Create(translation).Error
}

// ListAll returns translation rows in natural storage order; the language
// maps are built from that ordering.
func (repo *TranslationRepository) ListAll() ([]models.Translation, error) {
	translations := make([]models.Translation, 0)
	if err := repo.database.Order("id ASC").Find(&translations).Error; err != nil {
		return nil, err
	}
	return translations, nil
}
