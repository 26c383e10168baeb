package db

import (
	"github.com/fertivia/clinic/internal/models"
	"gorm.io/gorm"
)

type TestResultRepository struct {
	database *gorm.DB
}

func NewTestResultRepository(database *gorm.DB) *TestResultRepository {
	return &TestResultRepository{database: database}
}

// CreateForClient appends a test result and advances the client's test
// counter in one transaction. The ordinal number is the counter value the
// transaction observed plus one, so each client's Nth test carries ordinal
// N regardless of interleaving with other clients.
func (repo *TestResultRepository) CreateForClient(clientID uint, testTypeID int, raw []models.TestAnswer, final models.DASSResult) (models.TestResult, error) {
	var created models.TestResult
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := tx.First(&client, clientID).Error; err != nil {
			return err
		}

		created = models.TestResult{
			ClientID:          clientID,
			TestTypeID:        testTypeID,
			RawTestResult:     raw,
			FinalTestResult:   final,
			TestOrdinalNumber: client.DassTestsTaken + 1,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		return tx.Model(&models.Client{}).Where("id = ?", clientID).
			Update("dass_tests_taken", client.DassTestsTaken+1).Error
	})
	if err != nil {
		return models.TestResult{}, err
	}
	return created, nil
}

func (repo *TestResultRepository) ListByClientNewestFirst(clientID uint) ([]models.TestResult, error) {
	results := make([]models.TestResult, 0)
	if err := repo.database.
		Where("client_id = ?", clientID).
		Order("test_taken_at DESC, id DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
