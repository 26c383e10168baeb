package services

import (
	"errors"

	"github.com/fertivia/clinic/internal/models"
	"gorm.io/gorm"
)

// DASSTestTypeID identifies the DASS instrument among stored test results.
const DASSTestTypeID = 1

type TestResultRepository interface {
	CreateForClient(clientID uint, testTypeID int, raw []models.TestAnswer, final models.DASSResult) (models.TestResult, error)
}

type TestClientRepository interface {
	FindByToken(token string) (models.Client, error)
}

type TestService struct {
	results TestResultRepository
	clients TestClientRepository
}

func NewTestService(results TestResultRepository, clients TestClientRepository) *TestService {
	return &TestService{results: results, clients: clients}
}

// SubmitDASS scores the answers and appends the result to the client's
// test history, advancing the client's test counter and ordinal sequence.
func (service *TestService) SubmitDASS(token string, answers []models.TestAnswer) (models.DASSResult, uint, error) {
	client, err := service.clients.FindByToken(token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DASSResult{}, 0, ErrInvalidToken
	}
	if err != nil {
		return models.DASSResult{}, 0, err
	}

	result := ScoreDASS(answers)
	created, err := service.results.CreateForClient(client.ID, DASSTestTypeID, answers, result)
	if err != nil {
		return models.DASSResult{}, 0, err
	}
	return result, created.ID, nil
}
