package services

import (
	"errors"

	"github.com/fertivia/clinic/internal/models"
	"gorm.io/gorm"
)

// Dashboard pages are fixed-size: the first rows in storage order, no
// cursor.
const dashboardClientPageSize = 50

type CRMClientRepository interface {
	FindByID(clientID uint) (models.Client, error)
	CountExisting() (int64, error)
	CountExistingPaid() (int64, error)
	ListExisting(limit int) ([]models.Client, error)
}

type CRMNoteRepository interface {
	ListByCustomerNewestFirst(customerID uint) ([]models.CustomerNote, error)
}

type CRMTestRepository interface {
	ListByClientNewestFirst(clientID uint) ([]models.TestResult, error)
}

type CRMService struct {
	clients CRMClientRepository
	notes   CRMNoteRepository
	tests   CRMTestRepository
}

type Dashboard struct {
	TotalClients int64
	PaidClients  int64
	Clients      []models.Client
}

type ClientDetail struct {
	Client models.Client
	Notes  []models.CustomerNote
	Tests  []models.TestResult
}

func NewCRMService(clients CRMClientRepository, notes CRMNoteRepository, tests CRMTestRepository) *CRMService {
	return &CRMService{clients: clients, notes: notes, tests: tests}
}

// Dashboard summarizes existing clients: totals plus the first page of rows.
func (service *CRMService) Dashboard() (Dashboard, error) {
	total, err := service.clients.CountExisting()
	if err != nil {
		return Dashboard{}, err
	}
	paid, err := service.clients.CountExistingPaid()
	if err != nil {
		return Dashboard{}, err
	}
	clients, err := service.clients.ListExisting(dashboardClientPageSize)
	if err != nil {
		return Dashboard{}, err
	}
	return Dashboard{TotalClients: total, PaidClients: paid, Clients: clients}, nil
}

// ClientData loads one client with their notes and test history, both
// newest first.
func (service *CRMService) ClientData(clientID uint) (ClientDetail, error) {
	client, err := service.clients.FindByID(clientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ClientDetail{}, ErrClientNotFound
	}
	if err != nil {
		return ClientDetail{}, err
	}

	notes, err := service.notes.ListByCustomerNewestFirst(client.ID)
	if err != nil {
		return ClientDetail{}, err
	}
	tests, err := service.tests.ListByClientNewestFirst(client.ID)
	if err != nil {
		return ClientDetail{}, err
	}

	return ClientDetail{Client: client, Notes: notes, Tests: tests}, nil
}
