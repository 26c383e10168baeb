package db

import (
	"github.com/fertivia/clinic/internal/models"
	"gorm.io/gorm"
)

type ClientRepository struct {
	database *gorm.DB
}

func NewClientRepository(database *gorm.DB) *ClientRepository {
	return &ClientRepository{database: database}
}

func (repo *ClientRepository) FindByID(clientID uint) (models.Client, error) {
	var client models.Client
	if err := repo.database.First(&client, clientID).Error; err != nil {
		return models.Client{}, err
	}
	return client, nil
}

func (repo *ClientRepository) FindByCredentialDigest(digest string) (models.Client, error) {
	var client models.Client
	if err := repo.database.Where("hashed_email_and_password = ?", digest).First(&client).Error; err != nil {
		return models.Client{}, err
	}
	return client, nil
}

// FindByToken resolves the unique client holding an active session token.
// Empty tokens never match a session.
func (repo *ClientRepository) FindByToken(token string) (models.Client, error) {
	if token == "" {
		return models.Client{}, gorm.ErrRecordNotFound
	}
	var client models.Client
	if err := repo.database.Where("user_token = ?", token).First(&client).Error; err != nil {
		return models.Client{}, err
	}
	return client, nil
}

func (repo *ClientRepository) Create(client *models.Client) error {
	return repo.database.Create(client).Error
}

func (repo *ClientRepository) Save(client *models.Client) error {
	return repo.database.Save(client).Error
}

func (repo *ClientRepository) UpdateByID(clientID uint, updates map[string]any) error {
	return repo.database.Model(&models.Client{}).Where("id = ?", clientID).Updates(updates).Error
}

func (repo *ClientRepository) SetSession(clientID uint, token string, loggedIn bool) error {
	return repo.database.Model(&models.Client{}).Where("id = ?", clientID).Updates(map[string]any{
		"user_token": token,
		"logged_in":  loggedIn,
	}).Error
}

func (repo *ClientRepository) CountExisting() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Client{}).Where("existing = ?", true).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *ClientRepository) CountExistingPaid() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Client{}).
		Where("existing = ? AND paid = ?", true, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *ClientRepository) ListExisting(limit int) ([]models.Client, error) {
	clients := make([]models.Client, 0)
	query := repo.database.Where("existing = ?", true)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}
