package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/fertivia/clinic/internal/models"
	"github.com/fertivia/clinic/internal/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthClientRepository interface {
	FindByCredentialDigest(digest string) (models.Client, error)
	FindByToken(token string) (models.Client, error)
	SetSession(clientID uint, token string, loggedIn bool) error
}

type AuthAdminRepository interface {
	FindByEmail(email string) (models.AdminUser, error)
}

type AuthService struct {
	clients AuthClientRepository
	admins  AuthAdminRepository
}

// ClientSession is the result of a successful client login.
type ClientSession struct {
	Token     string
	ClientID  uint
	FirstName string
	LastName  string
}

func NewAuthService(clients AuthClientRepository, admins AuthAdminRepository) *AuthService {
	return &AuthService{clients: clients, admins: admins}
}

// CredentialDigest is the stored one-way digest of a client credential
// pair: hex SHA-256 over the concatenation of email and password. The
// mobile app computes the same digest shape, so the scheme is part of the
// wire contract.
func CredentialDigest(email string, password string) string {
	sum := sha256.Sum256([]byte(email + password))
	return hex.EncodeToString(sum[:])
}

// Login resolves the client by credential digest and issues a fresh opaque
// session token, replacing any previous one.
func (service *AuthService) Login(email string, password string) (ClientSession, error) {
	client, err := service.clients.FindByCredentialDigest(CredentialDigest(email, password))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ClientSession{}, ErrInvalidCredentials
	}
	if err != nil {
		return ClientSession{}, err
	}

	token, err := security.SessionToken()
	if err != nil {
		return ClientSession{}, err
	}

	if err := service.clients.SetSession(client.ID, token, true); err != nil {
		return ClientSession{}, err
	}

	return ClientSession{
		Token:     token,
		ClientID:  client.ID,
		FirstName: client.FirstName,
		LastName:  client.LastName,
	}, nil
}

// Logout clears the session of the client holding the token. An unknown
// token fails with ErrInvalidToken and mutates nothing.
func (service *AuthService) Logout(token string) error {
	client, err := service.ResolveToken(token)
	if err != nil {
		return err
	}
	return service.clients.SetSession(client.ID, "", false)
}

// ResolveToken looks up the unique client whose stored token equals the
// supplied one.
func (service *AuthService) ResolveToken(token string) (models.Client, error) {
	client, err := service.clients.FindByToken(token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Client{}, ErrInvalidToken
	}
	if err != nil {
		return models.Client{}, err
	}
	return client, nil
}

// CRMLogin authenticates a staff account. Admin passwords are stored as
// bcrypt hashes and verified here; unknown emails and wrong passwords are
// indistinguishable to the caller.
func (service *AuthService) CRMLogin(email string, password string) (models.AdminUser, error) {
	admin, err := service.admins.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.AdminUser{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.AdminUser{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return models.AdminUser{}, ErrInvalidCredentials
	}
	return admin, nil
}
