package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fertivia/clinic/internal/models"
	"gorm.io/gorm"
)

const (
	defaultUploadFileName    = "profile.jpg"
	profileUploadContentType = "image/jpeg"
	uploadURLExpiry          = time.Hour
)

// Presigner issues a time-limited write-capable URL for an object-store
// key. The S3 implementation lives in internal/uploads.
type Presigner interface {
	PresignPut(ctx context.Context, key string, contentType string, expires time.Duration) (string, error)
}

type UploadClientRepository interface {
	FindByToken(token string) (models.Client, error)
}

type UploadService struct {
	clients   UploadClientRepository
	presigner Presigner
}

// SignedUpload is a one-hour PUT grant for a client-scoped object key.
type SignedUpload struct {
	UploadURL string
	Key       string
}

func NewUploadService(clients UploadClientRepository, presigner Presigner) *UploadService {
	return &UploadService{clients: clients, presigner: presigner}
}

// GenerateSignedURL issues a presigned profile-image upload URL scoped to
// the client resolved from the token. A presigner failure is wrapped with
// its cause so the handler can surface it.
func (service *UploadService) GenerateSignedURL(ctx context.Context, token string, fileName string) (SignedUpload, error) {
	client, err := service.clients.FindByToken(token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return SignedUpload{}, ErrInvalidToken
	}
	if err != nil {
		return SignedUpload{}, err
	}

	if fileName == "" {
		fileName = defaultUploadFileName
	}
	key := fmt.Sprintf("profiles/%d/%s", client.ID, fileName)

	uploadURL, err := service.presigner.PresignPut(ctx, key, profileUploadContentType, uploadURLExpiry)
	if err != nil {
		return SignedUpload{}, fmt.Errorf("presign upload for %s: %w", key, err)
	}

	return SignedUpload{UploadURL: uploadURL, Key: key}, nil
}
