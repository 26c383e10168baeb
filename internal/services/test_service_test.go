package services

import (
	"errors"
	"reflect"
	"testing"

	"github.com/fertivia/clinic/internal/models"
	"gorm.io/gorm"
)

type stubTestResultRepo struct {
	created models.TestResult
	calls   int
	err     error
}

func (stub *stubTestResultRepo) CreateForClient(clientID uint, testTypeID int, raw []models.TestAnswer, final models.DASSResult) (models.TestResult, error) {
	stub.calls++
	if stub.err != nil {
		return models.TestResult{}, stub.err
	}
	stub.created = models.TestResult{
		ID:              41,
		ClientID:        clientID,
		TestTypeID:      testTypeID,
		RawTestResult:   raw,
		FinalTestResult: final,
	}
	return stub.created, nil
}

type stubTokenClientRepo struct {
	byToken map[string]models.Client
}

func (stub *stubTokenClientRepo) FindByToken(token string) (models.Client, error) {
	if client, ok := stub.byToken[token]; ok {
		return client, nil
	}
	return models.Client{}, gorm.ErrRecordNotFound
}

func TestSubmitDASSScoresAndPersists(t *testing.T) {
	t.Parallel()

	results := &stubTestResultRepo{}
	clients := &stubTokenClientRepo{byToken: map[string]models.Client{"tok": {ID: 6}}}
	service := NewTestService(results, clients)

	answers := []models.TestAnswer{
		{Subscale: "depression", Score: 5},
		{Subscale: "depression", Score: 6},
		{Subscale: "anxiety", Score: 8},
	}
	result, testID, err := service.SubmitDASS("tok", answers)
	if err != nil {
		t.Fatalf("SubmitDASS returned error: %v", err)
	}
	if testID != 41 {
		t.Fatalf("test id = %d, want 41", testID)
	}
	if result.Depression.Score != 11 || result.Depression.Severity != "Mild" {
		t.Fatalf("depression = %+v, want score 11 Mild", result.Depression)
	}

	if results.created.ClientID != 6 {
		t.Fatalf("persisted client id = %d, want 6", results.created.ClientID)
	}
	if results.created.TestTypeID != DASSTestTypeID {
		t.Fatalf("persisted test type = %d, want %d", results.created.TestTypeID, DASSTestTypeID)
	}
	if !reflect.DeepEqual(results.created.RawTestResult, answers) {
		t.Fatalf("persisted raw answers = %v, want %v", results.created.RawTestResult, answers)
	}
	if !reflect.DeepEqual(results.created.FinalTestResult, result) {
		t.Fatalf("persisted final result = %+v, want %+v", results.created.FinalTestResult, result)
	}
}

func TestSubmitDASSRejectsUnknownToken(t *testing.T) {
	t.Parallel()

	results := &stubTestResultRepo{}
	service := NewTestService(results, &stubTokenClientRepo{})

	if _, _, err := service.SubmitDASS("nope", nil); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if results.calls != 0 {
		t.Fatalf("unauthenticated submission reached the store %d times", results.calls)
	}
}

func TestSubmitDASSPropagatesStoreFailure(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("disk full")
	results := &stubTestResultRepo{err: storeErr}
	clients := &stubTokenClientRepo{byToken: map[string]models.Client{"tok": {ID: 6}}}
	service := NewTestService(results, clients)

	if _, _, err := service.SubmitDASS("tok", nil); !errors.Is(err, storeErr) {
		t.Fatalf("expected store failure to surface, got %v", err)
	}
}
