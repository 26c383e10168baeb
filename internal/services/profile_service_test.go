package services

import (
	"errors"
	"reflect"
	"testing"

	"github.com/fertivia/clinic/internal/models"
	"gorm.io/gorm"
)

type stubProfileClientRepo struct {
	byToken map[string]models.Client
	updates map[uint]map[string]any
}

func (stub *stubProfileClientRepo) FindByToken(token string) (models.Client, error) {
	if client, ok := stub.byToken[token]; ok {
		return client, nil
	}
	return models.Client{}, gorm.ErrRecordNotFound
}

func (stub *stubProfileClientRepo) UpdateByID(clientID uint, changes map[string]any) error {
	if stub.updates == nil {
		stub.updates = make(map[uint]map[string]any)
	}
	stub.updates[clientID] = changes
	return nil
}

type stubUnreadCounter struct {
	unread map[uint]int64
}

func (stub *stubUnreadCounter) CountUnreadByClient(clientID uint) (int64, error) {
	return stub.unread[clientID], nil
}

func stringPtr(value string) *string  { return &value }
func floatPtr(value float64) *float64 { return &value }
func intPtr(value int) *int           { return &value }

func TestGetUserDataReturnsClientAndUnreadCount(t *testing.T) {
	t.Parallel()

	clients := &stubProfileClientRepo{
		byToken: map[string]models.Client{"tok": {ID: 9, FirstName: "Ana"}},
	}
	service := NewProfileService(clients, &stubUnreadCounter{unread: map[uint]int64{9: 3}})

	data, err := service.GetUserData("tok")
	if err != nil {
		t.Fatalf("GetUserData returned error: %v", err)
	}
	if data.Client.ID != 9 || data.Client.FirstName != "Ana" {
		t.Fatalf("client = %+v, want id 9 Ana", data.Client)
	}
	if data.UnreadNotifications != 3 {
		t.Fatalf("unread = %d, want 3", data.UnreadNotifications)
	}
}

func TestGetUserDataRejectsUnknownToken(t *testing.T) {
	t.Parallel()

	service := NewProfileService(&stubProfileClientRepo{}, &stubUnreadCounter{})

	if _, err := service.GetUserData("nope"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestEditClientWritesOnlySuppliedFields(t *testing.T) {
	t.Parallel()

	clients := &stubProfileClientRepo{
		byToken: map[string]models.Client{"tok": {ID: 9}},
	}
	service := NewProfileService(clients, &stubUnreadCounter{})

	update := ProfileUpdate{
		FirstName: stringPtr("Jelena"),
		Weight:    floatPtr(61.5),
		City:      stringPtr("Novi Sad"),
	}
	if err := service.EditClient("tok", update); err != nil {
		t.Fatalf("EditClient returned error: %v", err)
	}

	want := map[string]any{
		"first_name": "Jelena",
		"weight":     61.5,
		"city":       "Novi Sad",
	}
	if !reflect.DeepEqual(clients.updates[9], want) {
		t.Fatalf("updates = %v, want %v", clients.updates[9], want)
	}
}

func TestEditClientEmptyUpdateSkipsWrite(t *testing.T) {
	t.Parallel()

	clients := &stubProfileClientRepo{
		byToken: map[string]models.Client{"tok": {ID: 9}},
	}
	service := NewProfileService(clients, &stubUnreadCounter{})

	if err := service.EditClient("tok", ProfileUpdate{}); err != nil {
		t.Fatalf("EditClient returned error: %v", err)
	}
	if len(clients.updates) != 0 {
		t.Fatalf("empty update hit the store: %v", clients.updates)
	}
}

func TestEditClientRejectsUnknownToken(t *testing.T) {
	t.Parallel()

	clients := &stubProfileClientRepo{}
	service := NewProfileService(clients, &stubUnreadCounter{})

	err := service.EditClient("nope", ProfileUpdate{FirstName: stringPtr("Jelena")})
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if len(clients.updates) != 0 {
		t.Fatalf("unauthenticated edit hit the store: %v", clients.updates)
	}
}

func TestProfileUpdateCoversEveryEditableColumn(t *testing.T) {
	t.Parallel()

	update := ProfileUpdate{
		FirstName:             stringPtr("Jelena"),
		LastName:              stringPtr("Maric"),
		Weight:                floatPtr(61.5),
		Height:                floatPtr(172),
		CycleType:             stringPtr("regular"),
		PeriodLength:          intPtr(5),
		MenstrualCyclusLength: intPtr(28),
		Language:              stringPtr("sr"),
		Address:               stringPtr("Bulevar 1"),
		City:                  stringPtr("Novi Sad"),
		Country:               stringPtr("Serbia"),
		PostalCode:            stringPtr("21000"),
		Telephone:             stringPtr("+381601234567"),
	}

	changes := update.changes()
	wantColumns := []string{
		"first_name", "last_name", "weight", "height", "cycle_type",
		"period_length", "menstrual_cyclus_length", "language",
		"address", "city", "country", "postal_code", "telephone",
	}
	if len(changes) != len(wantColumns) {
		t.Fatalf("changes has %d columns, want %d: %v", len(changes), len(wantColumns), changes)
	}
	for _, column := range wantColumns {
		if _, ok := changes[column]; !ok {
			t.Fatalf("changes is missing column %q", column)
		}
	}
}
