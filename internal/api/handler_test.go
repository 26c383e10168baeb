package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/fertivia/clinic/internal/db"
	"github.com/fertivia/clinic/internal/models"
	"github.com/fertivia/clinic/internal/services"
	"github.com/gofiber/fiber/v2"
)

type testPresigner struct {
	err error
}

func (presigner *testPresigner) PresignPut(ctx context.Context, key string, contentType string, expires time.Duration) (string, error) {
	if presigner.err != nil {
		return "", presigner.err
	}
	return "https://uploads.example/" + key + "?signature=test", nil
}

type testEnv struct {
	app       *fiber.App
	repos     *db.Repositories
	presigner *testPresigner
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "api-test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	presigner := &testPresigner{}
	app := fiber.New()
	RegisterRoutes(app, NewHandler(database, presigner))

	return &testEnv{app: app, repos: db.NewRepositories(database), presigner: presigner}
}

func (env *testEnv) request(t *testing.T, method string, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := env.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return response
}

func decodeJSON(t *testing.T, response *http.Response) map[string]any {
	t.Helper()
	defer response.Body.Close()

	var payload map[string]any
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload
}

func seedClient(t *testing.T, env *testEnv, email string, password string) models.Client {
	t.Helper()

	client := models.Client{
		FirstName:              "Ana",
		LastName:               "Petrovic",
		Email:                  email,
		HashedEmailAndPassword: services.CredentialDigest(email, password),
		Existing:               true,
	}
	if err := env.repos.Clients.Create(&client); err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return client
}

func loginToken(t *testing.T, env *testEnv, email string, password string) string {
	t.Helper()

	response := env.request(t, http.MethodPost, "/login", fiber.Map{"email": email, "password": password})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, want 200", response.StatusCode)
	}
	token, _ := decodeJSON(t, response)["token"].(string)
	if token == "" {
		t.Fatal("login returned no token")
	}
	return token
}
