package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestDASSTestResultsScoresAndRecords(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	client := seedClient(t, env, "ana@example.com", "lozinka1")
	token := loginToken(t, env, "ana@example.com", "lozinka1")

	response := env.request(t, http.MethodPost, "/dass_test_results", fiber.Map{
		"token": token,
		"answers": []fiber.Map{
			{"subscale": "depression", "score": 5},
			{"subscale": "depression", "score": 6},
			{"subscale": "anxiety", "score": 8},
		},
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", response.StatusCode)
	}

	payload := decodeJSON(t, response)
	if payload["success"] != true {
		t.Fatalf("success = %v, want true", payload["success"])
	}
	result, ok := payload["result"].(map[string]any)
	if !ok {
		t.Fatalf("result = %v, want an object", payload["result"])
	}
	depression, _ := result["depression"].(map[string]any)
	if depression["score"] != float64(11) || depression["severity"] != "Mild" {
		t.Fatalf("depression = %v, want score 11 Mild", depression)
	}
	stress, _ := result["stress"].(map[string]any)
	if stress["score"] != float64(0) || stress["severity"] != "Normal" {
		t.Fatalf("stress = %v, want score 0 Normal", stress)
	}
	if testID, _ := payload["test_id"].(float64); testID == 0 {
		t.Fatalf("test_id = %v, want a stored id", payload["test_id"])
	}

	reloaded, err := env.repos.Clients.FindByID(client.ID)
	if err != nil {
		t.Fatalf("reload client: %v", err)
	}
	if reloaded.DassTestsTaken != 1 {
		t.Fatalf("dass_tests_taken = %d, want 1", reloaded.DassTestsTaken)
	}

	stored, err := env.repos.TestResults.ListByClientNewestFirst(client.ID)
	if err != nil {
		t.Fatalf("list stored tests: %v", err)
	}
	if len(stored) != 1 || stored[0].TestOrdinalNumber != 1 {
		t.Fatalf("stored tests = %+v, want one test with ordinal 1", stored)
	}
	if len(stored[0].RawTestResult) != 3 {
		t.Fatalf("stored %d raw answers, want 3", len(stored[0].RawTestResult))
	}
}

func TestDASSTestResultsSequencesOrdinals(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	client := seedClient(t, env, "ana@example.com", "lozinka1")
	token := loginToken(t, env, "ana@example.com", "lozinka1")

	for i := 0; i < 2; i++ {
		response := env.request(t, http.MethodPost, "/dass_test_results", fiber.Map{
			"token":   token,
			"answers": []fiber.Map{{"subscale": "stress", "score": 10}},
		})
		if response.StatusCode != http.StatusOK {
			t.Fatalf("submission %d status = %d, want 200", i, response.StatusCode)
		}
		response.Body.Close()
	}

	stored, err := env.repos.TestResults.ListByClientNewestFirst(client.ID)
	if err != nil {
		t.Fatalf("list stored tests: %v", err)
	}
	if len(stored) != 2 || stored[0].TestOrdinalNumber != 2 || stored[1].TestOrdinalNumber != 1 {
		t.Fatalf("stored tests = %+v, want ordinals 2 then 1", stored)
	}
}

func TestDASSTestResultsRejectsUnknownToken(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	response := env.request(t, http.MethodPost, "/dass_test_results", fiber.Map{
		"token":   "bogus",
		"answers": []fiber.Map{{"subscale": "stress", "score": 10}},
	})
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", response.StatusCode)
	}
}
