package api

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

type crmLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (handler *Handler) CRMLogin(c *fiber.Ctx) error {
	var request crmLoginRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request")
	}

	admin, err := handler.auth.CRMLogin(request.Email, request.Password)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"user_id":    admin.ID,
		"first_name": admin.FirstName,
	})
}

func (handler *Handler) CRMDashboard(c *fiber.Ctx) error {
	dashboard, err := handler.crm.Dashboard()
	if err != nil {
		return respondServiceError(c, err)
	}

	clients := make([]fiber.Map, 0, len(dashboard.Clients))
	for _, client := range dashboard.Clients {
		clients = append(clients, fiber.Map{
			"id":          client.ID,
			"name":        fmt.Sprintf("%s %s", client.FirstName, client.LastName),
			"email":       client.Email,
			"paid":        client.Paid,
			"tests_taken": client.DassTestsTaken,
		})
	}

	return c.JSON(fiber.Map{
		"total_clients": dashboard.TotalClients,
		"paid_clients":  dashboard.PaidClients,
		"clients":       clients,
	})
}

func (handler *Handler) CRMClientData(c *fiber.Ctx) error {
	clientID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, messageClientNotFound)
	}

	detail, err := handler.crm.ClientData(uint(clientID))
	if err != nil {
		return respondServiceError(c, err)
	}

	notes := make([]fiber.Map, 0, len(detail.Notes))
	for _, note := range detail.Notes {
		notes = append(notes, fiber.Map{
			"id":    note.ID,
			"title": note.NoteTitle,
			"text":  note.NoteText,
		})
	}

	tests := make([]fiber.Map, 0, len(detail.Tests))
	for _, test := range detail.Tests {
		tests = append(tests, fiber.Map{
			"id":     test.ID,
			"type":   test.TestTypeID,
			"result": test.FinalTestResult,
			"date":   test.TestTakenAt.Format(time.RFC3339),
		})
	}

	client := detail.Client
	return c.JSON(fiber.Map{
		"client": fiber.Map{
			"id":               client.ID,
			"first_name":       client.FirstName,
			"last_name":        client.LastName,
			"email":            client.Email,
			"telephone":        client.Telephone,
			"city":             client.City,
			"paid":             client.Paid,
			"dass_tests_taken": client.DassTestsTaken,
		},
		"notes": notes,
		"tests": tests,
	})
}
