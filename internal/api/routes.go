package api

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes wires the client app endpoints, the staff CRM endpoints
// and the operational surface. Paths mirror what the mobile app and the
// CRM frontend already call.
func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post("/login", handler.Login)
	app.Post("/logout", handler.Logout)
	app.Get("/user_data", handler.UserData)
	app.Put("/edit_client", handler.EditClient)
	app.Post("/dass_test_results", handler.DASSTestResults)
	app.Post("/generate_signed_url", handler.GenerateSignedURL)
	app.Post("/mark_notifications_read", handler.MarkNotificationsRead)
	app.Post("/mark_all_notifications_hidden", handler.MarkAllNotificationsHidden)
	app.Get("/translations", handler.Translations)

	crm := app.Group("/crm")
	crm.Post("/login", handler.CRMLogin)
	crm.Get("/dashboard", handler.CRMDashboard)
	crm.Get("/client/:id/", handler.CRMClientData)
}
