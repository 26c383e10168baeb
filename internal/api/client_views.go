package api

import (
	"fmt"
	"time"

	"github.com/fertivia/clinic/internal/models"
	"github.com/gofiber/fiber/v2"
)

// clientSnapshot renders the profile view the mobile app consumes. Decimal
// fields travel as strings, absent values as null.
func clientSnapshot(client models.Client) fiber.Map {
	return fiber.Map{
		"id":               client.ID,
		"first_name":       client.FirstName,
		"last_name":        client.LastName,
		"email":            client.Email,
		"weight":           decimalString(client.Weight),
		"height":           decimalString(client.Height),
		"date_of_birth":    dateString(client.DateOfBirth),
		"cycle_type":       client.CycleType,
		"dass_tests_taken": client.DassTestsTaken,
		"profile_image":    client.ProfileImage,
		"language":         client.Language,
		"period_dates":     client.PeriodDates,
	}
}

func decimalString(value *float64) any {
	if value == nil {
		return nil
	}
	return fmt.Sprintf("%.2f", *value)
}

func dateString(value *time.Time) any {
	if value == nil {
		return nil
	}
	return value.Format("2006-01-02")
}
