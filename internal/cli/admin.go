package cli

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/fertivia/clinic/internal/db"
	"github.com/fertivia/clinic/internal/models"
	"github.com/fertivia/clinic/internal/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const temporaryPasswordLength = 12

// RunCreateAdminCommand provisions a staff account with a generated
// temporary password, printed once for the operator to hand over.
func RunCreateAdminCommand(driver string, dsn string, email string, firstName string, lastName string, phone string) error {
	normalizedEmail, err := normalizeAdminEmail(email)
	if err != nil {
		return err
	}

	database, err := db.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	admins := db.NewAdminUserRepository(database)
	if _, err := admins.FindByEmail(normalizedEmail); err == nil {
		return fmt.Errorf("admin %s already exists", normalizedEmail)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("load admin: %w", err)
	}

	temporaryPassword, err := generateTemporaryPassword(temporaryPasswordLength)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash temporary password: %w", err)
	}

	admin := models.AdminUser{
		Email:     normalizedEmail,
		Password:  string(passwordHash),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Phone:     strings.TrimSpace(phone),
	}
	if err := admins.Create(&admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	fmt.Printf("Admin %s created (id %d)\n", normalizedEmail, admin.ID)
	fmt.Printf("Temporary password: %s\n", temporaryPassword)
	return nil
}

// RunResetAdminPasswordCommand replaces a staff account's password with a
// fresh temporary one.
func RunResetAdminPasswordCommand(driver string, dsn string, email string) error {
	normalizedEmail, err := normalizeAdminEmail(email)
	if err != nil {
		return err
	}

	database, err := db.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	admins := db.NewAdminUserRepository(database)
	admin, err := admins.FindByEmail(normalizedEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("admin %s not found", normalizedEmail)
		}
		return fmt.Errorf("load admin: %w", err)
	}

	temporaryPassword, err := generateTemporaryPassword(temporaryPasswordLength)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash temporary password: %w", err)
	}

	admin.Password = string(passwordHash)
	if err := admins.Save(&admin); err != nil {
		return fmt.Errorf("update admin password: %w", err)
	}

	fmt.Printf("Password reset for %s\n", normalizedEmail)
	fmt.Printf("Temporary password: %s\n", temporaryPassword)
	return nil
}

func normalizeAdminEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalized); err != nil {
		return "", fmt.Errorf("invalid email address: %w", err)
	}
	return normalized, nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}
