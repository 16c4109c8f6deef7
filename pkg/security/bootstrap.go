package security

import (
	"fmt"
	"time"

	"assettrack/internal/repository"

	"github.com/doug-martin/goqu/v9"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdminExists creates the administrator account when it is missing.
// It runs once during startup, before the server accepts requests, and is
// idempotent.
func EnsureAdminExists(repo *repository.Repository, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("admin credentials are not configured")
	}

	var count int
	_, err := repo.GoquDBWrapper.
		Select(goqu.COUNT("*")).
		From("users").
		Where(goqu.Ex{"username": username}).
		Executor().
		ScanVal(&count)
	if err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = repo.GoquDBWrapper.Insert("users").
		Rows(goqu.Record{
			"username":      username,
			"password_hash": string(hashedPassword),
			"fullname":      "System Administrator",
			"created_at":    time.Now().UTC(),
		}).
		Executor().
		Exec()
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	return nil
}
