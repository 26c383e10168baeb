package db

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *Repositories {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), "clinic-test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	return NewRepositories(database)
}
