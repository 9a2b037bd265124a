// Package dbtest opens throwaway SQLite databases for tests.
package dbtest

import (
	"strings"
	"testing"

	"tienda/internal/config"
	"tienda/internal/database"

	"gorm.io/gorm"
)

// Open returns a migrated in-memory database private to t. Foreign keys are
// enforced and the connection is closed when the test ends.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Open(config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    "file:" + name + "?mode=memory&cache=shared&_foreign_keys=on",
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
