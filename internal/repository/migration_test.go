// filepath: internal/repository/migration_test.go
package repository

import (
	"path/filepath"
	"testing"

	"payinfo/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openBare(t *testing.T) *Repository {
	t.Helper()
	cfg := &config.Config{Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "migrate.db")}}
	repo, err := NewRepository(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestValidateSchema(t *testing.T) {
	repo := openBare(t)

	// 1. New DB should be invalid (needs migration)
	err := repo.ValidateSchema()
	assert.Error(t, err, "Fresh DB should be considered outdated")
	assert.Contains(t, err.Error(), "database schema is outdated")

	// 2. Apply Migrations
	require.NoError(t, repo.Migrate("up"))

	// 3. Verify Schema is now Valid
	assert.NoError(t, repo.ValidateSchema(), "DB should be valid after applying migrations")

	// 4. Rolling back one step makes it outdated again
	require.NoError(t, repo.Migrate("down"))
	assert.Error(t, repo.ValidateSchema())
}

func TestMigrate_UnknownCommand(t *testing.T) {
	repo := openBare(t)
	err := repo.Migrate("sideways")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown migration command")
}

func TestEnsureSchemaBootstrapped(t *testing.T) {
	t.Run("Fresh Database", func(t *testing.T) {
		repo := openBare(t)

		require.NoError(t, repo.EnsureSchemaBootstrapped())
		assert.NoError(t, repo.ValidateSchema(), "Fresh DB should be fully migrated after bootstrap")

		var tableName string
		err := repo.DB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='payment_infos'").Scan(&tableName)
		assert.NoError(t, err)
		assert.Equal(t, "payment_infos", tableName)
	})

	t.Run("Existing Database (Skip)", func(t *testing.T) {
		repo := openBare(t)

		// An existing version table means migrations are managed manually.
		_, err := repo.DB.Exec("CREATE TABLE goose_db_version (id INTEGER PRIMARY KEY, version_id INTEGER, is_applied BOOLEAN, tstamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP);")
		require.NoError(t, err)

		require.NoError(t, repo.EnsureSchemaBootstrapped())

		var name string
		err = repo.DB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='payment_infos'").Scan(&name)
		assert.Error(t, err, "Bootstrap should have skipped migration")
		assert.Error(t, repo.ValidateSchema())
	})
}
