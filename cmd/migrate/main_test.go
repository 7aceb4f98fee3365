package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMigrationPart(t *testing.T) {
	content := `
-- +migrate Up
CREATE TABLE addresses (id text);
CREATE INDEX idx_addresses_type_name ON addresses (type_name);

-- +migrate Down
DROP TABLE addresses;
`
	t.Run("Extract Up", func(t *testing.T) {
		up := extractMigrationPart(content, "Up")
		assert.Contains(t, up, "CREATE TABLE addresses")
		assert.Contains(t, up, "CREATE INDEX")
		assert.NotContains(t, up, "DROP TABLE addresses")
		assert.NotContains(t, up, "-- +migrate Up")
	})

	t.Run("Extract Down", func(t *testing.T) {
		down := extractMigrationPart(content, "Down")
		assert.Contains(t, down, "DROP TABLE addresses")
		assert.NotContains(t, down, "CREATE TABLE addresses")
	})

	t.Run("Missing section", func(t *testing.T) {
		assert.Empty(t, extractMigrationPart(content, "Sideways"))
	})
}

func TestAddressesMigration(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("..", "..", "migrations", "20240101000000_create_addresses.sql"))
	require.NoError(t, err)

	up := extractMigrationPart(string(content), "Up")
	for _, column := range []string{
		"type_name", "line1", "line2", "province_name", "city_or_town",
		"country_code", "country_name", "postal_code", "last_updated", "created_at",
	} {
		assert.Contains(t, up, column)
	}
	assert.Contains(t, extractMigrationPart(string(content), "Down"), "DROP TABLE IF EXISTS addresses")
}

func writeMigration(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunMigrationsUp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dir := t.TempDir()
	applied := writeMigration(t, dir, "20230101_init.sql", "-- +migrate Up\nCREATE TABLE init (id int);")
	pending := writeMigration(t, dir, "20230201_addresses.sql", "-- +migrate Up\nCREATE TABLE addresses (id text);")

	mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
		WithArgs("20230101_init.sql").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
		WithArgs("20230201_addresses.sql").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("CREATE TABLE addresses").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs("20230201_addresses.sql").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, runMigrationsUp(db, []string{applied, pending}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrationsUp_ExecFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	file := writeMigration(t, t.TempDir(), "20230101_bad.sql", "-- +migrate Up\nCREATE TABLE broken (;")

	mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
		WithArgs("20230101_bad.sql").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("CREATE TABLE broken").
		WillReturnError(errors.New("syntax error"))

	err = runMigrationsUp(db, []string{file})
	assert.ErrorContains(t, err, "migration 20230101_bad.sql failed")
}

func TestRunMigrationsDown(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	file := writeMigration(t, t.TempDir(), "20230201_addresses.sql",
		"-- +migrate Up\nCREATE TABLE addresses (id text);\n-- +migrate Down\nDROP TABLE addresses;")

	mock.ExpectQuery("SELECT version FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("20230201_addresses.sql"))
	mock.ExpectExec("DROP TABLE addresses").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM schema_migrations").
		WithArgs("20230201_addresses.sql").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, runMigrationsDown(db, []string{file}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_UnknownMode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = run(db, "sideways", t.TempDir())
	assert.ErrorContains(t, err, "unknown mode")
}
