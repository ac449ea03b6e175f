package main

import (
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
CREATE TABLE artisans (id serial PRIMARY KEY);
CREATE TABLE products (id serial PRIMARY KEY);

-- +migrate Down
DROP TABLE products;
DROP TABLE artisans;
`
	t.Run("Extract Up", func(t *testing.T) {
		up := extractMigrationPart(content, "Up")
		assert.Contains(t, up, "CREATE TABLE artisans")
		assert.Contains(t, up, "CREATE TABLE products")
		assert.NotContains(t, up, "DROP TABLE")
		assert.NotContains(t, up, "-- +migrate Up")
	})

	t.Run("Extract Down", func(t *testing.T) {
		down := extractMigrationPart(content, "Down")
		assert.Contains(t, down, "DROP TABLE products")
		assert.NotContains(t, down, "CREATE TABLE")
	})
}

func TestRunMigrationsUp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tmpDir := t.TempDir()
	fileName := "0001_init.sql"
	filePath := filepath.Join(tmpDir, fileName)

	content := "-- +migrate Up\nCREATE TABLE artisans (id serial PRIMARY KEY);"
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))

	files := []string{filePath}

	t.Run("Applies pending migration", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
			WithArgs(fileName).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("CREATE TABLE artisans").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO schema_migrations").
			WithArgs(fileName).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := runMigrationsUp(db, files)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Skips applied migration", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
			WithArgs(fileName).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		err := runMigrationsUp(db, files)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRunMigrationsDown(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tmpDir := t.TempDir()
	fileName := "0001_init.sql"
	filePath := filepath.Join(tmpDir, fileName)

	content := "-- +migrate Up\nCREATE TABLE artisans (id serial);\n-- +migrate Down\nDROP TABLE artisans;"
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))

	mock.ExpectQuery("SELECT version FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(fileName))
	mock.ExpectExec("DROP TABLE artisans").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM schema_migrations").
		WithArgs(fileName).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = runMigrationsDown(db, []string{filePath})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
