package database

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgxURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@localhost:5432/db", pgxURL("postgres://u:p@localhost:5432/db"))
	assert.Equal(t, "pgx5://localhost/db", pgxURL("postgresql://localhost/db"))
	assert.Equal(t, "pgx5://localhost/db", pgxURL("pgx5://localhost/db"))
}

func TestMigrationsArePaired(t *testing.T) {
	ups, err := fs.Glob(migrationFiles, "migrations/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(migrationFiles, "migrations/*.down.sql")
	require.NoError(t, err)

	assert.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))
}

func TestMigrateRejectsUnknownDirection(t *testing.T) {
	err := Migrate("postgres://localhost:1/none", "sideways")
	assert.Error(t, err)
}
