package postgres

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	up, err := ParseDirection("up")
	require.NoError(t, err)
	assert.Equal(t, DirectionUp, up)

	down, err := ParseDirection("down")
	require.NoError(t, err)
	assert.Equal(t, DirectionDown, down)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}

func TestMigrationFiles_ArePaired(t *testing.T) {
	ups, err := fs.Glob(migrationFiles, "migrations/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(migrationFiles, "migrations/*.down.sql")
	require.NoError(t, err)

	assert.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))
}
