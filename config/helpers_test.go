package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

// relativeTo converts dir into a path relative to the working directory, the
// form LoadWithEnv expects for its search paths.
func relativeTo(t *testing.T, dir string) string {
	t.Helper()

	pwd, err := os.Getwd()
	require.NoError(t, err)

	rel, err := filepath.Rel(pwd, dir)
	require.NoError(t, err)

	return rel
}
