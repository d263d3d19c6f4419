package defaults

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDataDirOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("SEARCHBOT_DATA_DIR", tmp)

	dir, err := DataDir()
	require.NoError(t, err)
	require.Equal(t, tmp, dir)
}

func TestEnsureDataDirCreates(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("SEARCHBOT_DATA_DIR", filepath.Join(tmp, "nested", "data"))

	dir, err := EnsureDataDir()
	require.NoError(t, err)
	require.DirExists(t, dir)
}
