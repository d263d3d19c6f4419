package browser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestListMissingRootReturnsEmpty(t *testing.T) {
	e := NewEnumerator(filepath.Join(t.TempDir(), "does-not-exist"))

	profiles := e.List()
	require.NotNil(t, profiles)
	require.Empty(t, profiles)
}

func TestListNamesFromLocalState(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Default"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Profile 1"), 0755))
	writeFile(t, filepath.Join(root, "Local State"), `{
		"profile": {"info_cache": {
			"Default":   {"name": "Personal"},
			"Profile 1": {"gaia_name": "Work Account"}
		}}
	}`)

	profiles := NewEnumerator(root).List()
	require.Len(t, profiles, 2)
	require.Equal(t, "Default", profiles[0].Directory)
	require.Equal(t, "Personal", profiles[0].Name)
	require.Equal(t, "Profile 1", profiles[1].Directory)
	require.Equal(t, "Work Account", profiles[1].Name)
}

func TestListFallsBackToPreferences(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Profile 2"), 0755))
	writeFile(t, filepath.Join(root, "Profile 2", "Preferences"), `{"profile": {"name": "Side Project"}}`)

	profiles := NewEnumerator(root).List()
	require.Len(t, profiles, 1)
	require.Equal(t, "Side Project", profiles[0].Name)
}

func TestListFallsBackToDirectoryName(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Default"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Profile 7"), 0755))
	// Unrelated directories are ignored.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "GrShaderCache"), 0755))

	profiles := NewEnumerator(root).List()
	require.Len(t, profiles, 2)
	require.Equal(t, "Default", profiles[0].Name)
	require.Equal(t, "Profile 7", profiles[1].Name)
}

func TestListMalformedLocalStateDegrades(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Default"), 0755))
	writeFile(t, filepath.Join(root, "Local State"), `{not json`)

	profiles := NewEnumerator(root).List()
	require.Len(t, profiles, 1)
	require.Equal(t, "Default", profiles[0].Name)
}
