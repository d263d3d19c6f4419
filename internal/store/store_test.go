package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchbot/searchbot/internal/browser"
)

func TestNewWithEmptyDir(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, s.Terms())
	assert.Empty(t, s.SelectedProfiles())
}

func TestTermsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	terms := []string{"apple", "banana", "cherry"}
	require.NoError(t, s.SaveTerms(terms))
	assert.Equal(t, terms, s.Terms())

	// A fresh store over the same dir sees the persisted document.
	s2, err := New(dir)
	require.NoError(t, err)
	assert.Equal(t, terms, s2.Terms())
}

func TestSelectedProfilesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	profiles := []browser.Profile{
		{Directory: "Default", Name: "Personal"},
		{Directory: "Profile 1", Name: "Work"},
	}
	require.NoError(t, s.SaveSelectedProfiles(profiles))

	s2, err := New(dir)
	require.NoError(t, err)
	assert.Equal(t, profiles, s2.SelectedProfiles())
}

func TestMalformedDocumentTreatedAsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "terms.json"), []byte("{not json"), 0o644))

	s, err := New(dir)
	require.NoError(t, err)
	assert.Empty(t, s.Terms())
}

func TestExternalEditPickedUpByReload(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, s.SaveTerms([]string{"apple"}))

	data, err := json.Marshal([]string{"mango", "papaya"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "terms.json"), data, 0o644))

	// Same path the watcher takes on a write event.
	s.handleFSEvent(fakeWriteEvent(filepath.Join(dir, "terms.json")))
	assert.Equal(t, []string{"mango", "papaya"}, s.Terms())
}
