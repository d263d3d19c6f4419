// Package store persists search terms and the Chrome profile selection as
// JSON documents under the data directory.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/searchbot/searchbot/internal/browser"
)

const (
	termsFile            = "terms.json"
	selectedProfilesFile = "selected_profiles.json"
)

// Store is safe for concurrent use. Documents are written atomically
// (temp file + rename) so an external watcher never sees a torn file.
type Store struct {
	dir string

	mu       sync.Mutex
	terms    []string
	selected []browser.Profile
}

// New opens the store rooted at dir, loading any existing documents.
// Missing or malformed files are treated as empty.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	s := &Store{dir: dir}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloadTermsLocked()
	s.reloadSelectedLocked()
	return s, nil
}

// Dir returns the directory backing the store.
func (s *Store) Dir() string { return s.dir }

// Terms returns the persisted search terms.
func (s *Store) Terms() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.terms...)
}

// SaveTerms replaces the persisted search terms.
func (s *Store) SaveTerms(terms []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeJSONLocked(termsFile, terms); err != nil {
		return err
	}
	s.terms = append([]string(nil), terms...)
	return nil
}

// SelectedProfiles returns the persisted Chrome profile selection.
func (s *Store) SelectedProfiles() []browser.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]browser.Profile(nil), s.selected...)
}

// SaveSelectedProfiles replaces the persisted profile selection.
func (s *Store) SaveSelectedProfiles(profiles []browser.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeJSONLocked(selectedProfilesFile, profiles); err != nil {
		return err
	}
	s.selected = append([]browser.Profile(nil), profiles...)
	return nil
}

func (s *Store) writeJSONLocked(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (s *Store) reloadTermsLocked() {
	var terms []string
	if readJSON(filepath.Join(s.dir, termsFile), &terms) {
		s.terms = terms
	}
}

func (s *Store) reloadSelectedLocked() {
	var profiles []browser.Profile
	if readJSON(filepath.Join(s.dir, selectedProfilesFile), &profiles) {
		s.selected = profiles
	}
}

func readJSON(path string, v any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}
