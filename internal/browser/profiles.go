package browser

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/searchbot/searchbot/internal/logging"
)

// Profile is one Chrome identity. Directory is the stable identifier; Name is
// display-only and may collide across profiles.
type Profile struct {
	Directory string `json:"directory"`
	Name      string `json:"name"`
	Path      string `json:"path,omitempty"`
}

// Enumerator lists Chrome profiles by scanning the user data directory.
// Listing never fails: any I/O or JSON problem degrades to fewer (or zero)
// profiles, which callers display as "no profiles found".
type Enumerator struct {
	userDataDir string
}

// NewEnumerator creates an enumerator. An empty override means auto-detect
// the per-OS Chrome user data directory.
func NewEnumerator(override string) *Enumerator {
	dir := override
	if dir == "" {
		dir = chromeUserDataDir()
	}
	return &Enumerator{userDataDir: dir}
}

// UserDataDir returns the directory being scanned, or "" if none was found.
func (e *Enumerator) UserDataDir() string {
	return e.userDataDir
}

// List returns the available profiles in enumeration order: Default first,
// then the "Profile N" directories. Display names come from the Local State
// info cache, then the profile's Preferences file, then the directory name.
func (e *Enumerator) List() []Profile {
	profiles := []Profile{}

	if e.userDataDir == "" || !dirExists(e.userDataDir) {
		logging.Debugf("chrome user data directory not found: %s", e.userDataDir)
		return profiles
	}

	infoCache := e.readInfoCache()

	var dirs []string
	if dirExists(filepath.Join(e.userDataDir, "Default")) {
		dirs = append(dirs, "Default")
	}
	entries, err := os.ReadDir(e.userDataDir)
	if err != nil {
		logging.Warnf("failed to read user data dir: %v", err)
		return profiles
	}
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), "Profile ") {
			dirs = append(dirs, entry.Name())
		}
	}

	for _, dir := range dirs {
		path := filepath.Join(e.userDataDir, dir)

		name := infoCache[dir]
		if name == "" {
			name = readPreferencesName(path)
		}
		if name == "" {
			name = dir
		}

		profiles = append(profiles, Profile{
			Directory: dir,
			Name:      name,
			Path:      path,
		})
	}

	return profiles
}

// readInfoCache pulls display names from Local State's profile.info_cache.
func (e *Enumerator) readInfoCache() map[string]string {
	names := map[string]string{}

	data, err := os.ReadFile(filepath.Join(e.userDataDir, "Local State"))
	if err != nil {
		return names
	}

	var state struct {
		Profile struct {
			InfoCache map[string]struct {
				Name     string `json:"name"`
				GaiaName string `json:"gaia_name"`
			} `json:"info_cache"`
		} `json:"profile"`
	}
	if err := json.Unmarshal(data, &state); err != nil {
		logging.Warnf("could not parse Local State: %v", err)
		return names
	}

	for dir, info := range state.Profile.InfoCache {
		if info.Name != "" {
			names[dir] = info.Name
		} else if info.GaiaName != "" {
			names[dir] = info.GaiaName
		}
	}
	return names
}

// readPreferencesName extracts a display name from a profile's Preferences
// file, or "" if unavailable.
func readPreferencesName(profilePath string) string {
	data, err := os.ReadFile(filepath.Join(profilePath, "Preferences"))
	if err != nil {
		return ""
	}

	var prefs struct {
		Profile struct {
			Name     string `json:"name"`
			GaiaName string `json:"gaia_name"`
		} `json:"profile"`
	}
	if err := json.Unmarshal(data, &prefs); err != nil {
		return ""
	}

	if prefs.Profile.Name != "" {
		return prefs.Profile.Name
	}
	return prefs.Profile.GaiaName
}

// chromeUserDataDir finds the Chrome user data directory for this OS.
// Returns "" when no known location exists.
func chromeUserDataDir() string {
	home, _ := os.UserHomeDir()

	switch runtime.GOOS {
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			dir := filepath.Join(localAppData, "Google", "Chrome", "User Data")
			if dirExists(dir) {
				return dir
			}
		}
	case "darwin":
		dir := filepath.Join(home, "Library", "Application Support", "Google", "Chrome")
		if dirExists(dir) {
			return dir
		}
	case "linux":
		for _, dir := range []string{
			filepath.Join(home, ".config", "google-chrome"),
			filepath.Join(home, ".config", "chromium"),
			filepath.Join(home, ".config", "chrome"),
		} {
			if dirExists(dir) {
				return dir
			}
		}
	}
	return ""
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
