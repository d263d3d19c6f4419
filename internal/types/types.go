package types

import "github.com/searchbot/searchbot/internal/browser"

type StartRequest struct {
	Terms                 []string          `json:"terms"`
	Delay                 float64           `json:"delay"`
	Browser               string            `json:"browser"`
	SelectedProfiles      []browser.Profile `json:"selectedProfiles,omitempty"`
	UseDefaultIfNoProfile bool              `json:"useDefaultIfNoProfile"`
}

type StartResponse struct {
	Message string `json:"message"`
	RunID   string `json:"runId"`
}

type StopResponse struct {
	Message string `json:"message"`
}

type ProfilesResponse struct {
	Profiles []browser.Profile `json:"profiles"`
}

type ApplyProfilesRequest struct {
	SelectedProfiles []browser.Profile `json:"selectedProfiles"`
}

type ApplyProfilesResponse struct {
	Message  string            `json:"message"`
	Profiles []browser.Profile `json:"profiles"`
	Warning  string            `json:"warning,omitempty"`
}

type SaveTermsRequest struct {
	Terms []string `json:"terms"`
}

type SaveTermsResponse struct {
	Message string `json:"message"`
}

type LoadTermsResponse struct {
	Terms []string `json:"terms"`
}

type HealthResponse struct {
	Status            string `json:"status"`
	Version           string `json:"version"`
	Platform          string `json:"platform"`
	ChromeUserDataDir string `json:"chromeUserDataDir"`
	InputAvailable    bool   `json:"inputAvailable"`
	InputError        string `json:"inputError,omitempty"`
	FailsafeEnabled   bool   `json:"failsafeEnabled"`
	Timestamp         string `json:"timestamp"`
}
