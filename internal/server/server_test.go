package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchbot/searchbot/internal/browser"
	"github.com/searchbot/searchbot/internal/config"
	"github.com/searchbot/searchbot/internal/svc"
	"github.com/searchbot/searchbot/internal/types"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	r, _ := newTestRouterWithChromeDir(t)
	return r
}

func newTestRouterWithChromeDir(t *testing.T) (chi.Router, string) {
	t.Helper()
	t.Setenv("SEARCHBOT_DATA_DIR", t.TempDir())

	c := config.Default()
	chromeDir := t.TempDir()
	c.Browser.ChromeUserDataDir = chromeDir

	svcCtx, err := svc.NewServiceContext(c)
	require.NoError(t, err)
	return NewRouter(svcCtx, true), chromeDir
}

func doJSON(t *testing.T, r chi.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, runtime.GOOS, resp.Platform)
	assert.True(t, resp.FailsafeEnabled)
}

func TestSaveAndLoadTerms(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/save", types.SaveTermsRequest{
		Terms: []string{"apple", "banana"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/load", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.LoadTermsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"apple", "banana"}, resp.Terms)
}

func TestLoadTermsEmpty(t *testing.T) {
	r := newTestRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/api/load", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.LoadTermsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Terms)
	assert.Empty(t, resp.Terms)
}

func TestStartRejectsEmptyTerms(t *testing.T) {
	r := newTestRouter(t)
	rec := doJSON(t, r, http.MethodPost, "/api/start", types.StartRequest{Delay: 3})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStartRejectsUnknownBrowser(t *testing.T) {
	r := newTestRouter(t)
	rec := doJSON(t, r, http.MethodPost, "/api/start", types.StartRequest{
		Terms:   []string{"apple"},
		Delay:   3,
		Browser: "netscape",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStartRejectsLowDelay(t *testing.T) {
	r := newTestRouter(t)
	rec := doJSON(t, r, http.MethodPost, "/api/start", types.StartRequest{
		Terms:                 []string{"apple"},
		Delay:                 0.2,
		Browser:               "chrome",
		UseDefaultIfNoProfile: true,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStartChromeWithoutProfilesRejected(t *testing.T) {
	r := newTestRouter(t)
	rec := doJSON(t, r, http.MethodPost, "/api/start", types.StartRequest{
		Terms:   []string{"apple"},
		Delay:   3,
		Browser: "chrome",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "profiles")
}

func TestStopWithoutRun(t *testing.T) {
	r := newTestRouter(t)
	rec := doJSON(t, r, http.MethodPost, "/api/stop", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatusIdle(t *testing.T) {
	r := newTestRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/api/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var status map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, false, status["is_running"])
	assert.Equal(t, "Ready to start", status["status"])
}

func TestProfilesEnumeratedPerRequest(t *testing.T) {
	r, chromeDir := newTestRouterWithChromeDir(t)

	rec := doJSON(t, r, http.MethodGet, "/api/profiles", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var before types.ProfilesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &before))
	assert.Empty(t, before.Profiles)

	// A profile created while the server runs appears on the next GET,
	// without hitting the refresh endpoint.
	require.NoError(t, os.Mkdir(filepath.Join(chromeDir, "Profile 2"), 0o755))

	rec = doJSON(t, r, http.MethodGet, "/api/profiles", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var after types.ProfilesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &after))
	require.Len(t, after.Profiles, 1)
	assert.Equal(t, "Profile 2", after.Profiles[0].Directory)
}

func TestApplyProfilesReportsUnknown(t *testing.T) {
	r := newTestRouter(t)
	rec := doJSON(t, r, http.MethodPost, "/api/apply-profiles", types.ApplyProfilesRequest{
		SelectedProfiles: []browser.Profile{{Directory: "Profile 99", Name: "Ghost"}},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.ApplyProfilesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Profiles)
	assert.Contains(t, resp.Warning, "Ghost")

	rec = doJSON(t, r, http.MethodGet, "/api/selected-profiles", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var sel types.ProfilesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sel))
	assert.Empty(t, sel.Profiles)
}
