package schedule

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchbot/searchbot/internal/browser"
	"github.com/searchbot/searchbot/internal/runner"
)

type fakeSource struct {
	terms    []string
	profiles []browser.Profile
}

func (f *fakeSource) Terms() []string                     { return f.terms }
func (f *fakeSource) SelectedProfiles() []browser.Profile { return f.profiles }

type fakeRunner struct {
	mu      sync.Mutex
	configs []runner.Config
	err     error
}

func (f *fakeRunner) Start(cfg runner.Config) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.configs = append(f.configs, cfg)
	return "run-1", nil
}

func TestFireStartsRunWithStoredState(t *testing.T) {
	source := &fakeSource{
		terms:    []string{"apple", "banana"},
		profiles: []browser.Profile{{Directory: "Profile 1"}},
	}
	run := &fakeRunner{}
	s := New("@hourly", source, run, 4.5, browser.KindChrome)

	s.fire()

	require.Len(t, run.configs, 1)
	cfg := run.configs[0]
	assert.Equal(t, []string{"apple", "banana"}, cfg.Terms)
	assert.Equal(t, 4.5, cfg.DelaySeconds)
	assert.Equal(t, browser.KindChrome, cfg.Browser)
	assert.Equal(t, source.profiles, cfg.Profiles)
}

func TestFireOmitsProfilesForNonChrome(t *testing.T) {
	source := &fakeSource{
		terms:    []string{"apple"},
		profiles: []browser.Profile{{Directory: "Profile 1"}},
	}
	run := &fakeRunner{}
	s := New("@hourly", source, run, 3, browser.KindFirefox)

	s.fire()

	require.Len(t, run.configs, 1)
	assert.Empty(t, run.configs[0].Profiles)
}

func TestFireSkipsWithoutTerms(t *testing.T) {
	run := &fakeRunner{}
	s := New("@hourly", &fakeSource{}, run, 3, browser.KindChrome)

	s.fire()
	assert.Empty(t, run.configs)
}

func TestFireToleratesActiveRun(t *testing.T) {
	run := &fakeRunner{err: runner.ErrAlreadyRunning}
	s := New("@hourly", &fakeSource{terms: []string{"apple"}}, run, 3, browser.KindChrome)

	// Must not panic or retry; the tick is simply skipped.
	s.fire()
	assert.Empty(t, run.configs)
}

func TestStartRejectsInvalidSpec(t *testing.T) {
	s := New("not a cron spec", &fakeSource{}, &fakeRunner{}, 3, browser.KindChrome)
	err := s.Start()
	require.Error(t, err)
}
