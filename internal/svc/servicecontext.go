package svc

import (
	"fmt"
	"sync"
	"time"

	"github.com/searchbot/searchbot/internal/browser"
	"github.com/searchbot/searchbot/internal/config"
	"github.com/searchbot/searchbot/internal/defaults"
	"github.com/searchbot/searchbot/internal/input"
	"github.com/searchbot/searchbot/internal/runner"
	"github.com/searchbot/searchbot/internal/store"
)

// ServiceContext bundles the shared dependencies handlers need. Built once
// at startup and passed by pointer everywhere.
type ServiceContext struct {
	Config   config.Config
	Store    *store.Store
	Runner   *runner.Controller
	Input    input.Simulator
	Launcher browser.Launcher
	Version  string

	enumerator *browser.Enumerator

	profilesMu sync.Mutex
	profiles   []browser.Profile
}

// NewServiceContext wires the service from configuration. Profiles are
// enumerated once at boot for CLI consumers; the HTTP handlers re-enumerate
// per request.
func NewServiceContext(c config.Config) (*ServiceContext, error) {
	dataDir, err := defaults.EnsureDataDir()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}
	st, err := store.New(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	sim := input.NewSimulator(c.Automation.TypeDelayMs)

	var failsafe runner.Aborter
	if c.Failsafe.Enabled {
		failsafe = input.NewFailsafe(input.Region{
			Corner: c.Failsafe.Corner,
			SizePx: c.Failsafe.SizePx,
		}, sim)
	}

	pacing := runner.DefaultPacing()
	if c.Automation.SettleSeconds > 0 {
		pacing.Settle = time.Duration(c.Automation.SettleSeconds * float64(time.Second))
	}

	launcher := browser.NewExecLauncher()
	ctrl := runner.New(runner.Options{
		Input:        sim,
		Launcher:     launcher,
		Failsafe:     failsafe,
		PollInterval: time.Duration(c.Automation.PollIntervalMs) * time.Millisecond,
		Pacing:       pacing,
	})

	svcCtx := &ServiceContext{
		Config:     c,
		Store:      st,
		Runner:     ctrl,
		Input:      sim,
		Launcher:   launcher,
		enumerator: browser.NewEnumerator(c.Browser.ChromeUserDataDir),
	}
	svcCtx.RefreshProfiles()
	return svcCtx, nil
}

// Profiles returns the most recently enumerated Chrome profile list.
func (s *ServiceContext) Profiles() []browser.Profile {
	s.profilesMu.Lock()
	defer s.profilesMu.Unlock()
	return append([]browser.Profile(nil), s.profiles...)
}

// RefreshProfiles re-enumerates Chrome profiles from disk and returns the
// fresh list.
func (s *ServiceContext) RefreshProfiles() []browser.Profile {
	fresh := s.enumerator.List()
	s.profilesMu.Lock()
	s.profiles = fresh
	s.profilesMu.Unlock()
	return append([]browser.Profile(nil), fresh...)
}

// ChromeUserDataDir exposes the directory profiles are enumerated from, for
// the health endpoint.
func (s *ServiceContext) ChromeUserDataDir() string {
	return s.enumerator.UserDataDir()
}
