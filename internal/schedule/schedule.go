// Package schedule fires automation runs on a cron expression, using the
// stored terms and profile selection.
package schedule

import (
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/searchbot/searchbot/internal/browser"
	"github.com/searchbot/searchbot/internal/logging"
	"github.com/searchbot/searchbot/internal/runner"
)

// Runner is the slice of the run controller the scheduler needs.
type Runner interface {
	Start(cfg runner.Config) (string, error)
}

// TermSource supplies the persisted terms and profile selection at fire time.
type TermSource interface {
	Terms() []string
	SelectedProfiles() []browser.Profile
}

// Scheduler wraps robfig/cron with a single recurring job.
type Scheduler struct {
	cron    *cron.Cron
	spec    string
	source  TermSource
	run     Runner
	delay   float64
	browser browser.Kind
}

// New builds a scheduler for the given cron spec. The spec is validated
// when Start is called.
func New(spec string, source TermSource, run Runner, delaySeconds float64, kind browser.Kind) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		spec:    spec,
		source:  source,
		run:     run,
		delay:   delaySeconds,
		browser: kind,
	}
}

// Start registers the job and starts the cron timer.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.fire); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", s.spec, err)
	}
	s.cron.Start()
	logging.Infof("schedule: runs scheduled with spec %q", s.spec)
	return nil
}

// Stop halts the cron timer. Jobs already firing are not interrupted.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// fire starts a run of the stored terms. A run already in progress, or an
// empty term list, skips the tick silently.
func (s *Scheduler) fire() {
	terms := s.source.Terms()
	if len(terms) == 0 {
		logging.Infof("schedule: no stored terms, skipping tick")
		return
	}
	cfg := runner.Config{
		Terms:        terms,
		DelaySeconds: s.delay,
		Browser:      s.browser,
	}
	if s.browser.SupportsProfiles() {
		cfg.Profiles = s.source.SelectedProfiles()
	}
	runID, err := s.run.Start(cfg)
	switch {
	case errors.Is(err, runner.ErrAlreadyRunning):
		logging.Infof("schedule: run already active, skipping tick")
	case err != nil:
		logging.Errorf("schedule: could not start run: %v", err)
	default:
		logging.Infof("schedule: started run %s (%d terms)", runID, len(terms))
	}
}
