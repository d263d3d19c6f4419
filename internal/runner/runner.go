// Package runner owns the automation run life cycle: start, iterate over the
// search terms, report status to concurrent pollers, and stop, either
// cooperatively or through the pointer failsafe.
package runner

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/searchbot/searchbot/internal/browser"
	"github.com/searchbot/searchbot/internal/input"
	"github.com/searchbot/searchbot/internal/logging"
)

// MinDelaySeconds is the smallest accepted inter-search delay.
const MinDelaySeconds = 0.5

// Config describes one run. Terms are processed strictly in order; Profiles
// only apply when the browser supports profile launching and are otherwise
// ignored.
type Config struct {
	Terms        []string
	DelaySeconds float64
	Browser      browser.Kind
	Profiles     []browser.Profile
}

// Outcome is the terminal result of a run.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeStopped   Outcome = "stopped"
	OutcomeAborted   Outcome = "aborted"
	OutcomeFailed    Outcome = "failed"
)

// Status is a point-in-time snapshot of the run state. Running flips
// true→false exactly once per run; Progress never decreases within a run and
// resets to 0 when the next run starts. Outcome is empty until the run ends.
type Status struct {
	RunID          string  `json:"run_id,omitempty"`
	Running        bool    `json:"is_running"`
	Message        string  `json:"status"`
	CurrentTerm    string  `json:"current_search"`
	CurrentProfile string  `json:"current_profile"`
	Progress       float64 `json:"progress"`
	Completed      int     `json:"completed"`
	Total          int     `json:"total"`
	Failures       int     `json:"failures,omitempty"`
	Outcome        Outcome `json:"outcome,omitempty"`
}

// Aborter reports whether the emergency abort condition holds. Satisfied by
// *input.Failsafe; nil disables abort detection.
type Aborter interface {
	Triggered() bool
}

// Pacing holds the fixed waits inside one search step. All of them honor
// stop and abort; none of them interrupt an in-flight keystroke.
type Pacing struct {
	Settle    time.Duration // after launching a browser, before typing
	NewTab    time.Duration // after opening a tab
	Focus     time.Duration // after focusing the address bar
	PreSubmit time.Duration // after typing, before enter
}

// DefaultPacing mirrors the waits a human-speed interaction needs.
func DefaultPacing() *Pacing {
	return &Pacing{
		Settle:    3 * time.Second,
		NewTab:    500 * time.Millisecond,
		Focus:     300 * time.Millisecond,
		PreSubmit: 200 * time.Millisecond,
	}
}

// Options wires the controller's collaborators.
type Options struct {
	Input    input.Simulator
	Launcher browser.Launcher
	Failsafe Aborter
	// PollInterval bounds cancellation latency; every wait is sliced into
	// increments of this size. Defaults to 100ms.
	PollInterval time.Duration
	// Pacing overrides the fixed step waits; nil means DefaultPacing.
	Pacing *Pacing
	// Jitter returns the random extra wait added to each inter-search delay;
	// nil means the default 150-600ms spread.
	Jitter func() time.Duration
}

// Controller executes runs one at a time. The run goroutine is the only
// writer of the status; everything else reads snapshots under the mutex.
type Controller struct {
	opts Options

	mu      sync.Mutex
	status  Status
	running bool
	stopped bool          // stop requested for the active run
	stopCh  chan struct{} // closed when stop is requested
}

// New creates an idle controller.
func New(opts Options) *Controller {
	if opts.PollInterval <= 0 {
		opts.PollInterval = 100 * time.Millisecond
	}
	if opts.Pacing == nil {
		opts.Pacing = DefaultPacing()
	}
	if opts.Jitter == nil {
		opts.Jitter = func() time.Duration {
			return 150*time.Millisecond + time.Duration(rand.Int63n(int64(450*time.Millisecond)))
		}
	}
	return &Controller{
		opts:   opts,
		status: Status{Message: "Ready to start"},
	}
}

// Start validates the configuration and begins a run in the background. It
// returns the run ID immediately; progress is observed through Status.
func (c *Controller) Start(cfg Config) (string, error) {
	c.mu.Lock()

	// An active run rejects any second start, no matter how malformed the
	// request is.
	if c.running {
		c.mu.Unlock()
		return "", ErrAlreadyRunning
	}

	if len(cfg.Terms) == 0 {
		c.mu.Unlock()
		return "", fmt.Errorf("%w: no search terms provided", ErrInvalidConfig)
	}
	if cfg.DelaySeconds < MinDelaySeconds {
		c.mu.Unlock()
		return "", fmt.Errorf("%w: delay %.2fs is below the %.1fs minimum", ErrInvalidConfig, cfg.DelaySeconds, MinDelaySeconds)
	}
	if _, err := browser.ParseKind(string(cfg.Browser)); err != nil {
		c.mu.Unlock()
		return "", fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.opts.Input.Available(); err != nil {
		c.mu.Unlock()
		return "", fmt.Errorf("%w: %v", ErrNoInputBackend, err)
	}

	runID := uuid.New().String()
	c.running = true
	c.stopped = false
	c.stopCh = make(chan struct{})
	c.status = Status{
		RunID:   runID,
		Running: true,
		Message: "Starting automation",
		Total:   len(cfg.Terms),
	}
	stopCh := c.stopCh
	c.mu.Unlock()

	go c.run(cfg, stopCh)
	return runID, nil
}

// Stop signals the active run to end at its next checkpoint. The run keeps
// its in-flight keystroke sequence intact; termination latency is bounded by
// the poll interval, not by the configured delay.
func (c *Controller) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return ErrNotRunning
	}
	if !c.stopped {
		c.stopped = true
		close(c.stopCh)
		c.status.Message = "Stopping automation"
	}
	return nil
}

// Status returns a snapshot of the current run state. Safe to call
// concurrently with a run at any frequency.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Running reports whether a run is active.
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// run is the background loop. It is the sole writer of c.status while
// active.
func (c *Controller) run(cfg Config, stopCh <-chan struct{}) {
	// Profiles apply to profile-capable browsers only; for the rest the
	// selection is ignored and the default profile is used.
	profiles := cfg.Profiles
	if !cfg.Browser.SupportsProfiles() {
		profiles = nil
	}

	launched := make(map[string]bool)
	total := len(cfg.Terms)
	delay := time.Duration(cfg.DelaySeconds * float64(time.Second))

	for i, term := range cfg.Terms {
		if reason := c.checkpoint(stopCh); reason != waitNone {
			c.finish(reason.outcome(), i, total)
			return
		}

		profileName, profileDir := "", ""
		if len(profiles) > 0 {
			p := profiles[i%len(profiles)]
			profileName, profileDir = p.Name, p.Directory
		}

		// Bring up the browser window for this term's profile. Launch
		// failures are recorded and the run moves on.
		c.update(func(s *Status) {
			s.CurrentProfile = profileName
			s.Message = launchMessage(cfg.Browser, profileName)
		})
		launchKey := profileDir
		if err := c.opts.Launcher.Launch(context.Background(), cfg.Browser, profileDir); err != nil {
			c.stepFailure(fmt.Sprintf("Could not open %s: %v", cfg.Browser, err))
		} else if !launched[launchKey] {
			launched[launchKey] = true
			if reason := c.wait(c.opts.Pacing.Settle, stopCh); reason != waitNone {
				c.finish(reason.outcome(), i, total)
				return
			}
		}

		// Progress reflects work done, not work started.
		c.update(func(s *Status) {
			s.CurrentTerm = term
			s.Message = fmt.Sprintf("Searching for: %s", term)
			s.Progress = percent(i, total)
		})

		reason, err := c.search(term, stopCh)
		if reason != waitNone {
			c.finish(reason.outcome(), i, total)
			return
		}
		if err != nil {
			c.stepFailure(fmt.Sprintf("Search for %q failed: %v", term, err))
			// A dead backend turns a step failure into a fatal one.
			if availErr := c.opts.Input.Available(); availErr != nil {
				c.finishWithMessage(OutcomeFailed, i, total, fmt.Sprintf("Automation failed: %v", availErr))
				return
			}
		}

		c.update(func(s *Status) {
			s.Completed = i + 1
			s.Progress = percent(i+1, total)
		})

		if i < total-1 {
			if reason := c.wait(delay+c.opts.Jitter(), stopCh); reason != waitNone {
				c.finish(reason.outcome(), i+1, total)
				return
			}
		} else {
			// The last term still gets its delay so the search can land
			// before the terminal status flips.
			if reason := c.wait(delay, stopCh); reason != waitNone {
				c.finish(reason.outcome(), i+1, total)
				return
			}
		}
	}

	c.finish(OutcomeCompleted, total, total)
}

// search performs the keystroke sequence for one term: new tab, focus the
// address bar, type, submit. Stop and abort are honored between the discrete
// steps, never inside one.
func (c *Controller) search(term string, stopCh <-chan struct{}) (waitReason, error) {
	if err := c.opts.Input.OpenNewTab(); err != nil {
		return waitNone, err
	}
	if reason := c.wait(c.opts.Pacing.NewTab, stopCh); reason != waitNone {
		return reason, nil
	}

	if err := c.opts.Input.FocusAddressBar(); err != nil {
		return waitNone, err
	}
	if reason := c.wait(c.opts.Pacing.Focus, stopCh); reason != waitNone {
		return reason, nil
	}

	if err := c.opts.Input.TypeText(term); err != nil {
		return waitNone, err
	}
	if reason := c.wait(c.opts.Pacing.PreSubmit, stopCh); reason != waitNone {
		return reason, nil
	}

	return waitNone, c.opts.Input.PressEnter()
}

type waitReason int

const (
	waitNone waitReason = iota
	waitStopped
	waitAborted
)

func (r waitReason) outcome() Outcome {
	if r == waitAborted {
		return OutcomeAborted
	}
	return OutcomeStopped
}

// wait sleeps for d in poll-interval slices, ending early when stop is
// requested or the failsafe triggers.
func (c *Controller) wait(d time.Duration, stopCh <-chan struct{}) waitReason {
	deadline := time.Now().Add(d)
	for {
		if reason := c.checkpoint(stopCh); reason != waitNone {
			return reason
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return waitNone
		}
		if remaining > c.opts.PollInterval {
			remaining = c.opts.PollInterval
		}
		select {
		case <-stopCh:
			return waitStopped
		case <-time.After(remaining):
		}
	}
}

// checkpoint is the cooperative cancellation check run between steps and on
// every poll tick.
func (c *Controller) checkpoint(stopCh <-chan struct{}) waitReason {
	select {
	case <-stopCh:
		return waitStopped
	default:
	}
	if c.opts.Failsafe != nil && c.opts.Failsafe.Triggered() {
		logging.Warnf("failsafe triggered: pointer entered the reserved corner")
		return waitAborted
	}
	return waitNone
}

func (c *Controller) update(fn func(*Status)) {
	c.mu.Lock()
	fn(&c.status)
	c.mu.Unlock()
}

func (c *Controller) stepFailure(msg string) {
	logging.Errorf("%s", msg)
	c.update(func(s *Status) {
		s.Failures++
		s.Message = msg
	})
}

func (c *Controller) finish(outcome Outcome, completed, total int) {
	c.finishWithMessage(outcome, completed, total, terminalMessage(outcome))
}

func (c *Controller) finishWithMessage(outcome Outcome, completed, total int, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.running = false
	c.status.Running = false
	c.status.Outcome = outcome
	c.status.Message = msg
	c.status.CurrentTerm = ""
	c.status.CurrentProfile = ""
	c.status.Completed = completed
	if outcome == OutcomeCompleted {
		c.status.Progress = 100
	} else {
		c.status.Progress = percent(completed, total)
	}
	logging.Infof("run %s ended: %s (%d/%d terms)", c.status.RunID, outcome, completed, total)
}

func terminalMessage(outcome Outcome) string {
	switch outcome {
	case OutcomeCompleted:
		return "Automation completed"
	case OutcomeStopped:
		return "Automation stopped"
	case OutcomeAborted:
		return "Automation aborted: pointer moved to the failsafe corner"
	default:
		return "Automation failed"
	}
}

func launchMessage(kind browser.Kind, profileName string) string {
	if profileName == "" {
		return fmt.Sprintf("Opening %s", kind)
	}
	return fmt.Sprintf("Opening %s with profile: %s", kind, profileName)
}

func percent(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}
