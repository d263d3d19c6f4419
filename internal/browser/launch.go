package browser

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Launcher brings a browser to the foreground, optionally with a specific
// Chrome profile directory. Implementations must not block on the browser
// process.
type Launcher interface {
	Launch(ctx context.Context, kind Kind, profileDir string) error
}

// ExecLauncher launches browsers through OS commands, the same way a user
// would from a shell. It never waits for the process to exit.
type ExecLauncher struct{}

// NewExecLauncher returns the platform launcher.
func NewExecLauncher() *ExecLauncher {
	return &ExecLauncher{}
}

// Launch starts (or focuses) the given browser. For Chrome, a non-empty
// profileDir is passed as --profile-directory so the window opens under that
// identity.
func (l *ExecLauncher) Launch(ctx context.Context, kind Kind, profileDir string) error {
	switch runtime.GOOS {
	case "windows":
		return launchWindows(ctx, kind, profileDir)
	case "darwin":
		return launchDarwin(ctx, kind, profileDir)
	case "linux":
		return launchLinux(ctx, kind, profileDir)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

func launchWindows(ctx context.Context, kind Kind, profileDir string) error {
	if kind == KindSafari {
		return fmt.Errorf("safari is not available on windows")
	}

	names := map[Kind]string{
		KindChrome:  "chrome",
		KindEdge:    "msedge",
		KindFirefox: "firefox",
		KindBrave:   "brave",
		KindOpera:   "opera",
	}

	args := []string{"/c", "start", "", names[kind]}
	if kind == KindChrome && profileDir != "" {
		args = append(args, fmt.Sprintf("--profile-directory=%s", profileDir))
	}
	return startDetached(ctx, "cmd", args...)
}

func launchDarwin(ctx context.Context, kind Kind, profileDir string) error {
	apps := map[Kind]string{
		KindChrome:  "Google Chrome",
		KindEdge:    "Microsoft Edge",
		KindFirefox: "Firefox",
		KindBrave:   "Brave Browser",
		KindOpera:   "Opera",
		KindSafari:  "Safari",
	}

	args := []string{"-a", apps[kind]}
	if kind == KindChrome && profileDir != "" {
		args = append(args, "--args", fmt.Sprintf("--profile-directory=%s", profileDir))
	}
	return startDetached(ctx, "open", args...)
}

func launchLinux(ctx context.Context, kind Kind, profileDir string) error {
	if kind == KindSafari {
		return fmt.Errorf("safari is not available on linux")
	}

	candidates := map[Kind][]string{
		KindChrome:  {"google-chrome", "google-chrome-stable", "chromium-browser", "chromium"},
		KindEdge:    {"microsoft-edge", "microsoft-edge-stable"},
		KindFirefox: {"firefox"},
		KindBrave:   {"brave-browser", "brave"},
		KindOpera:   {"opera"},
	}

	var bin string
	for _, c := range candidates[kind] {
		if _, err := exec.LookPath(c); err == nil {
			bin = c
			break
		}
	}
	if bin == "" {
		return fmt.Errorf("no executable found for %s", kind)
	}

	var args []string
	if kind == KindChrome && profileDir != "" {
		args = append(args, fmt.Sprintf("--profile-directory=%s", profileDir))
	}
	return startDetached(ctx, bin, args...)
}

// startDetached starts the command without waiting for it. The browser owns
// its own lifetime; reaping the process is left to a background Wait.
func startDetached(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = os.Environ()
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
