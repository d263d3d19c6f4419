//go:build darwin

package input

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// DesktopSimulator drives macOS input. Prefers cliclick (brew install
// cliclick); keyboard falls back to AppleScript System Events.
type DesktopSimulator struct {
	useCliclick bool
	typeDelayMs int
}

// NewSimulator detects whether cliclick is installed.
func NewSimulator(typeDelayMs int) *DesktopSimulator {
	_, err := exec.LookPath("cliclick")
	return &DesktopSimulator{useCliclick: err == nil, typeDelayMs: typeDelayMs}
}

func (s *DesktopSimulator) Available() error {
	if _, err := exec.LookPath("osascript"); err != nil {
		return fmt.Errorf("osascript not found; cannot simulate input")
	}
	return nil
}

func (s *DesktopSimulator) OpenNewTab() error {
	return s.keystroke("t")
}

func (s *DesktopSimulator) FocusAddressBar() error {
	return s.keystroke("l")
}

func (s *DesktopSimulator) TypeText(text string) error {
	if text == "" {
		return nil
	}

	if s.useCliclick {
		if err := runTool("cliclick", "-w", strconv.Itoa(max(s.typeDelayMs, 1)), "t:"+text); err == nil {
			return nil
		}
	}

	escaped := strings.ReplaceAll(text, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return runTool("osascript", "-e",
		fmt.Sprintf(`tell application "System Events" to keystroke "%s"`, escaped))
}

func (s *DesktopSimulator) PressEnter() error {
	if s.useCliclick {
		if err := runTool("cliclick", "kp:return"); err == nil {
			return nil
		}
	}
	return runTool("osascript", "-e", `tell application "System Events" to key code 36`)
}

// keystroke sends cmd+<key>, the macOS equivalent of the ctrl shortcuts used
// on the other platforms.
func (s *DesktopSimulator) keystroke(key string) error {
	err := runTool("osascript", "-e",
		fmt.Sprintf(`tell application "System Events" to keystroke "%s" using {command down}`, key))
	if err != nil {
		return err
	}
	// System Events needs a beat before the next event lands reliably.
	time.Sleep(50 * time.Millisecond)
	return nil
}

// CursorPosition reads the pointer location via cliclick.
func (s *DesktopSimulator) CursorPosition() (int, int, error) {
	if !s.useCliclick {
		return 0, 0, fmt.Errorf("cursor position requires cliclick (brew install cliclick)")
	}

	out, err := exec.Command("cliclick", "p").Output()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get mouse position: %w", err)
	}

	// Output is "x,y", possibly prefixed with descriptive text.
	raw := strings.TrimSpace(string(out))
	if idx := strings.LastIndex(raw, " "); idx >= 0 {
		raw = raw[idx+1:]
	}
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("unexpected cliclick output: %q", string(out))
	}
	x, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return 0, 0, fmt.Errorf("unexpected cliclick output: %q", string(out))
	}
	return x, y, nil
}

func runTool(name string, args ...string) error {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}
