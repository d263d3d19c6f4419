//go:build linux

package input

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// DesktopSimulator drives Linux input via xdotool (X11) or ydotool (Wayland).
type DesktopSimulator struct {
	backend     string // "xdotool", "ydotool", or ""
	typeDelayMs int
}

// NewSimulator detects the available backend.
func NewSimulator(typeDelayMs int) *DesktopSimulator {
	s := &DesktopSimulator{typeDelayMs: typeDelayMs}
	if _, err := exec.LookPath("xdotool"); err == nil {
		s.backend = "xdotool"
	} else if _, err := exec.LookPath("ydotool"); err == nil {
		s.backend = "ydotool"
	}
	return s
}

func (s *DesktopSimulator) Available() error {
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return fmt.Errorf("no graphical session detected (DISPLAY and WAYLAND_DISPLAY are unset)")
	}
	if s.backend == "" {
		return fmt.Errorf("no desktop control backend available: install xdotool (X11) or ydotool (Wayland)")
	}
	return nil
}

func (s *DesktopSimulator) OpenNewTab() error {
	return s.hotkey("ctrl+t")
}

func (s *DesktopSimulator) FocusAddressBar() error {
	return s.hotkey("ctrl+l")
}

func (s *DesktopSimulator) TypeText(text string) error {
	if text == "" {
		return nil
	}
	delay := s.typeDelayMs
	if delay <= 0 {
		delay = 12
	}

	var cmd *exec.Cmd
	switch s.backend {
	case "xdotool":
		cmd = exec.Command("xdotool", "type", "--delay", strconv.Itoa(delay), text)
	case "ydotool":
		cmd = exec.Command("ydotool", "type", "--key-delay", strconv.Itoa(delay), text)
	default:
		return fmt.Errorf("no input backend")
	}

	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("type failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (s *DesktopSimulator) PressEnter() error {
	return s.hotkey("Return")
}

func (s *DesktopSimulator) hotkey(keys string) error {
	var cmd *exec.Cmd
	switch s.backend {
	case "xdotool":
		cmd = exec.Command("xdotool", "key", keys)
	case "ydotool":
		cmd = exec.Command("ydotool", "key", keys)
	default:
		return fmt.Errorf("no input backend")
	}

	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("key %q failed: %w: %s", keys, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// CursorPosition reads the pointer location. Only xdotool can report it;
// with ydotool the failsafe watcher treats the error as "unknown position".
func (s *DesktopSimulator) CursorPosition() (int, int, error) {
	if s.backend != "xdotool" {
		return 0, 0, fmt.Errorf("cursor position not supported with %s backend", s.backend)
	}

	out, err := exec.Command("xdotool", "getmouselocation", "--shell").Output()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get mouse position: %w", err)
	}

	x, y := -1, -1
	for _, line := range strings.Split(string(out), "\n") {
		if v, ok := strings.CutPrefix(line, "X="); ok {
			x, _ = strconv.Atoi(strings.TrimSpace(v))
		}
		if v, ok := strings.CutPrefix(line, "Y="); ok {
			y, _ = strconv.Atoi(strings.TrimSpace(v))
		}
	}
	if x < 0 || y < 0 {
		return 0, 0, fmt.Errorf("unexpected getmouselocation output: %q", string(out))
	}
	return x, y, nil
}
