//go:build windows

package input

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// DesktopSimulator drives Windows input via PowerShell and .NET SendKeys.
type DesktopSimulator struct {
	typeDelayMs int
}

// NewSimulator returns the Windows simulator.
func NewSimulator(typeDelayMs int) *DesktopSimulator {
	return &DesktopSimulator{typeDelayMs: typeDelayMs}
}

func (s *DesktopSimulator) Available() error {
	if _, err := exec.LookPath("powershell"); err != nil {
		return fmt.Errorf("powershell not found; cannot simulate input")
	}
	return nil
}

func (s *DesktopSimulator) OpenNewTab() error {
	return s.sendKeys("^t")
}

func (s *DesktopSimulator) FocusAddressBar() error {
	return s.sendKeys("^l")
}

func (s *DesktopSimulator) TypeText(text string) error {
	if text == "" {
		return nil
	}
	delay := s.typeDelayMs
	if delay <= 0 {
		delay = 12
	}

	// Send one character at a time so the per-keystroke delay applies, the
	// way a human typing into the address bar would look.
	script := fmt.Sprintf(`
Add-Type -AssemblyName System.Windows.Forms
foreach ($ch in ([char[]]%s)) {
    [System.Windows.Forms.SendKeys]::SendWait([Regex]::Escape([string]$ch))
    Start-Sleep -Milliseconds %d
}
`, psQuote(text), delay)
	return s.run(script)
}

func (s *DesktopSimulator) PressEnter() error {
	return s.sendKeys("{ENTER}")
}

func (s *DesktopSimulator) sendKeys(keys string) error {
	script := fmt.Sprintf(`
Add-Type -AssemblyName System.Windows.Forms
[System.Windows.Forms.SendKeys]::SendWait(%s)
`, psQuote(keys))
	return s.run(script)
}

// CursorPosition reads the pointer location via .NET.
func (s *DesktopSimulator) CursorPosition() (int, int, error) {
	out, err := exec.Command("powershell", "-NoProfile", "-Command", `
Add-Type -AssemblyName System.Windows.Forms
$p = [System.Windows.Forms.Cursor]::Position
Write-Output "$($p.X),$($p.Y)"
`).Output()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get mouse position: %w", err)
	}

	parts := strings.Split(strings.TrimSpace(string(out)), ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("unexpected cursor output: %q", string(out))
	}
	x, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return 0, 0, fmt.Errorf("unexpected cursor output: %q", string(out))
	}
	return x, y, nil
}

func (s *DesktopSimulator) run(script string) error {
	out, err := exec.Command("powershell", "-NoProfile", "-Command", script).CombinedOutput()
	if err != nil {
		return fmt.Errorf("powershell input failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// psQuote single-quotes a string for PowerShell.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
