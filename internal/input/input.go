// Package input simulates keyboard and mouse activity through whatever
// OS-level tool is available. Input is blind: there is no feedback about
// where keystrokes land beyond the browser being frontmost.
package input

// Simulator is the input capability the run controller drives. All keyboard
// methods operate on whatever window currently has focus.
type Simulator interface {
	// Available reports whether a usable backend and graphical session
	// exist. A non-nil error is fatal for any run.
	Available() error
	// OpenNewTab sends the browser's new-tab shortcut.
	OpenNewTab() error
	// FocusAddressBar sends the browser's focus-address-bar shortcut.
	FocusAddressBar() error
	// TypeText types the text with the configured per-keystroke delay.
	TypeText(text string) error
	// PressEnter submits whatever was typed.
	PressEnter() error
	// CursorPosition returns the pointer location in screen coordinates.
	CursorPosition() (x, y int, err error)
}

// CursorSource is the read-only pointer position used for failsafe
// detection. Satisfied by every Simulator.
type CursorSource interface {
	CursorPosition() (x, y int, err error)
}
