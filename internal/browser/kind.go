// Package browser knows how to identify, launch and enumerate profiles for
// the browsers the automation can drive. Launching is deliberately opaque:
// the named browser is brought up with a place to type, nothing more.
package browser

import "fmt"

// Kind identifies a supported browser.
type Kind string

const (
	KindChrome  Kind = "chrome"
	KindEdge    Kind = "edge"
	KindFirefox Kind = "firefox"
	KindBrave   Kind = "brave"
	KindOpera   Kind = "opera"
	KindSafari  Kind = "safari"
)

// Kinds lists every supported browser.
func Kinds() []Kind {
	return []Kind{KindChrome, KindEdge, KindFirefox, KindBrave, KindOpera, KindSafari}
}

// ParseKind validates a browser name from the API or CLI.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindChrome, KindEdge, KindFirefox, KindBrave, KindOpera, KindSafari:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown browser %q", s)
}

// SupportsProfiles reports whether profile-directory launching applies.
// Only Chrome profile enumeration is implemented.
func (k Kind) SupportsProfiles() bool {
	return k == KindChrome
}
