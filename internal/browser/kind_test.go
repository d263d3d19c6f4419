package browser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		require.Equal(t, k, got)
	}

	for _, bad := range []string{"", "netscape", "Chrome", "chrome "} {
		_, err := ParseKind(bad)
		require.Error(t, err, "input %q", bad)
	}
}

func TestSupportsProfiles(t *testing.T) {
	require.True(t, KindChrome.SupportsProfiles())
	require.False(t, KindFirefox.SupportsProfiles())
	require.False(t, KindSafari.SupportsProfiles())
}
