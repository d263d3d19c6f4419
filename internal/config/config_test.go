package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := Default()
	require.Equal(t, 5000, c.Port)
	require.Equal(t, 100, c.Automation.PollIntervalMs)
	require.True(t, c.Failsafe.Enabled)
	require.Equal(t, "top-left", c.Failsafe.Corner)
}

func TestLoadFromBytesExpandsEnv(t *testing.T) {
	t.Setenv("SEARCHBOT_TEST_PORT", "8123")

	c, err := LoadFromBytes([]byte("port: ${SEARCHBOT_TEST_PORT}\nfailsafe:\n  corner: bottom-right\n"))
	require.NoError(t, err)
	require.Equal(t, 8123, c.Port)
	require.Equal(t, "bottom-right", c.Failsafe.Corner)
	// Untouched fields keep their defaults.
	require.Equal(t, 12, c.Automation.TypeDelayMs)
}

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	c, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), c)
}

func TestLoadFileOverKeepsBaseValues(t *testing.T) {
	base := Default()
	base.Port = 9000
	base.Failsafe.Corner = "bottom-right"

	path := filepath.Join(t.TempDir(), "searchbot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("host: 127.0.0.1\n"), 0644))

	c, err := LoadFileOver(base, path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", c.Host)
	// Keys absent from the file keep the base's values, not the defaults.
	require.Equal(t, 9000, c.Port)
	require.Equal(t, "bottom-right", c.Failsafe.Corner)
}

func TestLoadFileOverMissingFileReturnsBase(t *testing.T) {
	base := Default()
	base.Port = 9000

	c, err := LoadFileOver(base, filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, base, c)
}

func TestLoadFileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "searchbot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("host: 127.0.0.1\nschedule:\n  spec: \"*/5 * * * *\"\n"), 0644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", c.Host)
	require.Equal(t, "*/5 * * * *", c.Schedule.Spec)
}
