package singleton_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-timezones/internal/singleton"
)

func pidfileIn(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "go-timezones.pid")
}

// TestToggle_FreshStart: no pidfile means we become the instance.
func TestToggle_FreshStart(t *testing.T) {
	g := singleton.New(pidfileIn(t))

	toggled, err := g.Toggle()
	require.NoError(t, err)
	assert.False(t, toggled)

	data, err := os.ReadFile(g.Path())
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(data), "Pidfile must name the current process")
}

// TestToggle_StalePidfile: a dead pid is cleaned up and we start normally.
func TestToggle_StalePidfile(t *testing.T) {
	path := pidfileIn(t)
	// PIDs are bounded well below this on every supported platform.
	require.NoError(t, os.WriteFile(path, []byte("999999999"), 0o600))

	g := singleton.New(path)
	toggled, err := g.Toggle()
	require.NoError(t, err)
	assert.False(t, toggled, "A dead instance must not count as running")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(data))
}

// TestToggle_MalformedPidfile: garbage content is treated as stale.
func TestToggle_MalformedPidfile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Not a number", "certainly-not-a-pid"},
		{"Negative", "-4"},
		{"Empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := pidfileIn(t)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			g := singleton.New(path)
			toggled, err := g.Toggle()
			require.NoError(t, err)
			assert.False(t, toggled)
		})
	}
}

// TestRelease removes the pidfile and tolerates repeat calls.
func TestRelease(t *testing.T) {
	g := singleton.New(pidfileIn(t))
	_, err := g.Toggle()
	require.NoError(t, err)

	g.Release()
	_, statErr := os.Stat(g.Path())
	assert.True(t, os.IsNotExist(statErr))

	g.Release() // second call must not panic or error
}

// TestDefaultPath prefers the runtime dir when available.
func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	assert.Equal(t, "/run/user/1000/go-timezones.pid", singleton.DefaultPath())

	t.Setenv("XDG_RUNTIME_DIR", "")
	assert.Equal(t, filepath.Join(os.TempDir(), "go-timezones.pid"), singleton.DefaultPath())
}
