// Package singleton implements the popup's toggle behavior through a
// pidfile: launching while an instance is alive terminates that instance
// instead of starting a second one.
package singleton

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
	"github.com/tartampluch/go-timezones/internal/config"
)

// Guard owns the pidfile for the lifetime of the process.
type Guard struct {
	path string
}

// DefaultPath places the pidfile in the user's runtime directory, falling
// back to the system temp dir.
func DefaultPath() string {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, config.PidFileName)
}

// New creates a guard for the given pidfile path.
func New(path string) *Guard {
	return &Guard{path: path}
}

// Path returns the pidfile location.
func (g *Guard) Path() string {
	return g.path
}

// Toggle implements the launcher contract. If the pidfile names a live
// process, that instance is terminated and toggled reports true: the
// caller should exit without opening a window. A stale or malformed
// pidfile is removed. Otherwise the current pid is written and toggled
// reports false.
func (g *Guard) Toggle() (toggled bool, err error) {
	log := slog.With(
		config.LogKeyComponent, config.CompSingleton,
		config.LogKeyPath, g.path,
	)

	if pid, ok := g.readPid(); ok {
		alive, _ := process.PidExists(int32(pid))
		if alive {
			if err := terminate(pid); err != nil {
				return false, fmt.Errorf("%s: %w", config.ErrTerminate, err)
			}
			_ = os.Remove(g.path)
			log.Info(config.MsgToggledOff, config.LogKeyPID, pid)
			return true, nil
		}
		log.Debug(config.MsgStalePidfile, config.LogKeyPID, pid)
		_ = os.Remove(g.path)
	}

	data := []byte(strconv.Itoa(os.Getpid()))
	if err := os.WriteFile(g.path, data, config.FilePermUserRW); err != nil {
		return false, fmt.Errorf("%s: %w", config.ErrPidfileWrite, err)
	}
	return false, nil
}

// Release removes the pidfile. Safe to call multiple times.
func (g *Guard) Release() {
	_ = os.Remove(g.path)
}

// readPid parses the pidfile, reporting false for absent or malformed
// content.
func (g *Guard) readPid() (int, bool) {
	data, err := os.ReadFile(g.path)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}

// terminate asks the existing instance to shut down gracefully.
func terminate(pid int) error {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return err
	}
	return p.Terminate()
}
