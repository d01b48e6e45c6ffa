// Package launch starts profile applications as detached child processes.
//
// Launches are fire-and-forget: a call never waits past process creation and
// the child's stdio is discarded. Batch launches run strictly in input order,
// continue past individual failures, and always return one result per spec.
package launch

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Andyucu/FavApp-Starter/internal/logging"
)

// Launch failures, one sentinel per taxonomy kind. Results wrap these so
// callers classify with errors.Is.
var (
	ErrEmptyPath       = errors.New("no path provided")
	ErrNotFound        = errors.New("file not found")
	ErrNotAFile        = errors.New("path is not a regular file")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrPermission      = errors.New("permission denied")
	ErrSpawn           = errors.New("failed to launch")
	ErrUnexpected      = errors.New("unexpected launch error")
)

// launchable is the extension allow-list Validate checks against.
var launchable = map[string]struct{}{
	".exe": {},
	".bat": {},
	".cmd": {},
	".lnk": {},
	".msi": {},
	".msc": {},
}

// Spec describes one application to launch. The orchestrator only reads it.
type Spec struct {
	Name       string // display label, non-authoritative
	Path       string // executable or shortcut path
	Arguments  string // raw, appended verbatim to the invocation
	WorkingDir string // empty means "directory containing Path"
}

// Result is the outcome of one launch attempt. Err is nil iff Success.
type Result struct {
	Name    string
	Success bool
	Err     error
}

// ProgressFunc is invoked synchronously with 1-based progress strictly
// before each launch attempt.
type ProgressFunc func(current, total int, name string)

// Launcher orchestrates launches. It holds no state between calls; the only
// cross-call side effect is the spawned processes themselves.
type Launcher struct {
	log *logging.Logger
}

// New creates a launcher. A nil logger is replaced with a no-op one.
func New(log *logging.Logger) *Launcher {
	if log == nil {
		log = logging.NewNop()
	}
	return &Launcher{log: log}
}

// Validate reports whether path points at a launchable file. Advisory only:
// Single re-checks existence itself.
func (l *Launcher) Validate(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotAFile, path)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := launchable[ext]; !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}
	return nil
}

// Single launches one application detached from this process. It returns
// once the child is created; the child is never waited on or monitored.
func (l *Launcher) Single(path, arguments, workingDir string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	// Quote the executable so paths with spaces survive shell parsing; the
	// argument string is appended untouched.
	invocation := `"` + path + `"`
	if arguments != "" {
		invocation += " " + arguments
	}

	dir := workingDir
	if dir == "" || !isDir(dir) {
		dir = filepath.Dir(path)
	}

	if err := spawn(invocation, dir); err != nil {
		return classify(path, err)
	}
	l.log.Debug("launched", zap.String("path", path), zap.String("dir", dir))
	return nil
}

// Multiple launches every spec in order, reporting progress before each
// attempt and pausing delay between consecutive attempts. A failed launch
// never aborts the batch; the returned slice always has len(specs) entries
// in input order.
func (l *Launcher) Multiple(specs []Spec, delay time.Duration, onProgress ProgressFunc) []Result {
	results := make([]Result, 0, len(specs))
	total := len(specs)

	for i, spec := range specs {
		if onProgress != nil {
			onProgress(i+1, total, spec.Name)
		}

		err := l.Single(spec.Path, spec.Arguments, spec.WorkingDir)
		if err != nil {
			l.log.Warn("launch failed",
				zap.String("name", spec.Name),
				zap.String("path", spec.Path),
				zap.Error(err))
		}
		results = append(results, Result{
			Name:    spec.Name,
			Success: err == nil,
			Err:     err,
		})

		if delay > 0 && i < total-1 {
			time.Sleep(delay)
		}
	}
	return results
}

// classify maps a spawn-time error onto the launch taxonomy.
func classify(path string, err error) error {
	var pathErr *os.PathError
	var execErr *exec.Error
	switch {
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %s", ErrPermission, path)
	case errors.Is(err, os.ErrNotExist), errors.As(err, &pathErr), errors.As(err, &execErr):
		return fmt.Errorf("%w: %v", ErrSpawn, err)
	default:
		return fmt.Errorf("%w: %v", ErrUnexpected, err)
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
