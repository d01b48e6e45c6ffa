// Package discovery scans the system for installed applications a user might
// want in a profile.
package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/Andyucu/FavApp-Starter/internal/logging"
)

const peMIME = "application/vnd.microsoft.portable-executable"

// App is one discovered application.
type App struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Scanner finds installed applications by walking well-known install roots
// and, on Windows, reading the uninstall registry hives.
type Scanner struct {
	// MaxDepth limits directory recursion below each root.
	MaxDepth int
	// Exclude holds doublestar patterns matched against the slash-form path
	// relative to the scan root.
	Exclude []string
	// VerifyPE sniffs candidate files and drops ones that are not real
	// portable executables (catches renamed or truncated .exe files).
	VerifyPE bool

	log *logging.Logger
}

// New creates a scanner with the original app's defaults.
func New(log *logging.Logger) *Scanner {
	if log == nil {
		log = logging.NewNop()
	}
	return &Scanner{MaxDepth: 2, log: log}
}

// Scan returns every discovered application, deduplicated case-insensitively
// by path and sorted by name. Entries whose files no longer exist are dropped.
func (s *Scanner) Scan() []App {
	var apps []App
	for _, root := range installRoots() {
		apps = append(apps, s.ScanDir(root)...)
	}
	apps = append(apps, s.scanExtra()...)
	return dedupeAndSort(apps)
}

func dedupeAndSort(apps []App) []App {
	seen := make(map[string]struct{}, len(apps))
	unique := make([]App, 0, len(apps))
	for _, app := range apps {
		key := strings.ToLower(app.Path)
		if _, dup := seen[key]; dup {
			continue
		}
		if _, err := os.Stat(app.Path); err != nil {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, app)
	}

	sort.Slice(unique, func(i, j int) bool {
		return strings.ToLower(unique[i].Name) < strings.ToLower(unique[j].Name)
	})
	return unique
}

// ScanDir walks one root for executables, honoring MaxDepth and Exclude.
// Uninstaller binaries ("unins...") are skipped.
func (s *Scanner) ScanDir(root string) []App {
	if _, err := os.Stat(root); err != nil {
		return nil
	}

	var (
		mu   sync.Mutex
		apps []App
	)
	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return nil
		}
		depth := strings.Count(filepath.ToSlash(rel), "/")

		if d.IsDir() {
			if p != root && depth >= s.MaxDepth {
				return filepath.SkipDir
			}
			return nil
		}
		if s.excluded(rel) || !s.isCandidate(p, d) {
			return nil
		}

		name := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		mu.Lock()
		apps = append(apps, App{Name: name, Path: p})
		mu.Unlock()
		return nil
	})
	if err != nil {
		s.log.Warn("scan failed", zap.String("root", root), zap.Error(err))
	}
	return apps
}

func (s *Scanner) excluded(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, pattern := range s.Exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// isCandidate reports whether a directory entry looks like a launchable
// application binary.
func (s *Scanner) isCandidate(path string, d os.DirEntry) bool {
	base := strings.ToLower(filepath.Base(path))
	if strings.HasPrefix(base, "unins") {
		return false
	}
	if strings.HasSuffix(base, ".exe") {
		if s.VerifyPE {
			mtype, err := mimetype.DetectFile(path)
			return err == nil && mtype.Is(peMIME)
		}
		return true
	}
	return s.isNativeExecutable(path, d)
}
