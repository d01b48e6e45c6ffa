// Package profile persists named launch profiles to a config.json file.
//
// The on-disk layout matches the original desktop app: a top-level active
// profile name, a theme preference, and a map of profiles each holding an
// ordered list of app entries.
package profile

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Andyucu/FavApp-Starter/internal/logging"
)

// DefaultProfileName is created whenever the store would otherwise be empty.
const DefaultProfileName = "Default"

// App is one launchable entry inside a profile.
type App struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	Path       string `json:"path"`
	Arguments  string `json:"arguments,omitempty"`
	WorkingDir string `json:"working_dir,omitempty"`
}

// Profile is an ordered collection of apps launched together.
type Profile struct {
	Apps []App `json:"apps"`
}

type fileConfig struct {
	ActiveProfile string              `json:"active_profile"`
	Theme         string              `json:"theme"`
	Profiles      map[string]*Profile `json:"profiles"`
}

// Store reads and writes the profile configuration file. Mutating methods
// persist immediately, mirroring the original app's save-on-change behavior.
// Safe for concurrent use.
type Store struct {
	path string
	log  *logging.Logger

	mu  sync.Mutex
	cfg *fileConfig
}

// Open loads the store at path, falling back to defaults when the file is
// missing or unreadable. A corrupt file is logged and replaced on next save.
func Open(path string, log *logging.Logger) *Store {
	if log == nil {
		log = logging.NewNop()
	}
	s := &Store{path: path, log: log}
	s.cfg = s.load()
	return s
}

func defaultConfig() *fileConfig {
	return &fileConfig{
		ActiveProfile: DefaultProfileName,
		Theme:         "dark",
		Profiles: map[string]*Profile{
			DefaultProfileName: {Apps: []App{}},
		},
	}
}

func (s *Store) load() *fileConfig {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return defaultConfig()
	}
	var cfg fileConfig
	if err := sonic.Unmarshal(data, &cfg); err != nil {
		s.log.Warn("config file unreadable, using defaults",
			zap.String("path", s.path), zap.Error(err))
		return defaultConfig()
	}
	repair(&cfg)
	return &cfg
}

// repair fills in anything a hand-edited or older config file is missing.
func repair(cfg *fileConfig) {
	if cfg.Theme != "dark" && cfg.Theme != "light" {
		cfg.Theme = "dark"
	}
	if cfg.Profiles == nil {
		cfg.Profiles = map[string]*Profile{}
	}
	for name, p := range cfg.Profiles {
		if p == nil {
			cfg.Profiles[name] = &Profile{Apps: []App{}}
		}
	}
	if len(cfg.Profiles) == 0 {
		cfg.Profiles[DefaultProfileName] = &Profile{Apps: []App{}}
	}
	if _, ok := cfg.Profiles[cfg.ActiveProfile]; !ok {
		cfg.ActiveProfile = sortedNames(cfg.Profiles)[0]
	}
}

// Save writes the current configuration to disk.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

func (s *Store) save() error {
	data, err := sonic.MarshalIndent(s.cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// saveOrLog persists after a mutation; failures are logged, not returned,
// because the in-memory state is already updated.
func (s *Store) saveOrLog() {
	if err := s.save(); err != nil {
		s.log.Error("failed to persist config", zap.Error(err))
	}
}

// Profiles returns all profile names, sorted.
func (s *Store) Profiles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedNames(s.cfg.Profiles)
}

// ActiveProfile returns the currently active profile name.
func (s *Store) ActiveProfile() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.ActiveProfile
}

// SetActiveProfile switches the active profile. Reports false for unknown names.
func (s *Store) SetActiveProfile(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cfg.Profiles[name]; !ok {
		return false
	}
	s.cfg.ActiveProfile = name
	s.saveOrLog()
	return true
}

// AddProfile creates an empty profile. Reports false for empty or taken names.
func (s *Store) AddProfile(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if name == "" {
		return false
	}
	if _, ok := s.cfg.Profiles[name]; ok {
		return false
	}
	s.cfg.Profiles[name] = &Profile{Apps: []App{}}
	s.saveOrLog()
	return true
}

// DeleteProfile removes a profile. The last remaining profile cannot be
// deleted; deleting the active one switches to another.
func (s *Store) DeleteProfile(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.cfg.Profiles) <= 1 {
		return false
	}
	if _, ok := s.cfg.Profiles[name]; !ok {
		return false
	}
	delete(s.cfg.Profiles, name)
	if s.cfg.ActiveProfile == name {
		s.cfg.ActiveProfile = sortedNames(s.cfg.Profiles)[0]
	}
	s.saveOrLog()
	return true
}

// Apps returns a copy of a profile's app list. An empty profileName means
// the active profile.
func (s *Store) Apps(profileName string) []App {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.profileLocked(profileName)
	if p == nil {
		return nil
	}
	apps := make([]App, len(p.Apps))
	copy(apps, p.Apps)
	return apps
}

// AddApp appends an app to a profile, assigning an ID when absent. Apps are
// deduplicated by path; reports false on duplicates or unknown profiles.
func (s *Store) AddApp(profileName string, app App) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.profileLocked(profileName)
	if p == nil || app.Path == "" {
		return false
	}
	for _, existing := range p.Apps {
		if strings.EqualFold(existing.Path, app.Path) {
			return false
		}
	}
	if app.ID == "" {
		app.ID = uuid.New().String()
	}
	p.Apps = append(p.Apps, app)
	s.saveOrLog()
	return true
}

// RemoveApp deletes the app at index from a profile.
func (s *Store) RemoveApp(profileName string, index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.profileLocked(profileName)
	if p == nil || index < 0 || index >= len(p.Apps) {
		return false
	}
	p.Apps = append(p.Apps[:index], p.Apps[index+1:]...)
	s.saveOrLog()
	return true
}

// Theme returns the stored theme preference, "dark" or "light".
func (s *Store) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Theme
}

// SetTheme stores a theme preference; anything but "dark"/"light" is ignored.
func (s *Store) SetTheme(theme string) {
	if theme != "dark" && theme != "light" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Theme = theme
	s.saveOrLog()
}

// ToggleTheme flips between dark and light and returns the new value.
func (s *Store) ToggleTheme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cfg.Theme == "dark" {
		s.cfg.Theme = "light"
	} else {
		s.cfg.Theme = "dark"
	}
	s.saveOrLog()
	return s.cfg.Theme
}

func (s *Store) profileLocked(name string) *Profile {
	if name == "" {
		name = s.cfg.ActiveProfile
	}
	return s.cfg.Profiles[name]
}

func sortedNames(profiles map[string]*Profile) []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
