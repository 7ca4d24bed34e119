// Package prefs loads and saves user preferences.
//
// Preferences live in a TOML file under the user config directory. The
// current values are explicit data handed to whoever needs them - there
// is no process-wide singleton. Components that must react to changes
// (a live preview, a theme switcher) subscribe to a Watcher owned by the
// composing layer.
package prefs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/errors"
)

// Preferences are the persisted user settings.
type Preferences struct {
	// Theme names the render theme (see pkg/render).
	Theme string `toml:"theme"`

	// Cloud defaults applied when flags don't override them.
	Cloud CloudPrefs `toml:"cloud"`

	// Arcs defaults.
	Arcs ArcsPrefs `toml:"arcs"`

	// Server settings for the preview server.
	Server ServerPrefs `toml:"server"`
}

// CloudPrefs are word-cloud defaults.
type CloudPrefs struct {
	MaxWords int     `toml:"max_words"`
	MaxWidth float64 `toml:"max_width"`
	Spacing  float64 `toml:"spacing"`
}

// ArcsPrefs are heatmap defaults.
type ArcsPrefs struct {
	Segments int `toml:"segments"`
	Bands    int `toml:"bands"`
}

// ServerPrefs configure the preview server and its optional backends.
type ServerPrefs struct {
	Addr      string `toml:"addr"`
	RedisAddr string `toml:"redis_addr"`
	MongoURI  string `toml:"mongo_uri"`
}

// Default returns the preferences used when no file exists.
func Default() Preferences {
	return Preferences{
		Theme: "parchment",
		Cloud: CloudPrefs{MaxWords: 60, MaxWidth: 800, Spacing: 8},
		Arcs:  ArcsPrefs{Segments: 20, Bands: 5},
		Server: ServerPrefs{
			Addr: "localhost:8787",
		},
	}
}

// DefaultPath returns the standard preferences file location
// (~/.config/quillpilot/config.toml).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "quillpilot", "config.toml"), nil
}

// Load reads preferences from path, filling missing fields with defaults.
// A missing file is not an error; it yields the defaults.
func Load(path string) (Preferences, error) {
	p := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return p, nil
	}
	if err != nil {
		return Preferences{}, fmt.Errorf("read preferences %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &p); err != nil {
		return Preferences{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse preferences %s", path)
	}
	if err := errors.ValidateThemeName(p.Theme); err != nil {
		return Preferences{}, err
	}
	return p, nil
}

// Save writes preferences to path, creating parent directories.
func Save(p Preferences, path string) error {
	if err := errors.ValidateThemeName(p.Theme); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(p); err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("write preferences %s: %w", path, err)
	}
	return nil
}

// =============================================================================
// Change notification
// =============================================================================

// Watcher notifies subscribers when preferences change. It replaces the
// broadcast-notification pattern of the original application with an
// explicit callback list owned by whoever composes the UI.
type Watcher struct {
	mu      sync.Mutex
	current Preferences
	subs    []func(Preferences)
}

// NewWatcher creates a watcher with the given initial preferences.
func NewWatcher(initial Preferences) *Watcher {
	return &Watcher{current: initial}
}

// Current returns the latest preferences.
func (w *Watcher) Current() Preferences {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Subscribe registers fn to be called on every update. Subscribers are
// invoked synchronously in registration order.
func (w *Watcher) Subscribe(fn func(Preferences)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.subs = append(w.subs, fn)
}

// Update replaces the current preferences and notifies subscribers.
func (w *Watcher) Update(p Preferences) {
	w.mu.Lock()
	w.current = p
	subs := make([]func(Preferences), len(w.subs))
	copy(subs, w.subs)
	w.mu.Unlock()

	for _, fn := range subs {
		fn(p)
	}
}
