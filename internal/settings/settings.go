// Package settings persists player preferences between runs.
//
// Settings are stored as YAML through gdata in the per-user data directory.
// A Manager without a gdata backend keeps settings in memory only.
package settings

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application name.
const AppName = "wordfall"

const (
	settingsObject   = "settings"
	settingsProperty = "player"
)

// Settings are the persisted player preferences.
type Settings struct {
	WordSpeed  float64 `yaml:"word_speed"`
	Pack       string  `yaml:"pack"`
	Difficulty string  `yaml:"difficulty"`
}

// Default returns settings for a first run.
func Default() Settings {
	return Settings{
		WordSpeed:  10,
		Pack:       "ru",
		Difficulty: "normal",
	}
}

// Open creates a gdata backend for AppName.
func Open() (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return nil, fmt.Errorf("settings: cannot open data directory: %w", err)
	}
	return m, nil
}

// Manager loads and saves Settings.
type Manager struct {
	data     *gdata.Manager // nil means in-memory only
	log      *log.Logger
	settings Settings
}

// NewManager creates a manager and loads saved settings. Load failures are
// logged and leave the defaults in place.
func NewManager(data *gdata.Manager, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Manager{data: data, log: logger, settings: Default()}
	if err := m.Load(); err != nil {
		m.log.Warn("using default settings", "err", err)
	}
	return m
}

// Load reads saved settings. A missing entry is not an error.
func (m *Manager) Load() error {
	m.settings = Default()
	if m.data == nil {
		return nil
	}
	if !m.data.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	raw, err := m.data.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("settings: failed to load: %w", err)
	}
	loaded := Default()
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("settings: failed to unmarshal: %w", err)
	}
	m.settings = loaded
	return nil
}

// Save writes the current settings. Without a backend it does nothing.
func (m *Manager) Save() error {
	if m.data == nil {
		return nil
	}
	raw, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("settings: failed to marshal: %w", err)
	}
	if err := m.data.SaveObjectProp(settingsObject, settingsProperty, raw); err != nil {
		return fmt.Errorf("settings: failed to save: %w", err)
	}
	m.log.Debug("settings saved", "word_speed", m.settings.WordSpeed, "pack", m.settings.Pack)
	return nil
}

// Get returns a copy of the current settings.
func (m *Manager) Get() Settings {
	return m.settings
}

// SetWordSpeed changes the word speed. Call Save to persist it.
func (m *Manager) SetWordSpeed(v float64) {
	m.settings.WordSpeed = v
}

// SetPack changes the last used pack.
func (m *Manager) SetPack(id string) {
	m.settings.Pack = id
}

// SetDifficulty changes the last used difficulty preset.
func (m *Manager) SetDifficulty(preset string) {
	m.settings.Difficulty = preset
}
