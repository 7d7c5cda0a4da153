// Package settings persists user preferences between runs.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"ballplay/internal/sim"
)

// Settings are the preferences remembered across runs.
type Settings struct {
	Variant      sim.Variant `yaml:"variant"`
	Debug        bool        `yaml:"debug"`
	AudioEnabled bool        `yaml:"audioEnabled"`
	Volume       float64     `yaml:"volume"` // 0.0 ~ 1.0
}

// DefaultSettings returns the preferences used on first launch.
func DefaultSettings() *Settings {
	return &Settings{
		Variant:      sim.VariantDrag,
		Debug:        false,
		AudioEnabled: false,
		Volume:       0.5,
	}
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Manager loads and saves Settings through gdata. A nil gdata manager keeps
// settings in memory only.
type Manager struct {
	store    *gdata.Manager
	settings *Settings
}

// Open creates a gdata store for appName and loads any saved settings. A
// store that cannot be opened is logged and the manager runs memory-only.
func Open(appName string) *Manager {
	store, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Settings] Storage unavailable: %v (settings will not persist)", err)
		store = nil
	}
	return NewManager(store)
}

// NewManager wraps store and loads saved settings, falling back to defaults
// when loading fails.
func NewManager(store *gdata.Manager) *Manager {
	m := &Manager{store: store, settings: DefaultSettings()}
	if err := m.Load(); err != nil {
		log.Printf("[Settings] Warning: %v (using defaults)", err)
	}
	return m
}

// Load replaces the in-memory settings with the saved copy, if any.
func (m *Manager) Load() error {
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		m.settings = DefaultSettings()
		return nil
	}
	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		m.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		m.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.Volume = clampVolume(loaded.Volume)
	m.settings = loaded
	return nil
}

// Save writes the current settings. It is a no-op without a store.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	log.Printf("[Settings] Saved")
	return nil
}

// Settings returns the live settings.
func (m *Manager) Settings() *Settings {
	return m.settings
}

// Persistent reports whether settings survive a restart.
func (m *Manager) Persistent() bool {
	return m.store != nil
}

func (m *Manager) SetVariant(v sim.Variant) {
	if v.Valid() {
		m.settings.Variant = v
	}
}

func (m *Manager) SetDebug(on bool) {
	m.settings.Debug = on
}

func (m *Manager) SetAudioEnabled(on bool) {
	m.settings.AudioEnabled = on
}

// SetVolume stores volume clamped to [0, 1].
func (m *Manager) SetVolume(volume float64) {
	m.settings.Volume = clampVolume(volume)
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
