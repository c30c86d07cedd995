package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MegaCode111REAL/mancala-web/game/engine"
)

var (
	ErrPresetNotFound = errors.New("preset not found")
	ErrInvalidPreset  = errors.New("invalid preset")
)

// Manager handles board preset loading and caching.
type Manager struct {
	configDir     string
	defaultPreset *engine.BoardConfig
	presets       map[string]*engine.BoardConfig
	mu            sync.RWMutex
}

// NewManager creates a preset manager rooted at configDir.
func NewManager(configDir string) (*Manager, error) {
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("config directory does not exist: %s", configDir)
	}

	m := &Manager{
		configDir: configDir,
		presets:   make(map[string]*engine.BoardConfig),
	}

	m.loadDefaultPreset()
	return m, nil
}

// Load returns the preset with the given name, reading it from disk on first
// use.
func (m *Manager) Load(name string) (*engine.BoardConfig, error) {
	m.mu.RLock()
	if preset, exists := m.presets[name]; exists {
		m.mu.RUnlock()
		return preset, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if preset, exists := m.presets[name]; exists {
		return preset, nil
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}

	data, err := os.ReadFile(filepath.Join(m.configDir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPresetNotFound
		}
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}

	var preset engine.BoardConfig
	if err := json.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("failed to parse preset: %w", err)
	}

	if err := engine.ValidateBoardConfig(&preset); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPreset, err)
	}

	m.presets[name] = &preset
	return &preset, nil
}

// List returns every valid preset in the config directory, skipping files
// that fail to parse or validate.
func (m *Manager) List() ([]*engine.BoardConfig, error) {
	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	var presets []*engine.BoardConfig
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".json")
		preset, err := m.Load(name)
		if err != nil {
			continue
		}
		presets = append(presets, preset)
	}

	return presets, nil
}

// Default returns the default board variant.
func (m *Manager) Default() *engine.BoardConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultPreset
}

// loadDefaultPreset selects "classic" from disk when available, otherwise
// the built-in classic board.
func (m *Manager) loadDefaultPreset() {
	preset, err := m.Load("classic")
	if err != nil {
		m.mu.Lock()
		m.defaultPreset = engine.DefaultConfig()
		m.mu.Unlock()
		return
	}

	m.mu.Lock()
	m.defaultPreset = preset
	m.mu.Unlock()
}
