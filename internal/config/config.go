package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/zhubert/msgcodec/internal/codec"
	"github.com/zhubert/msgcodec/internal/errors"
	"github.com/zhubert/msgcodec/internal/theme"
)

// Default timings, in milliseconds unless noted.
const (
	DefaultThemePollMs     = 2000
	DefaultFocusDebounceMs = 150
	DefaultScrollDelayMs   = 100
	DefaultScrollMargin    = 1
)

// Config holds the application configuration
type Config struct {
	Theme           string `json:"theme,omitempty"`             // auto, light or dark
	Transform       string `json:"transform,omitempty"`         // Name of the codec transform
	ThemePollMs     int    `json:"theme_poll_ms,omitempty"`     // OS appearance poll interval
	FocusDebounceMs int    `json:"focus_debounce_ms,omitempty"` // Delay before a row that lost focus is recolored
	ScrollDelayMs   int    `json:"scroll_delay_ms,omitempty"`   // Delay before scrolling a changed row into view
	ScrollMargin    int    `json:"scroll_margin,omitempty"`     // Lines kept below a row scrolled into view
	Notify          bool   `json:"notify,omitempty"`            // Desktop notification when the OS appearance flips

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".msgcodec"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Default returns a config populated with defaults that is not bound to a file.
func Default() *Config {
	cfg := &Config{}
	cfg.ensureInitialized()
	return cfg
}

// Load reads the config from disk, or returns defaults if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, errors.ConfigLoadFailed("~/.msgcodec", err)
	}
	return LoadFile(path)
}

// LoadFile reads the config at path, or returns defaults bound to path if the
// file doesn't exist
func LoadFile(path string) (*Config, error) {
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.ensureInitialized()
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	// Zero values mean "use the default"; fill them before validating
	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureInitialized replaces zero values with defaults.
//
// Thread-safety: only called while the Config is not yet shared, from Load()
// and Default().
func (c *Config) ensureInitialized() {
	if c.Theme == "" {
		c.Theme = string(theme.SettingAuto)
	}
	if c.Transform == "" {
		c.Transform = codec.DefaultTransform
	}
	if c.ThemePollMs == 0 {
		c.ThemePollMs = DefaultThemePollMs
	}
	if c.FocusDebounceMs == 0 {
		c.FocusDebounceMs = DefaultFocusDebounceMs
	}
	if c.ScrollDelayMs == 0 {
		c.ScrollDelayMs = DefaultScrollDelayMs
	}
	if c.ScrollMargin == 0 {
		c.ScrollMargin = DefaultScrollMargin
	}
}

// Validate checks that the config values are usable.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, err := theme.ParseSetting(c.Theme); err != nil {
		return errors.ConfigInvalid(err.Error())
	}
	if _, err := codec.Lookup(c.Transform); err != nil {
		return errors.ConfigInvalid(err.Error())
	}
	if c.ThemePollMs < 100 {
		return errors.ConfigInvalid(fmt.Sprintf("theme_poll_ms must be at least 100, got %d", c.ThemePollMs))
	}
	if c.FocusDebounceMs < 0 {
		return errors.ConfigInvalid(fmt.Sprintf("focus_debounce_ms must not be negative, got %d", c.FocusDebounceMs))
	}
	if c.ScrollDelayMs < 0 {
		return errors.ConfigInvalid(fmt.Sprintf("scroll_delay_ms must not be negative, got %d", c.ScrollDelayMs))
	}
	if c.ScrollMargin < 0 {
		return errors.ConfigInvalid(fmt.Sprintf("scroll_margin must not be negative, got %d", c.ScrollMargin))
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return errors.ConfigSaveFailed("", fmt.Errorf("config is not bound to a file"))
	}

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// FilePath returns the file the config is loaded from and saved to
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// SetFilePath rebinds the config to a different file
func (c *Config) SetFilePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filePath = path
}

// GetTheme returns the configured theme setting
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the theme setting
func (c *Config) SetTheme(setting string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = setting
}

// GetTransform returns the configured transform name
func (c *Config) GetTransform() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Transform
}

// SetTransform sets the transform name
func (c *Config) SetTransform(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Transform = name
}

// ThemePollInterval returns the OS appearance poll interval
func (c *Config) ThemePollInterval() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.ThemePollMs) * time.Millisecond
}

// FocusDebounce returns the delay before a row that lost focus is recolored
func (c *Config) FocusDebounce() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.FocusDebounceMs) * time.Millisecond
}

// ScrollDelay returns the delay before a changed row is scrolled into view
func (c *Config) ScrollDelay() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.ScrollDelayMs) * time.Millisecond
}

// GetScrollMargin returns the number of lines kept below a row scrolled into view
func (c *Config) GetScrollMargin() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ScrollMargin
}

// GetNotify reports whether appearance changes send a desktop notification
func (c *Config) GetNotify() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Notify
}

// Keys returns the settable config keys in sorted order
func Keys() []string {
	keys := []string{"theme", "transform", "theme_poll_ms", "focus_debounce_ms", "scroll_delay_ms", "scroll_margin", "notify"}
	sort.Strings(keys)
	return keys
}

// Get returns the string form of a config key
func (c *Config) Get(key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch key {
	case "theme":
		return c.Theme, nil
	case "transform":
		return c.Transform, nil
	case "theme_poll_ms":
		return strconv.Itoa(c.ThemePollMs), nil
	case "focus_debounce_ms":
		return strconv.Itoa(c.FocusDebounceMs), nil
	case "scroll_delay_ms":
		return strconv.Itoa(c.ScrollDelayMs), nil
	case "scroll_margin":
		return strconv.Itoa(c.ScrollMargin), nil
	case "notify":
		return strconv.FormatBool(c.Notify), nil
	}
	return "", errors.ConfigUnknownKey(key)
}

// Set parses value into the named key and validates the result. On failure
// the previous value is restored.
func (c *Config) Set(key, value string) error {
	c.mu.Lock()
	prev := *c.snapshot()
	if err := c.setLocked(key, value); err != nil {
		c.mu.Unlock()
		return err
	}
	c.mu.Unlock()

	if err := c.Validate(); err != nil {
		c.mu.Lock()
		c.restore(prev)
		c.mu.Unlock()
		return err
	}
	return nil
}

func (c *Config) setLocked(key, value string) error {
	intValue := func() (int, error) {
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, errors.ConfigInvalid(fmt.Sprintf("%s must be an integer, got %q", key, value))
		}
		return n, nil
	}

	switch key {
	case "theme":
		c.Theme = value
	case "transform":
		c.Transform = value
	case "theme_poll_ms", "focus_debounce_ms", "scroll_delay_ms", "scroll_margin":
		n, err := intValue()
		if err != nil {
			return err
		}
		switch key {
		case "theme_poll_ms":
			c.ThemePollMs = n
		case "focus_debounce_ms":
			c.FocusDebounceMs = n
		case "scroll_delay_ms":
			c.ScrollDelayMs = n
		case "scroll_margin":
			c.ScrollMargin = n
		}
	case "notify":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.ConfigInvalid(fmt.Sprintf("notify must be true or false, got %q", value))
		}
		c.Notify = b
	default:
		return errors.ConfigUnknownKey(key)
	}
	return nil
}

// values is the serializable part of Config, used to roll back failed edits
type values struct {
	Theme           string
	Transform       string
	ThemePollMs     int
	FocusDebounceMs int
	ScrollDelayMs   int
	ScrollMargin    int
	Notify          bool
}

func (c *Config) snapshot() *values {
	return &values{c.Theme, c.Transform, c.ThemePollMs, c.FocusDebounceMs, c.ScrollDelayMs, c.ScrollMargin, c.Notify}
}

func (c *Config) restore(v values) {
	c.Theme, c.Transform = v.Theme, v.Transform
	c.ThemePollMs, c.FocusDebounceMs = v.ThemePollMs, v.FocusDebounceMs
	c.ScrollDelayMs, c.ScrollMargin = v.ScrollDelayMs, v.ScrollMargin
	c.Notify = v.Notify
}
