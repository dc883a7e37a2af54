package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/zhubert/msgcodec/internal/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.GetTheme() != "auto" {
		t.Errorf("Theme = %q, want auto", cfg.GetTheme())
	}
	if cfg.GetTransform() != "reverse" {
		t.Errorf("Transform = %q, want reverse", cfg.GetTransform())
	}
	if cfg.ThemePollInterval() != 2*time.Second {
		t.Errorf("ThemePollInterval = %v, want 2s", cfg.ThemePollInterval())
	}
	if cfg.FocusDebounce() != 150*time.Millisecond {
		t.Errorf("FocusDebounce = %v, want 150ms", cfg.FocusDebounce())
	}
	if cfg.ScrollDelay() != 100*time.Millisecond {
		t.Errorf("ScrollDelay = %v, want 100ms", cfg.ScrollDelay())
	}
	if cfg.GetScrollMargin() != 1 {
		t.Errorf("ScrollMargin = %d, want 1", cfg.GetScrollMargin())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_NewConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.GetTransform() != "reverse" {
		t.Errorf("Transform = %q, want default", cfg.GetTransform())
	}
	if filepath.Base(cfg.FilePath()) != "config.json" {
		t.Errorf("FilePath = %q", cfg.FilePath())
	}
}

func TestLoad_ExistingConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	dir := filepath.Join(tmpDir, ".msgcodec")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configData := `{
		"theme": "dark",
		"transform": "rot13",
		"focus_debounce_ms": 250
	}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(configData), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.GetTheme() != "dark" {
		t.Errorf("Theme = %q, want dark", cfg.GetTheme())
	}
	if cfg.GetTransform() != "rot13" {
		t.Errorf("Transform = %q, want rot13", cfg.GetTransform())
	}
	if cfg.FocusDebounce() != 250*time.Millisecond {
		t.Errorf("FocusDebounce = %v, want 250ms", cfg.FocusDebounce())
	}
	// Unset values fall back to defaults
	if cfg.ThemePollInterval() != 2*time.Second {
		t.Errorf("ThemePollInterval = %v, want 2s", cfg.ThemePollInterval())
	}
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("invalid json"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadFile(path)
	if err == nil {
		t.Fatal("LoadFile() should fail with invalid JSON")
	}
	if !errors.Is(err, errors.KindConfig) {
		t.Errorf("expected KindConfig, got %v", errors.GetKind(err))
	}
}

func TestLoadFile_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown theme", `{"theme": "sepia"}`},
		{"unknown transform", `{"transform": "rot47"}`},
		{"poll too fast", `{"theme_poll_ms": 5}`},
		{"negative debounce", `{"focus_debounce_ms": -1}`},
		{"negative margin", `{"scroll_margin": -3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatalf("Failed to write config file: %v", err)
			}
			_, err := LoadFile(path)
			if !errors.Is(err, errors.KindInvalid) {
				t.Errorf("LoadFile() error = %v, want KindInvalid", err)
			}
		})
	}
}

func TestConfig_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.SetFilePath(path)
	cfg.SetTheme("light")
	cfg.SetTransform("base64")

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Failed to unmarshal config: %v", err)
	}
	if raw["transform"] != "base64" {
		t.Errorf("saved transform = %v", raw["transform"])
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if loaded.GetTheme() != "light" || loaded.GetTransform() != "base64" {
		t.Errorf("loaded theme=%q transform=%q", loaded.GetTheme(), loaded.GetTransform())
	}
}

func TestConfig_SaveUnbound(t *testing.T) {
	err := Default().Save()
	if !errors.Is(err, errors.KindConfig) {
		t.Errorf("Save() on unbound config = %v, want KindConfig", err)
	}
}

func TestConfig_SaveError(t *testing.T) {
	cfg := Default()
	cfg.SetFilePath("/nonexistent/\x00/config.json")

	if err := cfg.Save(); err == nil {
		t.Error("Save() should fail for an unusable path")
	}
}

func TestConfig_GetSet(t *testing.T) {
	cfg := Default()

	tests := []struct {
		key, value string
	}{
		{"theme", "dark"},
		{"transform", "rot13"},
		{"theme_poll_ms", "5000"},
		{"focus_debounce_ms", "200"},
		{"scroll_delay_ms", "50"},
		{"scroll_margin", "2"},
		{"notify", "true"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if err := cfg.Set(tt.key, tt.value); err != nil {
				t.Fatalf("Set(%q, %q) error: %v", tt.key, tt.value, err)
			}
			got, err := cfg.Get(tt.key)
			if err != nil {
				t.Fatalf("Get(%q) error: %v", tt.key, err)
			}
			if got != tt.value {
				t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.value)
			}
		})
	}
}

func TestConfig_SetRejectsAndRestores(t *testing.T) {
	cfg := Default()

	if err := cfg.Set("theme", "sepia"); err == nil {
		t.Error("Set should reject an unknown theme")
	}
	if cfg.GetTheme() != "auto" {
		t.Errorf("Theme = %q, want auto after rejected Set", cfg.GetTheme())
	}

	if err := cfg.Set("theme_poll_ms", "soon"); !errors.Is(err, errors.KindInvalid) {
		t.Errorf("non-integer Set error = %v, want KindInvalid", err)
	}

	if err := cfg.Set("notify", "sometimes"); !errors.Is(err, errors.KindInvalid) {
		t.Errorf("non-bool notify error = %v, want KindInvalid", err)
	}
	if cfg.GetNotify() {
		t.Error("Notify should stay off after rejected Set")
	}

	if err := cfg.Set("colour", "red"); !errors.Is(err, errors.KindNotFound) {
		t.Errorf("unknown key Set error = %v, want KindNotFound", err)
	}
	if _, err := cfg.Get("colour"); !errors.Is(err, errors.KindNotFound) {
		t.Errorf("unknown key Get error = %v, want KindNotFound", err)
	}
}

func TestKeys(t *testing.T) {
	cfg := Default()
	for _, k := range Keys() {
		if _, err := cfg.Get(k); err != nil {
			t.Errorf("Get(%q) error: %v", k, err)
		}
	}
}
