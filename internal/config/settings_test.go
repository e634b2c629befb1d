package config

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	// Should not be empty
	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	// Should contain "netdash"
	if !strings.Contains(configDir, "netdash") {
		t.Errorf("GetConfigDir() = %v, should contain 'netdash'", configDir)
	}

	// Platform-specific checks
	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") && !strings.Contains(configDir, "netdash") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	// Should end with config.yaml
	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}

	t.Logf("Config path: %s", configPath)
}

func TestNewSettings(t *testing.T) {
	s := NewSettings()

	if s.Version != 1 {
		t.Errorf("NewSettings().Version = %v, want 1", s.Version)
	}

	if s.Server == nil {
		t.Fatal("NewSettings().Server should not be nil")
	}

	if s.Server.URL == "" {
		t.Error("NewSettings().Server.URL should have a default")
	}

	if s.Display == nil {
		t.Fatal("NewSettings().Display should not be nil")
	}

	if s.Display.PageSize != 25 {
		t.Errorf("NewSettings().Display.PageSize = %v, want 25", s.Display.PageSize)
	}

	if s.Display.PollIntervalSeconds != 5 {
		t.Errorf("NewSettings().Display.PollIntervalSeconds = %v, want 5", s.Display.PollIntervalSeconds)
	}

	if s.Display.Timezone != "Local" {
		t.Errorf("NewSettings().Display.Timezone = %v, want Local", s.Display.Timezone)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		check    func(t *testing.T, s *Settings)
	}{
		{
			name:     "empty settings get full defaults",
			settings: Settings{Version: 1},
			check: func(t *testing.T, s *Settings) {
				if s.Server == nil || s.Server.URL == "" {
					t.Error("normalize should fill in server defaults")
				}
				if s.Display == nil || s.Display.PageSize != 25 {
					t.Error("normalize should fill in display defaults")
				}
			},
		},
		{
			name: "configured values survive",
			settings: Settings{
				Version: 1,
				Server:  &ServerSettings{URL: "http://inv:9000", Username: "ops"},
				Display: &DisplaySettings{Timezone: "Australia/Perth", PageSize: 100, PollIntervalSeconds: 10},
			},
			check: func(t *testing.T, s *Settings) {
				if s.Server.URL != "http://inv:9000" {
					t.Errorf("URL = %v, want http://inv:9000", s.Server.URL)
				}
				if s.Display.PageSize != 100 {
					t.Errorf("PageSize = %v, want 100", s.Display.PageSize)
				}
				if s.Display.Timezone != "Australia/Perth" {
					t.Errorf("Timezone = %v, want Australia/Perth", s.Display.Timezone)
				}
			},
		},
		{
			name: "zero page size replaced",
			settings: Settings{
				Version: 1,
				Display: &DisplaySettings{PageSize: 0},
			},
			check: func(t *testing.T, s *Settings) {
				if s.Display.PageSize != 25 {
					t.Errorf("PageSize = %v, want 25", s.Display.PageSize)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.settings
			s.normalize()
			tt.check(t, &s)
		})
	}
}

func TestSaveAndReload(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test redirects XDG_CONFIG_HOME, not applicable on windows")
	}

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	s := NewSettings()
	s.Server.URL = "http://inventory.test:8000"
	s.Server.Username = "operator"
	s.Display.Timezone = "Australia/Perth"
	s.Display.PageSize = 50

	if err := s.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := ReloadSettings()
	if err != nil {
		t.Fatalf("ReloadSettings() error = %v", err)
	}

	if loaded.Server.URL != "http://inventory.test:8000" {
		t.Errorf("reloaded URL = %v", loaded.Server.URL)
	}
	if loaded.Server.Username != "operator" {
		t.Errorf("reloaded Username = %v", loaded.Server.Username)
	}
	if loaded.Display.Timezone != "Australia/Perth" {
		t.Errorf("reloaded Timezone = %v", loaded.Display.Timezone)
	}
	if loaded.Display.PageSize != 50 {
		t.Errorf("reloaded PageSize = %v", loaded.Display.PageSize)
	}
}
