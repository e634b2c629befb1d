// Package config provides user configuration management for netdash.
//
// This package manages a YAML-based settings file holding the backend
// server location, display preferences (timezone, page size) and polling
// behavior. The file follows OS-specific conventions for storage location.
//
// # Configuration File Location
//
// The settings file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/netdash/config.yaml or $HOME/.config/netdash/config.yaml
//   - macOS: $HOME/.config/netdash/config.yaml
//   - Windows: %LOCALAPPDATA%\netdash\config.yaml
//
// # Security
//
// IMPORTANT: This package NEVER stores the backend password. It is read
// from the NETDASH_PASSWORD environment variable or prompted when needed.
//
// # Usage Example
//
//	settings, err := config.LoadSettings()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	settings.Display.Timezone = "Australia/Perth"
//	if err := settings.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// Timezone and session configuration are deliberately explicit values
// passed into the components that need them, initialized once at startup,
// rather than ambient process-wide state.
package config
