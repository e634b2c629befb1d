package config

// Settings represents the entire user configuration file.
type Settings struct {
	Version int              `yaml:"version"`
	Server  *ServerSettings  `yaml:"server,omitempty"`
	Display *DisplaySettings `yaml:"display,omitempty"`
}

// ServerSettings describes how to reach the inventory backend.
type ServerSettings struct {
	// URL is the backend base URL (e.g. "http://inventory.example.net:8000").
	URL string `yaml:"url"`

	// Username for HTTP Basic Auth. The password is never stored; it is
	// read from NETDASH_PASSWORD or prompted.
	Username string `yaml:"username,omitempty"`
}

// DisplaySettings represents operator display preferences.
type DisplaySettings struct {
	// Timezone is the IANA zone name used to render job timestamps
	// (e.g. "Australia/Perth"). "Local" uses the system zone.
	Timezone string `yaml:"timezone"`

	// PageSize is the default device-list page size. PageSizeAll requests
	// the whole inventory in one page.
	PageSize int `yaml:"page_size"`

	// PollIntervalSeconds is the background-job poll interval.
	PollIntervalSeconds int `yaml:"poll_interval_seconds"`
}

// PageSizeAll is the sentinel page size meaning "all devices". A large
// finite value keeps the total-pages computation free of special cases.
const PageSizeAll = 999999

// PageSizeOptions are the page sizes offered by the dashboard, in the
// order they cycle.
var PageSizeOptions = []int{25, 50, 100, PageSizeAll}

// NewSettings creates Settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Server: &ServerSettings{
			URL: "http://localhost:8000",
		},
		Display: &DisplaySettings{
			Timezone:            "Local",
			PageSize:            25,
			PollIntervalSeconds: 5,
		},
	}
}

// normalize fills in zero-valued fields after a load so callers never see
// a partially-populated settings tree.
func (s *Settings) normalize() {
	defaults := NewSettings()
	if s.Server == nil {
		s.Server = defaults.Server
	}
	if s.Server.URL == "" {
		s.Server.URL = defaults.Server.URL
	}
	if s.Display == nil {
		s.Display = defaults.Display
	}
	if s.Display.Timezone == "" {
		s.Display.Timezone = defaults.Display.Timezone
	}
	if s.Display.PageSize <= 0 {
		s.Display.PageSize = defaults.Display.PageSize
	}
	if s.Display.PollIntervalSeconds <= 0 {
		s.Display.PollIntervalSeconds = defaults.Display.PollIntervalSeconds
	}
}
