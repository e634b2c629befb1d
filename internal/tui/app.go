package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuaninbox/netdash/internal/api"
	"github.com/tuaninbox/netdash/internal/config"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenInventory Screen = "inventory"
	ScreenJobs      Screen = "jobs"
)

// AppModel is the top-level coordinator model that manages screen
// transitions between the inventory grid and the job listing. Timezone and
// backend settings are passed in explicitly at startup; the screens never
// read ambient globals.
type AppModel struct {
	CurrentScreen Screen

	Inventory InventoryModel
	Jobs      JobsModel

	Client   *api.Client
	Settings *config.Settings
	Location *time.Location

	Width  int
	Height int
}

// NewAppModel creates the application model starting on the inventory grid.
func NewAppModel(client *api.Client, settings *config.Settings, loc *time.Location) AppModel {
	return AppModel{
		CurrentScreen: ScreenInventory,
		Inventory:     NewInventoryModel(client, settings),
		Client:        client,
		Settings:      settings,
		Location:      loc,
	}
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return m.Inventory.Init()
}

// Update handles all messages and routes them to the active screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		// Propagate to both screens so the inactive one renders correctly
		// on return.
		m.Inventory.Width, m.Inventory.Height = msg.Width, msg.Height
		m.Jobs.Width, m.Jobs.Height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m.updateCurrentScreen(msg)
}

// updateCurrentScreen routes a message to the active screen and applies
// any transition the screen requested.
func (m AppModel) updateCurrentScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.CurrentScreen {
	case ScreenInventory:
		m.Inventory, cmd = m.Inventory.Update(msg)
		if m.Inventory.JobsRequested {
			m.Inventory.JobsRequested = false
			return m.openJobs()
		}

	case ScreenJobs:
		m.Jobs, cmd = m.Jobs.Update(msg)
		if m.Jobs.BackRequested {
			// Stop the poll loop before leaving so in-flight results are
			// discarded; the grid keeps its state from before.
			m.Jobs.Stop()
			m.CurrentScreen = ScreenInventory
			return m, nil
		}
	}

	return m, cmd
}

// openJobs transitions to a fresh job screen and starts its poll loop.
func (m AppModel) openJobs() (tea.Model, tea.Cmd) {
	interval := time.Duration(m.Settings.Display.PollIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = 5 * time.Second
	}
	m.Jobs = NewJobsModel(m.Client, m.Location, interval)
	m.Jobs.Width, m.Jobs.Height = m.Width, m.Height
	m.CurrentScreen = ScreenJobs
	return m, m.Jobs.Init()
}

// View renders the current screen
func (m AppModel) View() string {
	switch m.CurrentScreen {
	case ScreenJobs:
		return m.Jobs.View()
	default:
		return m.Inventory.View()
	}
}

// Run starts the interactive dashboard and blocks until the operator
// quits.
func Run(client *api.Client, settings *config.Settings) error {
	loc, err := resolveLocation(settings.Display.Timezone)
	if err != nil {
		return err
	}

	program := tea.NewProgram(NewAppModel(client, settings, loc), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard terminated abnormally: %w", err)
	}
	return nil
}

// resolveLocation maps the configured display timezone to a location.
// "Local" or empty means the machine's local zone.
func resolveLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid display timezone %q: %w", name, err)
	}
	return loc, nil
}
