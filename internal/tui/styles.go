package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tuaninbox/netdash/internal/version"
)

// Application branding constants
const (
	AppName   = "NETDASH INVENTORY DASHBOARD"
	GitHubURL = "github.com/tuaninbox/netdash"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 80  // Minimum supported terminal width
	MaxContentWidth  = 160 // Maximum content width before capping
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF5555") // Red

	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor = lipgloss.Color("#43BF6D") // Green (same as secondary)
)

// Common styles
var (
	// Title style for screen headings
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// Table header style (column captions and sort indicators)
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// Row under the cursor
	CursorRowStyle = lipgloss.NewStyle().
			Foreground(HighlightColor).
			Bold(true)

	// Checked selection marker
	SelectedMarkStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true)

	// Muted text (placeholders, disabled pagination arrows, hints)
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Section caption inside an expanded device row
	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true)

	// Toolbar action label
	ToolbarStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// Help text style
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Success panel (sync result)
	SuccessPanelStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(SecondaryColor).
				Padding(0, 2)

	// Error panel (sync failure)
	ErrorPanelStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor).
			Padding(0, 2)

	// Raw-details block inside the error panel
	DetailsStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			PaddingLeft(2)

	// Modal box for the confirmation dialog
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(WarningColor).
			Padding(1, 3)

	// Modal buttons
	ModalButtonStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Padding(0, 2)

	ModalButtonFocusStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1A1A1A")).
				Background(WarningColor).
				Bold(true).
				Padding(0, 2)

	// Spinner style
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// Filter input captions
	FilterLabelStyle = lipgloss.NewStyle().
				Foreground(SubtleColor)
)

// JobStatusStyle picks a color for a backend job status. Unknown statuses
// render unstyled; the status vocabulary is backend-defined.
func JobStatusStyle(status string) lipgloss.Style {
	switch strings.ToLower(status) {
	case "succeeded", "success", "completed":
		return lipgloss.NewStyle().Foreground(SecondaryColor)
	case "failed", "error":
		return lipgloss.NewStyle().Foreground(ErrorColor)
	case "running", "in_progress":
		return lipgloss.NewStyle().Foreground(WarningColor)
	default:
		return lipgloss.NewStyle().Foreground(TextColor)
	}
}

// BuildHeaderContent creates header content with app name and server URL
func BuildHeaderContent(serverURL string) string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(serverURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// RenderAppContainer is the wrapper for all screens: a bordered full-terminal
// panel with a header (app name, version, server) and a footer (context help).
//
// Pattern for every screen:
//
//	func (m Model) View() string {
//	    content := m.buildContent()
//	    return RenderAppContainer(content, helpText, serverURL, m.Width, m.Height)
//	}
func RenderAppContainer(content, footerText, serverURL string, terminalWidth, terminalHeight int) string {
	if terminalWidth < MinTerminalWidth {
		terminalWidth = MinTerminalWidth
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth - 4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth - 4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth - 4).
		Padding(0, 1)

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent(serverURL)),
		contentStyle.Render(content),
		footerStyle.Render(HelpStyle.Render(footerText)),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(inner)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}

// RenderModalOverlay centers a modal over a dimmed backdrop. Used only for
// the blocking confirmation dialog.
func RenderModalOverlay(modalContent string, terminalWidth, terminalHeight int) string {
	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
	)
}

// truncate shortens a cell value to fit a column, appending an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
