package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tuaninbox/netdash/internal/action"
)

// ConfirmModel is the single-slot blocking confirmation modal. Only one
// confirmation may be pending at a time; a second Request while one is
// pending is rejected with an error rather than overwriting the first.
// There is no timeout: the modal stays up until the operator answers.
type ConfirmModel struct {
	Active bool

	request action.ConfirmRequest
	cursor  int // 0 = confirm button, 1 = cancel button
}

// Request arms the modal with a pending confirmation. Returns an error when
// a confirmation is already pending.
func (c *ConfirmModel) Request(req action.ConfirmRequest) error {
	if c.Active {
		return fmt.Errorf("a confirmation is already pending")
	}
	if req.ConfirmText == "" {
		req.ConfirmText = "Confirm"
	}
	if req.CancelText == "" {
		req.CancelText = "Cancel"
	}
	c.Active = true
	c.request = req
	c.cursor = 1 // default focus on Cancel, destructive actions need intent
	return nil
}

// Update consumes a key press while the modal is active. decided is true
// once the operator has answered; accepted carries the answer.
func (c *ConfirmModel) Update(msg tea.KeyMsg) (decided, accepted bool) {
	if !c.Active {
		return false, false
	}

	switch msg.String() {
	case "left", "right", "tab", "h", "l":
		c.cursor = 1 - c.cursor
		return false, false

	case "enter", " ":
		accepted = c.cursor == 0
		c.close()
		return true, accepted

	case "y":
		c.close()
		return true, true

	case "n", "esc":
		c.close()
		return true, false
	}

	return false, false
}

func (c *ConfirmModel) close() {
	c.Active = false
	c.request = action.ConfirmRequest{}
	c.cursor = 0
}

// View renders the modal content. The caller overlays it with
// RenderModalOverlay.
func (c ConfirmModel) View(terminalWidth int) string {
	if !c.Active {
		return ""
	}

	title := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true).
		Render("⚠ " + c.request.Title)

	maxWidth := terminalWidth - 12
	if maxWidth < 40 {
		maxWidth = 40
	}
	message := lipgloss.NewStyle().
		Width(maxWidth).
		Render(c.request.Message)

	confirmBtn := ModalButtonStyle.Render("[ " + c.request.ConfirmText + " ]")
	cancelBtn := ModalButtonFocusStyle.Render("[ " + c.request.CancelText + " ]")
	if c.cursor == 0 {
		confirmBtn = ModalButtonFocusStyle.Render("[ " + c.request.ConfirmText + " ]")
		cancelBtn = ModalButtonStyle.Render("[ " + c.request.CancelText + " ]")
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, confirmBtn, "  ", cancelBtn)

	hint := HelpStyle.Render("←/→ switch • enter choose • y/n answer • esc cancel")

	return ModalStyle.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		message,
		"",
		buttons,
		"",
		hint,
	))
}
