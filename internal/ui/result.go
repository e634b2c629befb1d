package ui

import (
	"strings"
)

// Result is a rendered success or failure box for one-shot commands.
type Result struct {
	Title           string  // e.g., "Sync job submitted"
	Details         []Param // Key-value details, rendered in order
	Err             error   // Failure cause (failure results only)
	Troubleshooting []string
	Raw             []byte // Raw backend payload, shown on failures when present
	Width           int
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details ...Param) *Result {
	return &Result{
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, troubleshooting []string) *Result {
	return &Result{
		Title:           title,
		Err:             err,
		Troubleshooting: troubleshooting,
		Width:           GetTerminalWidth(),
	}
}

// AddDetail appends a detail key-value pair
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Param{Key: key, Value: value})
	return r
}

// SetRaw attaches the raw backend payload for diagnostic display
func (r *Result) SetRaw(raw []byte) *Result {
	r.Raw = raw
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	if r.Err != nil {
		return r.renderFailure()
	}
	return r.renderSuccess()
}

func (r *Result) renderSuccess() string {
	width := r.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	var lines []string
	lines = append(lines, "")
	lines = append(lines, SuccessTitleStyle.Render("   "+SuccessMarker+"  SUCCESS  ─  "+r.Title))
	lines = append(lines, "")

	for _, d := range r.Details {
		keyStyled := ResultKeyStyle.Render("   " + d.Key + ":")
		valueStyled := ResultValueStyle.Render(d.Value)
		lines = append(lines, keyStyled+" "+valueStyled)
	}
	lines = append(lines, "")

	return SuccessBoxStyle(width).Render(strings.Join(lines, "\n"))
}

func (r *Result) renderFailure() string {
	width := r.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	var lines []string
	lines = append(lines, "")
	lines = append(lines, ErrorTitleStyle.Render("   "+FailureMarker+"  FAILED  ─  "+r.Title))
	lines = append(lines, "")

	if r.Err != nil {
		lines = append(lines, ErrorMessageStyle.Render("   Error: "+r.Err.Error()))
		lines = append(lines, "")
	}

	if len(r.Troubleshooting) > 0 {
		var troubleLines []string
		troubleLines = append(troubleLines, TroubleshootingTitleStyle.Render("Troubleshooting:"))
		troubleLines = append(troubleLines, "")
		for _, tip := range r.Troubleshooting {
			troubleLines = append(troubleLines, TroubleshootingItemStyle.Render("  • "+tip))
		}
		lines = append(lines, TroubleshootingBoxStyle(width).Render(strings.Join(troubleLines, "\n")))
		lines = append(lines, "")
	}

	if len(r.Raw) > 0 {
		rawLines := TroubleshootingTitleStyle.Render("Backend response:") + "\n" +
			RawPayloadStyle.Render(string(r.Raw))
		lines = append(lines, RawPayloadBoxStyle(width).Render(rawLines))
		lines = append(lines, "")
	}

	return ErrorBoxStyle(width).Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}

// --- Convenience functions for quick rendering ---

// RenderSuccess renders a success box with the given title and details
func RenderSuccess(title string, details ...Param) string {
	return NewSuccessResult(title, details...).Render()
}

// RenderFailure renders a failure box with the given title, error, and troubleshooting tips
func RenderFailure(title string, err error, troubleshooting []string) string {
	return NewFailureResult(title, err, troubleshooting).Render()
}
