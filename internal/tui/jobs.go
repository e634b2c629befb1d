package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/tuaninbox/netdash/internal/api"
)

// Message types for the poll loop
type jobsTickMsg struct {
	gen int
}

type jobsFetchedMsg struct {
	gen  int
	jobs []api.Job
	err  error
}

// jobsGeneration hands out a unique generation per screen instance so a
// poll result from a torn-down screen can never land on its successor.
// Only touched from the single UI goroutine.
var jobsGeneration int

// JobsModel is the background-job listing screen. It fetches the job list
// once on entry and then on a fixed interval; each poll replaces the whole
// list. A tick that arrives while the previous poll is still in flight is
// skipped, and results tagged with a stale generation are dropped.
type JobsModel struct {
	Client   *api.Client
	Location *time.Location
	Interval time.Duration

	Width  int
	Height int

	jobs     []api.Job
	pollErr  error
	polled   bool
	inFlight bool

	generation    int
	BackRequested bool

	Spinner spinner.Model
}

// NewJobsModel creates the job screen. loc controls timestamp display;
// interval is the poll period.
func NewJobsModel(client *api.Client, loc *time.Location, interval time.Duration) JobsModel {
	jobsGeneration++

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return JobsModel{
		Client:     client,
		Location:   loc,
		Interval:   interval,
		generation: jobsGeneration,
		inFlight:   true,
		Spinner:    s,
	}
}

// Init fetches immediately, then starts the poll timer.
func (m JobsModel) Init() tea.Cmd {
	return tea.Batch(
		fetchJobsCmd(m.Client, m.generation),
		m.tickCmd(),
		m.Spinner.Tick,
	)
}

// Stop invalidates the screen's generation so in-flight polls and pending
// ticks are discarded after the operator navigates away.
func (m *JobsModel) Stop() {
	m.generation = -1
}

func fetchJobsCmd(client *api.Client, gen int) tea.Cmd {
	return func() tea.Msg {
		jobs, err := client.GetJobs()
		return jobsFetchedMsg{gen: gen, jobs: jobs, err: err}
	}
}

func (m JobsModel) tickCmd() tea.Cmd {
	gen := m.generation
	return tea.Tick(m.Interval, func(time.Time) tea.Msg {
		return jobsTickMsg{gen: gen}
	})
}

// Update handles messages and updates the model
func (m JobsModel) Update(msg tea.Msg) (JobsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.inFlight {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case jobsTickMsg:
		if msg.gen != m.generation {
			// Timer from a previous screen instance.
			return m, nil
		}
		if m.inFlight {
			// Previous poll has not resolved; skip this tick entirely and
			// wait for the next one.
			return m, m.tickCmd()
		}
		m.inFlight = true
		return m, tea.Batch(fetchJobsCmd(m.Client, m.generation), m.tickCmd(), m.Spinner.Tick)

	case jobsFetchedMsg:
		if msg.gen != m.generation {
			return m, nil
		}
		m.inFlight = false
		m.polled = true
		if msg.err != nil {
			m.pollErr = msg.err
			return m, nil
		}
		m.pollErr = nil
		m.jobs = msg.jobs
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "esc", "backspace", "g":
			m.BackRequested = true

		case "r":
			if !m.inFlight {
				m.inFlight = true
				return m, tea.Batch(fetchJobsCmd(m.Client, m.generation), m.Spinner.Tick)
			}
		}
	}

	return m, nil
}

// View renders the job table
func (m JobsModel) View() string {
	content := m.buildContent()
	helpText := "r refresh • esc back to inventory • q quit"
	return RenderAppContainer(content, helpText, m.Client.BaseURL, m.Width, m.Height)
}

func (m JobsModel) buildContent() string {
	title := TitleStyle.Render("Background Jobs")
	if m.inFlight {
		title += "  " + m.Spinner.View() + SubtleStyle.Render(" polling...")
	} else {
		title += "  " + SubtleStyle.Render(fmt.Sprintf("(every %s)", m.Interval))
	}

	if m.pollErr != nil {
		return title + "\n\n" + ErrorPanelStyle.Render("Failed to fetch jobs: "+m.pollErr.Error())
	}
	if !m.polled {
		return title + "\n\n" + SubtleStyle.Render("Loading jobs...")
	}
	if len(m.jobs) == 0 {
		return title + "\n\n" + SubtleStyle.Render("No jobs recorded.")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(SubtleStyle).
		Headers("ID", "Category", "Description", "Status", "Started", "Finished").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle.Padding(0, 1)
			}
			if col == 3 && row >= 0 && row < len(m.jobs) {
				return JobStatusStyle(m.jobs[row].Status).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, job := range m.jobs {
		t.Row(
			fmt.Sprintf("%d", job.ID),
			job.Category,
			truncate(job.Description, 48),
			job.Status,
			m.formatTime(job.StartedAt),
			m.formatTime(job.FinishedAt),
		)
	}

	return title + "\n\n" + t.Render()
}

// formatTime renders a job timestamp in the configured display timezone,
// or "-" when the backend has not set it.
func (m JobsModel) formatTime(ts *time.Time) string {
	if ts == nil {
		return "-"
	}
	loc := m.Location
	if loc == nil {
		loc = time.Local
	}
	return ts.In(loc).Format("2006-01-02 15:04:05")
}
