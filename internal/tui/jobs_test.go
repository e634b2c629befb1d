package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuaninbox/netdash/internal/api"
)

func newTestJobsModel() JobsModel {
	return NewJobsModel(api.NewClient(""), time.UTC, time.Millisecond)
}

func TestStaleGenerationPollDiscarded(t *testing.T) {
	m := newTestJobsModel()
	gen := m.generation
	m.Stop()

	m, _ = m.Update(jobsFetchedMsg{gen: gen, jobs: []api.Job{{ID: 1, Status: "running"}}})
	if len(m.jobs) != 0 {
		t.Fatalf("poll result applied after Stop: got %d jobs, want 0", len(m.jobs))
	}
}

func TestStaleTimerIgnored(t *testing.T) {
	m := newTestJobsModel()

	m, cmd := m.Update(jobsTickMsg{gen: m.generation - 1})
	if cmd != nil {
		t.Fatal("timer from a previous screen instance produced a command")
	}
	if !m.inFlight {
		t.Fatal("stale timer touched the in-flight flag")
	}
}

func TestTickWhileInFlightSkipsFetch(t *testing.T) {
	m := newTestJobsModel()
	// The model starts in flight, awaiting the initial fetch.

	m, cmd := m.Update(jobsTickMsg{gen: m.generation})
	if cmd == nil {
		t.Fatal("tick while in flight must reschedule the timer")
	}

	// A skipped tick reschedules only the timer; a fetch would arrive as
	// a batch of commands.
	msg := cmd()
	if _, ok := msg.(tea.BatchMsg); ok {
		t.Fatal("tick while in flight issued a fetch")
	}
	if _, ok := msg.(jobsTickMsg); !ok {
		t.Fatalf("rescheduled command produced %T, want a tick", msg)
	}
}

func TestTickWhenIdleFetches(t *testing.T) {
	m := newTestJobsModel()
	m, _ = m.Update(jobsFetchedMsg{gen: m.generation, jobs: nil})
	if m.inFlight {
		t.Fatal("fetch completion did not clear the in-flight flag")
	}

	m, cmd := m.Update(jobsTickMsg{gen: m.generation})
	if !m.inFlight {
		t.Fatal("tick did not mark the new poll in flight")
	}
	msg := cmd()
	if _, ok := msg.(tea.BatchMsg); !ok {
		t.Fatalf("idle tick produced %T, want a fetch batch", msg)
	}
}
