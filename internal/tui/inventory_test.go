package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuaninbox/netdash/internal/api"
	"github.com/tuaninbox/netdash/internal/config"
	"github.com/tuaninbox/netdash/internal/inventory"
)

func newTestInventoryModel() InventoryModel {
	return NewInventoryModel(api.NewClient(""), config.NewSettings())
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStaleDeviceFetchDiscarded(t *testing.T) {
	m := newTestInventoryModel()

	// A response tagged with a superseded sequence must not land.
	stale := devicesFetchedMsg{
		seq:  m.fetchSeq - 1,
		list: &api.DeviceList{Items: []api.Device{{ID: 99, Hostname: "ghost"}}, Total: 1},
	}
	m, _ = m.Update(stale)
	if len(m.devices) != 0 {
		t.Fatalf("stale fetch result applied: got %d devices, want 0", len(m.devices))
	}
	if !m.loading {
		t.Fatal("stale fetch result cleared the loading flag")
	}

	current := devicesFetchedMsg{
		seq:  m.fetchSeq,
		list: &api.DeviceList{Items: []api.Device{{ID: 1, Hostname: "core-sw1"}}, Total: 1},
	}
	m, _ = m.Update(current)
	if len(m.devices) != 1 || m.devices[0].Hostname != "core-sw1" {
		t.Fatalf("current fetch result not applied: %+v", m.devices)
	}
	if m.loading {
		t.Fatal("current fetch result left the loading flag set")
	}
}

func TestDeviceSyncIncludesSelectionHiddenByFilter(t *testing.T) {
	m := newTestInventoryModel()
	m.devices = []api.Device{
		{ID: 1, Hostname: "core-sw1"},
		{ID: 2, Hostname: "edge-rtr1"},
	}

	// Select core-sw1, then filter it out of the visible view. The
	// selection survives the filter and must still reach the payload.
	m.Selection.ToggleDevice(1)
	m.DeviceFilters = inventory.DeviceFilters{Hostname: "edge"}

	m, _ = m.beginDeviceSync()
	if m.validationErr != nil {
		t.Fatalf("sync aborted: %v", m.validationErr)
	}
	if !m.Confirm.Active {
		t.Fatal("confirmation not armed")
	}

	m.Confirm.close()
	sub, err := m.Orchestrator.Accept()
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if len(sub.Hostnames) != 1 || sub.Hostnames[0] != "core-sw1" {
		t.Fatalf("payload hostnames = %v, want [core-sw1]", sub.Hostnames)
	}
}

func TestValidationErrorIsNotAFetchError(t *testing.T) {
	m := newTestInventoryModel()
	m.devices = []api.Device{
		{ID: 1, Hostname: "core-sw1", Modules: []api.Module{{ID: 10, SerialNumber: "   "}}},
	}

	m, _ = m.beginModuleSync(&m.devices[0])
	if m.validationErr == nil {
		t.Fatal("all-blank serials did not record a validation error")
	}
	if m.fetchErr != nil {
		t.Fatalf("validation failure stored as fetch error: %v", m.fetchErr)
	}
	if m.Confirm.Active {
		t.Fatal("confirmation armed for an invalid action")
	}

	// Dismiss clears the panel.
	m, _ = m.updateNormalMode(keyMsg("d"))
	if m.validationErr != nil {
		t.Fatal("dismiss did not clear the validation error")
	}
}
