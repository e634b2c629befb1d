package inventory

import (
	"testing"

	"github.com/tuaninbox/netdash/internal/api"
)

func TestSortStateRequest(t *testing.T) {
	var s SortState

	// First click: new key, ascending.
	s.Request(SortHostname)
	if s.Key != SortHostname || s.Direction != Ascending {
		t.Fatalf("after first click: %+v", s)
	}

	// Second click on same key flips direction.
	s.Request(SortHostname)
	if s.Direction != Descending {
		t.Fatalf("after second click: %+v", s)
	}

	// Third click flips back.
	s.Request(SortHostname)
	if s.Direction != Ascending {
		t.Fatalf("after third click: %+v", s)
	}

	// Clicking a different column resets to ascending.
	s.Request(SortModel)
	s.Request(SortModel)
	if s.Direction != Descending {
		t.Fatalf("setup: %+v", s)
	}
	s.Request(SortSerial)
	if s.Key != SortSerial || s.Direction != Ascending {
		t.Fatalf("after switching columns: %+v", s)
	}
}

func TestSortDevices(t *testing.T) {
	devices := []api.Device{
		{ID: 1, Hostname: "edge-rtr1", Model: "ISR4331"},
		{ID: 2, Hostname: "Core-sw1", Model: "C9300"},
		{ID: 3, Hostname: "access-sw2", Model: "C9200"},
	}

	got := SortDevices(devices, SortState{Key: SortHostname, Direction: Ascending})
	wantOrder := []int64{3, 2, 1} // access, Core (case-insensitive), edge
	for i, d := range got {
		if d.ID != wantOrder[i] {
			t.Errorf("asc[%d] = device %d, want %d", i, d.ID, wantOrder[i])
		}
	}

	got = SortDevices(devices, SortState{Key: SortHostname, Direction: Descending})
	wantOrder = []int64{1, 2, 3}
	for i, d := range got {
		if d.ID != wantOrder[i] {
			t.Errorf("desc[%d] = device %d, want %d", i, d.ID, wantOrder[i])
		}
	}

	// Input order must be preserved (sort copies).
	if devices[0].ID != 1 {
		t.Error("SortDevices mutated its input")
	}
}

func TestSortDevicesIdempotent(t *testing.T) {
	devices := []api.Device{
		{ID: 1, Hostname: "b"},
		{ID: 2, Hostname: "a"},
		{ID: 3, Hostname: "c"},
	}

	state := SortState{Key: SortHostname, Direction: Ascending}
	once := SortDevices(devices, state)
	twice := SortDevices(once, state)

	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("sorting an already-sorted list changed the order at %d", i)
		}
	}
}

func TestSortDevicesStableAndMissingField(t *testing.T) {
	// Equal keys keep fetch order; empty values sort first ascending.
	devices := []api.Device{
		{ID: 1, Hostname: "sw1", Model: "same"},
		{ID: 2, Hostname: "sw2", Model: ""},
		{ID: 3, Hostname: "sw3", Model: "same"},
	}

	got := SortDevices(devices, SortState{Key: SortModel, Direction: Ascending})
	wantOrder := []int64{2, 1, 3}
	for i, d := range got {
		if d.ID != wantOrder[i] {
			t.Errorf("got[%d] = device %d, want %d", i, d.ID, wantOrder[i])
		}
	}

	// Unknown sort key treats every row as equal: stable, so fetch
	// order is preserved.
	got = SortDevices(devices, SortState{Key: "bogus", Direction: Ascending})
	for i, d := range got {
		if d.ID != devices[i].ID {
			t.Errorf("unknown key reordered rows at %d", i)
		}
	}
}

func TestSortDevicesNoKey(t *testing.T) {
	devices := []api.Device{{ID: 2}, {ID: 1}}
	got := SortDevices(devices, SortState{})
	for i, d := range got {
		if d.ID != devices[i].ID {
			t.Errorf("zero sort state should preserve order, got %d at %d", d.ID, i)
		}
	}
}
