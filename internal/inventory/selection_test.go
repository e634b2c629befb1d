package inventory

import (
	"reflect"
	"testing"
)

func TestToggleDevice(t *testing.T) {
	var notified [][]int64
	s := NewSelection(func(ids []int64) {
		notified = append(notified, ids)
	})

	s.ToggleDevice(2)
	s.ToggleDevice(1)
	if !s.DeviceSelected(1) || !s.DeviceSelected(2) {
		t.Fatal("devices 1 and 2 should be selected")
	}

	if got := s.SelectedDeviceIDs(); !reflect.DeepEqual(got, []int64{1, 2}) {
		t.Errorf("SelectedDeviceIDs() = %v, want [1 2]", got)
	}

	s.ToggleDevice(2)
	if s.DeviceSelected(2) {
		t.Error("device 2 should be deselected after second toggle")
	}

	// Every device change notifies with the up-to-date id list.
	if len(notified) != 3 {
		t.Fatalf("got %d notifications, want 3", len(notified))
	}
	if !reflect.DeepEqual(notified[2], []int64{1}) {
		t.Errorf("final notification = %v, want [1]", notified[2])
	}
}

func TestToggleAllVisibleScopedToView(t *testing.T) {
	s := NewSelection(nil)

	// Select-all on a filtered view touches only the visible ids.
	s.ToggleAllVisible([]int64{1, 3}, true)
	if !s.DeviceSelected(1) || !s.DeviceSelected(3) {
		t.Fatal("visible ids should be selected")
	}
	if s.DeviceSelected(2) {
		t.Fatal("hidden id 2 must not be selected by select-all")
	}

	// Clearing the filter later must not retroactively select the
	// newly revealed rows: the stored selection is exactly {1, 3}.
	if got := s.SelectedDeviceIDs(); !reflect.DeepEqual(got, []int64{1, 3}) {
		t.Errorf("SelectedDeviceIDs() = %v, want [1 3]", got)
	}

	// Unchecking select-all on a narrower view leaves the rest alone.
	s.ToggleAllVisible([]int64{1}, false)
	if s.DeviceSelected(1) {
		t.Error("id 1 should be cleared")
	}
	if !s.DeviceSelected(3) {
		t.Error("id 3 should remain selected")
	}
}

func TestAllVisibleSelected(t *testing.T) {
	s := NewSelection(nil)

	if s.AllVisibleSelected(nil) {
		t.Error("empty view must never report all-selected")
	}

	s.ToggleAllVisible([]int64{1, 2}, true)
	if !s.AllVisibleSelected([]int64{1, 2}) {
		t.Error("all visible ids selected, want true")
	}
	if s.AllVisibleSelected([]int64{1, 2, 3}) {
		t.Error("id 3 unselected, want false")
	}
}

func TestModuleSelectionScopedPerDevice(t *testing.T) {
	s := NewSelection(nil)

	s.ToggleModule(1, 101)
	s.ToggleModule(2, 101)

	if !s.ModuleSelected(1, 101) || !s.ModuleSelected(2, 101) {
		t.Fatal("module 101 should be selected under both devices")
	}

	s.ToggleModule(1, 101)
	if s.ModuleSelected(1, 101) {
		t.Error("device 1's module 101 should be deselected")
	}
	if !s.ModuleSelected(2, 101) {
		t.Error("device 2's module 101 must be unaffected")
	}
}

func TestToggleAllModules(t *testing.T) {
	s := NewSelection(nil)

	s.ToggleAllModules(1, []int64{101, 102}, true)
	if !s.AllModulesSelected(1, []int64{101, 102}) {
		t.Fatal("both modules should be selected")
	}
	if got := s.SelectedModuleIDs(1); !reflect.DeepEqual(got, []int64{101, 102}) {
		t.Errorf("SelectedModuleIDs(1) = %v, want [101 102]", got)
	}

	s.ToggleAllModules(1, []int64{101, 102}, false)
	if s.ModuleCount(1) != 0 {
		t.Errorf("ModuleCount(1) = %d after clearing, want 0", s.ModuleCount(1))
	}

	if s.AllModulesSelected(1, nil) {
		t.Error("empty module list must never report all-selected")
	}
}

func TestModuleSelectionDoesNotNotifyDeviceCallback(t *testing.T) {
	calls := 0
	s := NewSelection(func([]int64) { calls++ })

	s.ToggleModule(1, 101)
	s.ToggleAllModules(1, []int64{102}, true)

	// The toolbar callback tracks device selection only.
	if calls != 0 {
		t.Errorf("module toggles produced %d device notifications, want 0", calls)
	}
}
