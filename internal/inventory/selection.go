package inventory

import "sort"

// Selection tracks which device rows and which module rows (per device)
// are checked. Absence from a set means unselected; the "select all"
// checkbox state is derived from set containment, never stored.
type Selection struct {
	devices map[int64]struct{}
	modules map[int64]map[int64]struct{} // device id -> selected module ids

	// onChange is invoked with the up-to-date sorted device id list after
	// every change to the device selection, so the toolbar labels stay in
	// sync without this store knowing about the toolbar.
	onChange func(ids []int64)
}

// NewSelection creates an empty selection. onChange may be nil.
func NewSelection(onChange func(ids []int64)) *Selection {
	return &Selection{
		devices:  make(map[int64]struct{}),
		modules:  make(map[int64]map[int64]struct{}),
		onChange: onChange,
	}
}

// ToggleDevice flips one device's selection.
func (s *Selection) ToggleDevice(id int64) {
	if _, ok := s.devices[id]; ok {
		delete(s.devices, id)
	} else {
		s.devices[id] = struct{}{}
	}
	s.notify()
}

// ToggleAllVisible sets every visible device id to checked in one update.
// Ids filtered out of the current view are left untouched, so select-all
// on a filtered view never selects hidden rows.
func (s *Selection) ToggleAllVisible(visible []int64, checked bool) {
	for _, id := range visible {
		if checked {
			s.devices[id] = struct{}{}
		} else {
			delete(s.devices, id)
		}
	}
	s.notify()
}

// DeviceSelected reports whether a device row is checked.
func (s *Selection) DeviceSelected(id int64) bool {
	_, ok := s.devices[id]
	return ok
}

// AllVisibleSelected reports the derived select-all checkbox state: true
// iff the visible set is non-empty and every visible id is selected.
func (s *Selection) AllVisibleSelected(visible []int64) bool {
	if len(visible) == 0 {
		return false
	}
	for _, id := range visible {
		if _, ok := s.devices[id]; !ok {
			return false
		}
	}
	return true
}

// SelectedDeviceIDs returns the selected device ids in ascending order.
func (s *Selection) SelectedDeviceIDs() []int64 {
	ids := make([]int64, 0, len(s.devices))
	for id := range s.devices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// DeviceCount returns the number of selected devices.
func (s *Selection) DeviceCount() int {
	return len(s.devices)
}

// ToggleModule flips one module's selection, scoped to its device.
func (s *Selection) ToggleModule(deviceID, moduleID int64) {
	set, ok := s.modules[deviceID]
	if !ok {
		set = make(map[int64]struct{})
		s.modules[deviceID] = set
	}
	if _, ok := set[moduleID]; ok {
		delete(set, moduleID)
	} else {
		set[moduleID] = struct{}{}
	}
}

// ToggleAllModules sets every listed module id for the device to checked
// in one update.
func (s *Selection) ToggleAllModules(deviceID int64, moduleIDs []int64, checked bool) {
	set, ok := s.modules[deviceID]
	if !ok {
		set = make(map[int64]struct{})
		s.modules[deviceID] = set
	}
	for _, id := range moduleIDs {
		if checked {
			set[id] = struct{}{}
		} else {
			delete(set, id)
		}
	}
}

// ModuleSelected reports whether a module row is checked.
func (s *Selection) ModuleSelected(deviceID, moduleID int64) bool {
	set, ok := s.modules[deviceID]
	if !ok {
		return false
	}
	_, ok = set[moduleID]
	return ok
}

// AllModulesSelected reports the derived module select-all state for a
// device.
func (s *Selection) AllModulesSelected(deviceID int64, moduleIDs []int64) bool {
	if len(moduleIDs) == 0 {
		return false
	}
	set, ok := s.modules[deviceID]
	if !ok {
		return false
	}
	for _, id := range moduleIDs {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}

// SelectedModuleIDs returns the selected module ids for a device in
// ascending order.
func (s *Selection) SelectedModuleIDs(deviceID int64) []int64 {
	set := s.modules[deviceID]
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ModuleCount returns the number of selected modules for a device.
func (s *Selection) ModuleCount(deviceID int64) int {
	return len(s.modules[deviceID])
}

func (s *Selection) notify() {
	if s.onChange != nil {
		s.onChange(s.SelectedDeviceIDs())
	}
}
