package inventory

import (
	"sort"
	"strings"

	"github.com/tuaninbox/netdash/internal/api"
)

// Direction is a sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Sortable device columns.
const (
	SortHostname = "hostname"
	SortMgmt     = "mgmt_address"
	SortModel    = "model"
	SortSerial   = "serial_number"
)

// SortState is the single active sort: one key and a direction.
// A zero SortState (empty key) means unsorted, preserving fetch order.
type SortState struct {
	Key       string
	Direction Direction
}

// Request handles a header click: clicking the already-active column
// flips the direction, clicking a different column resets to ascending.
func (s *SortState) Request(key string) {
	if s.Key == key {
		if s.Direction == Ascending {
			s.Direction = Descending
		} else {
			s.Direction = Ascending
		}
		return
	}
	s.Key = key
	s.Direction = Ascending
}

// Indicator returns the header marker for a column under this sort state.
func (s SortState) Indicator(key string) string {
	if s.Key != key {
		return ""
	}
	if s.Direction == Ascending {
		return "▲"
	}
	return "▼"
}

// SortDevices returns the devices ordered by the sort state. Comparison
// is string-based: values are lowercased and compared lexicographically,
// with a missing field sorting as the empty string. The sort is stable so
// equal keys keep their fetch order. An empty key returns the input
// unchanged. Sorting is applied strictly after filtering.
func SortDevices(devices []api.Device, s SortState) []api.Device {
	if s.Key == "" {
		return devices
	}
	out := make([]api.Device, len(devices))
	copy(out, devices)
	sort.SliceStable(out, func(i, j int) bool {
		a := strings.ToLower(deviceField(&out[i], s.Key))
		b := strings.ToLower(deviceField(&out[j], s.Key))
		if s.Direction == Ascending {
			return a < b
		}
		return a > b
	})
	return out
}

// deviceField extracts a device's sortable column value. Unknown keys
// yield the empty string, matching the missing-field rule.
func deviceField(d *api.Device, key string) string {
	switch key {
	case SortHostname:
		return d.Hostname
	case SortMgmt:
		return d.MgmtAddress
	case SortModel:
		return d.Model
	case SortSerial:
		return d.SerialNumber
	default:
		return ""
	}
}
