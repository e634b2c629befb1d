package inventory

import (
	"strings"

	"github.com/tuaninbox/netdash/internal/api"
)

// matches implements the single matching rule used at every level: a row
// value passes when its lowercased text contains the lowercased pattern.
// An empty pattern always passes. Substring match, not regex, not
// anchored.
func matches(value, pattern string) bool {
	if pattern == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(pattern))
}

// DeviceFilters holds the per-column patterns for the device level.
type DeviceFilters struct {
	Hostname string
	Mgmt     string
	Model    string
	Serial   string
}

// Empty reports whether no device-level constraint is configured.
func (f DeviceFilters) Empty() bool {
	return f == DeviceFilters{}
}

// FilterDevices returns the devices passing every configured column
// pattern. Pure: the input slice is never mutated.
func FilterDevices(devices []api.Device, f DeviceFilters) []api.Device {
	if f.Empty() {
		return devices
	}
	out := make([]api.Device, 0, len(devices))
	for _, d := range devices {
		if matches(d.Hostname, f.Hostname) &&
			matches(d.MgmtAddress, f.Mgmt) &&
			matches(d.Model, f.Model) &&
			matches(d.SerialNumber, f.Serial) {
			out = append(out, d)
		}
	}
	return out
}

// InterfaceFilters holds the per-column patterns for the interface level.
// Status matches against the combined "status/line_protocol" text, and
// SFP against the synthetic column derived from the resolved module
// reference ("<desc> <part> <serial>" or "none").
type InterfaceFilters struct {
	Name        string
	Status      string
	Speed       string
	Description string
	SFP         string
}

// Empty reports whether no interface-level constraint is configured.
func (f InterfaceFilters) Empty() bool {
	return f == InterfaceFilters{}
}

// FilterInterfaces returns the device's interfaces passing every
// configured column pattern.
func FilterInterfaces(dev *api.Device, f InterfaceFilters) []api.Interface {
	if f.Empty() {
		return dev.Interfaces
	}
	out := make([]api.Interface, 0, len(dev.Interfaces))
	for _, iface := range dev.Interfaces {
		statusCombined := iface.Status + "/" + iface.LineProtocol
		if matches(iface.Name, f.Name) &&
			matches(statusCombined, f.Status) &&
			matches(iface.Speed, f.Speed) &&
			matches(iface.Description, f.Description) &&
			matches(dev.InterfaceSFPText(&iface), f.SFP) {
			out = append(out, iface)
		}
	}
	return out
}

// ModuleFilters holds the per-column patterns for the module level.
// Warranty matches against "yes"/"no", Expiry against the formatted date,
// and SFP against "<interface_name> <part_number>".
type ModuleFilters struct {
	Name        string
	PartNumber  string
	Serial      string
	Description string
	Warranty    string
	Expiry      string
	SFP         string
}

// Empty reports whether no module-level constraint is configured.
func (f ModuleFilters) Empty() bool {
	return f == ModuleFilters{}
}

// FilterModules returns the device's modules passing every configured
// column pattern.
func FilterModules(dev *api.Device, f ModuleFilters) []api.Module {
	if f.Empty() {
		return dev.Modules
	}
	out := make([]api.Module, 0, len(dev.Modules))
	for _, m := range dev.Modules {
		if matches(m.Name, f.Name) &&
			matches(m.PartNumber, f.PartNumber) &&
			matches(m.SerialNumber, f.Serial) &&
			matches(m.Description, f.Description) &&
			matches(m.WarrantyText(), f.Warranty) &&
			matches(m.ExpiryText(), f.Expiry) &&
			matches(m.SFPText(), f.SFP) {
			out = append(out, m)
		}
	}
	return out
}
