package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Device represents a managed network element as returned by GET /devices.
// A device owns its interface and module inventories; both are replaced
// wholesale on every list fetch and carry no client-side mutable state.
type Device struct {
	ID           int64  `json:"id"`
	Hostname     string `json:"hostname"`
	MgmtAddress  string `json:"mgmt_address"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`

	// Paths to collected artifacts on the backend. Empty when the
	// collector has not produced the file yet.
	RunningConfigPath string `json:"running_config_path,omitempty"`
	RoutingTablePath  string `json:"routing_table_path,omitempty"`
	MACTablePath      string `json:"mac_table_path,omitempty"`

	Interfaces []Interface `json:"interfaces"`
	Modules    []Module    `json:"modules"`

	// moduleIndex maps module id to the module, built once per payload so
	// resolving an interface's SFP reference is not a linear scan on every
	// render.
	moduleIndex map[int64]*Module
}

// Interface represents a single device interface.
type Interface struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	LineProtocol string `json:"line_protocol"`
	Speed        string `json:"speed"`
	Description  string `json:"description"`

	// SFPModule is a weak back-reference to the pluggable module inserted
	// in this interface, resolved against the parent device's module list.
	// Nil when the interface has no pluggable.
	SFPModule *SFPRef `json:"sfp_module,omitempty"`
}

// SFPRef is the interface-side half of the interface/module relation.
type SFPRef struct {
	ModuleID int64 `json:"module_id"`
}

// SFPSlot is the module-side half: the interface a pluggable sits in.
// Both halves are denormalized views provided by the backend; no
// referential integrity is enforced client-side.
type SFPSlot struct {
	InterfaceName string `json:"interface_name"`
	PartNumber    string `json:"part_number"`
}

// Module represents a field-replaceable hardware component with warranty
// metadata maintained by the EOX sync job.
type Module struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	PartNumber     string   `json:"part_number"`
	SerialNumber   string   `json:"serial_number"`
	Description    string   `json:"description"`
	HWRevision     string   `json:"hw_revision"`
	UnderWarranty  bool     `json:"under_warranty"`
	WarrantyExpiry *Date    `json:"warranty_expiry"`
	SFPModule      *SFPSlot `json:"sfp_module,omitempty"`
}

// Job represents an asynchronous backend task record. Status is a
// backend-defined string (submitted/running/succeeded/failed and whatever
// else the backend grows) and is displayed verbatim.
type Job struct {
	ID          int64      `json:"id"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	StartedAt   *time.Time `json:"started_at"`
	FinishedAt  *time.Time `json:"finished_at"`
}

// Date is a timestamp that accepts both date-only ("2006-01-02") and
// RFC 3339 encodings. The backend has emitted both for warranty expiry
// depending on its data source.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unrecognized date %q", s)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format("2006-01-02"))
}

// DeviceList is the result of a paginated device fetch.
type DeviceList struct {
	Items []Device
	Total int
}

// buildIndexes builds the per-device module index for every device in the
// list. Called once by the client after decoding a payload.
func (dl *DeviceList) buildIndexes() {
	for i := range dl.Items {
		dl.Items[i].buildModuleIndex()
	}
}

func (d *Device) buildModuleIndex() {
	d.moduleIndex = make(map[int64]*Module, len(d.Modules))
	for i := range d.Modules {
		d.moduleIndex[d.Modules[i].ID] = &d.Modules[i]
	}
}

// ModuleByID resolves a module id against this device's module inventory.
// Returns nil when the id is unknown (the backend does not guarantee the
// reference resolves).
func (d *Device) ModuleByID(id int64) *Module {
	if d.moduleIndex == nil {
		d.buildModuleIndex()
	}
	return d.moduleIndex[id]
}

// SFPModuleFor resolves an interface's pluggable-module reference.
// Returns nil when the interface carries no pluggable or the reference
// does not resolve.
func (d *Device) SFPModuleFor(iface *Interface) *Module {
	if iface.SFPModule == nil {
		return nil
	}
	return d.ModuleByID(iface.SFPModule.ModuleID)
}

// InterfaceSFPText is the derived SFP text for an interface row, used both
// for display and as the synthetic filterable column: the resolved
// module's description, part number and serial, or "none".
func (d *Device) InterfaceSFPText(iface *Interface) string {
	mod := d.SFPModuleFor(iface)
	if mod == nil {
		return "none"
	}
	return fmt.Sprintf("%s %s %s", mod.Description, mod.PartNumber, mod.SerialNumber)
}

// SFPText is the derived SFP text for a module row: the interface the
// pluggable sits in plus its part number, or empty when the module is not
// a pluggable.
func (m *Module) SFPText() string {
	if m.SFPModule == nil {
		return ""
	}
	return fmt.Sprintf("%s %s", m.SFPModule.InterfaceName, m.SFPModule.PartNumber)
}

// WarrantyText renders the under-warranty flag the way the grid filters
// and displays it.
func (m *Module) WarrantyText() string {
	if m.UnderWarranty {
		return "Yes"
	}
	return "No"
}

// ExpiryText renders the warranty expiry date, or empty when unknown.
func (m *Module) ExpiryText() string {
	if m.WarrantyExpiry == nil || m.WarrantyExpiry.IsZero() {
		return ""
	}
	return m.WarrantyExpiry.Format("02/01/2006")
}

// StatusText renders the combined status/line-protocol column for an
// interface ("up/up", "down/-", ...).
func (i *Interface) StatusText() string {
	status := i.Status
	if status == "" {
		status = "-"
	}
	proto := i.LineProtocol
	if proto == "" {
		proto = "-"
	}
	return status + "/" + proto
}

// SyncResponse is the backend's reply to a sync-job submission. The
// backend is loose about the job_id type (numeric or string), so the
// decoder normalizes it, and the raw payload is retained for the
// expandable details block on failures.
type SyncResponse struct {
	Success bool
	JobID   string
	Message string
	Err     string

	raw []byte
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *SyncResponse) UnmarshalJSON(data []byte) error {
	var wire struct {
		Success bool            `json:"success"`
		JobID   json.RawMessage `json:"job_id"`
		Message string          `json:"message"`
		Err     string          `json:"error"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	r.Success = wire.Success
	r.Message = wire.Message
	r.Err = wire.Err
	r.JobID = strings.Trim(string(wire.JobID), `"`)
	if r.JobID == "null" {
		r.JobID = ""
	}
	r.raw = append([]byte(nil), data...)
	return nil
}

// Raw returns the raw response payload as received from the backend.
func (r *SyncResponse) Raw() []byte {
	return r.raw
}

// EoxSyncRequest is the payload for POST /modules/sync-eox. Nil slices
// marshal as JSON null, which the backend reads as "no constraint".
type EoxSyncRequest struct {
	SerialNumbers []string `json:"serial_numbers"`
	DeviceIDs     []int64  `json:"device_ids"`
}

// ConfigOps is the reply to GET /devices/{hostname}/configops.
type ConfigOps struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Result  *struct {
		Configuration   string `json:"configuration"`
		OperationalData string `json:"operationaldata"`
	} `json:"result,omitempty"`
}
