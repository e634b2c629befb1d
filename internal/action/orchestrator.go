package action

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tuaninbox/netdash/internal/api"
)

// Phase is the orchestrator's current state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseConfirming
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseConfirming:
		return "confirming"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("Phase(%d)", p)
	}
}

// Kind identifies which sync job an action submits.
type Kind int

const (
	KindSyncDevices Kind = iota
	KindSyncModulesEox
)

// ConfirmRequest describes the confirmation the modal should present
// before anything is sent.
type ConfirmRequest struct {
	Title       string
	Message     string
	ConfirmText string
	CancelText  string
}

// Submission is the payload handed to the caller once the operator
// confirms. Exactly one of the two payloads is meaningful, per Kind.
type Submission struct {
	Kind      Kind
	Hostnames []string // device sync; nil means all devices
	Eox       api.EoxSyncRequest
}

// Result records a successful submission.
type Result struct {
	Summary string
	JobID   string

	// NavigateToJobs advises the shell to switch to the job listing.
	// Advisory only; the result stays visible regardless.
	NavigateToJobs bool
}

// Failure is the structured error record surfaced on the error panel.
type Failure struct {
	Title   string
	Message string

	// Details is the raw error payload for the expandable technical
	// details block. May be nil.
	Details []byte
}

// ValidationError is a client-side precondition failure: the action
// aborts before any confirmation or request.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Orchestrator is the tagged-state sync-action driver. Not safe for
// concurrent use; it is owned by the single UI loop.
type Orchestrator struct {
	phase   Phase
	kind    Kind
	pending Submission
	result  *Result
	failure *Failure
}

// New creates an idle orchestrator.
func New() *Orchestrator {
	return &Orchestrator{phase: PhaseIdle}
}

// Phase returns the current state.
func (o *Orchestrator) Phase() Phase {
	return o.phase
}

// Result returns the success record, or nil.
func (o *Orchestrator) Result() *Result {
	return o.result
}

// Failure returns the failure record, or nil.
func (o *Orchestrator) Failure() *Failure {
	return o.failure
}

// Submitting reports whether a submission is in flight.
func (o *Orchestrator) Submitting() bool {
	return o.phase == PhaseSubmitting
}

// ClearOutcome dismisses a lingering result or failure without starting
// a new action.
func (o *Orchestrator) ClearOutcome() {
	if o.phase == PhaseSucceeded || o.phase == PhaseFailed {
		o.phase = PhaseIdle
	}
	o.result = nil
	o.failure = nil
}

// BeginDeviceSync starts a configuration-sync action for the selected
// devices, or all devices when the selection is empty ("empty selection
// means everything", canonically represented as a nil hostname list).
// Selected ids are resolved to hostnames against the passed device list.
//
// On success the orchestrator enters Confirming and the returned request
// describes the confirmation to present. A ValidationError leaves the
// orchestrator Idle and nothing is sent.
func (o *Orchestrator) BeginDeviceSync(devices []api.Device, selectedIDs []int64) (ConfirmRequest, error) {
	o.reset(KindSyncDevices)

	var hostnames []string
	if len(selectedIDs) > 0 {
		byID := make(map[int64]string, len(devices))
		for _, d := range devices {
			byID[d.ID] = d.Hostname
		}
		for _, id := range selectedIDs {
			if hostname, ok := byID[id]; ok && hostname != "" {
				hostnames = append(hostnames, hostname)
			}
		}
		if len(hostnames) == 0 {
			return ConfirmRequest{}, &ValidationError{
				Message: "selected devices are no longer in the current view",
			}
		}
	}

	o.pending = Submission{Kind: KindSyncDevices, Hostnames: hostnames}
	o.phase = PhaseConfirming

	message := "Submit a configuration sync job for ALL devices?"
	if len(hostnames) > 0 {
		message = fmt.Sprintf("Submit a configuration sync job for %d selected device(s)?", len(hostnames))
	}
	return ConfirmRequest{
		Title:       "Sync Devices",
		Message:     message,
		ConfirmText: "Sync",
		CancelText:  "Cancel",
	}, nil
}

// BeginModuleSync starts a warranty/EOX sync action for the selected
// modules of one device, or all of the device's modules when the module
// selection is empty. Serial numbers are trimmed, uppercased and
// deduplicated, with blank entries dropped; if nothing usable remains
// the action aborts client-side with a ValidationError and no request is
// issued.
func (o *Orchestrator) BeginModuleSync(dev *api.Device, selectedModuleIDs []int64) (ConfirmRequest, error) {
	o.reset(KindSyncModulesEox)

	targets := dev.Modules
	if len(selectedModuleIDs) > 0 {
		wanted := make(map[int64]struct{}, len(selectedModuleIDs))
		for _, id := range selectedModuleIDs {
			wanted[id] = struct{}{}
		}
		targets = nil
		for _, m := range dev.Modules {
			if _, ok := wanted[m.ID]; ok {
				targets = append(targets, m)
			}
		}
	}

	serials := NormalizeSerials(targets)
	if len(serials) == 0 {
		return ConfirmRequest{}, &ValidationError{
			Message: "No valid serial numbers found for selected modules",
		}
	}

	o.pending = Submission{
		Kind: KindSyncModulesEox,
		Eox:  api.EoxSyncRequest{SerialNumbers: serials},
	}
	o.phase = PhaseConfirming

	scope := "all modules"
	if len(selectedModuleIDs) > 0 {
		scope = fmt.Sprintf("%d selected module(s)", len(selectedModuleIDs))
	}
	return ConfirmRequest{
		Title:       "Sync Warranty Information",
		Message:     fmt.Sprintf("Submit a warranty/EOX sync job for %s on %s (%d serial number(s))?", scope, dev.Hostname, len(serials)),
		ConfirmText: "Sync",
		CancelText:  "Cancel",
	}, nil
}

// NormalizeSerials extracts the usable serial numbers from a module
// list: trimmed, uppercased, blanks dropped, duplicates removed,
// original order preserved.
func NormalizeSerials(modules []api.Module) []string {
	values := make([]string, len(modules))
	for i, m := range modules {
		values[i] = m.SerialNumber
	}
	return NormalizeSerialStrings(values)
}

// NormalizeSerialStrings applies the serial normalization rule to raw
// strings, for callers that take serials directly (the CLI sync-eox
// command).
func NormalizeSerialStrings(values []string) []string {
	var serials []string
	seen := make(map[string]struct{})
	for _, v := range values {
		serial := strings.ToUpper(strings.TrimSpace(v))
		if serial == "" {
			continue
		}
		if _, ok := seen[serial]; ok {
			continue
		}
		seen[serial] = struct{}{}
		serials = append(serials, serial)
	}
	return serials
}

// Decline aborts a pending confirmation. No request is sent and no state
// beyond the transient action is touched.
func (o *Orchestrator) Decline() {
	if o.phase != PhaseConfirming {
		return
	}
	o.phase = PhaseIdle
	o.pending = Submission{}
}

// Accept moves Confirming to Submitting and returns the payload the
// caller must now submit. Calling Accept in any other phase is a caller
// error.
func (o *Orchestrator) Accept() (Submission, error) {
	if o.phase != PhaseConfirming {
		return Submission{}, fmt.Errorf("accept called in phase %s", o.phase)
	}
	o.phase = PhaseSubmitting
	return o.pending, nil
}

// Finish records the submission outcome. A nil err with resp.Success
// moves to Succeeded; anything else moves to Failed with a structured
// error whose message is extracted in priority order: server-supplied
// message, server-supplied error, transport error text, generic
// fallback.
func (o *Orchestrator) Finish(resp *api.SyncResponse, err error) {
	if o.phase != PhaseSubmitting {
		return
	}

	if err == nil && resp != nil && resp.Success {
		summary := resp.Message
		if summary == "" {
			summary = o.successSummary()
		}
		o.result = &Result{
			Summary:        summary,
			JobID:          resp.JobID,
			NavigateToJobs: true,
		}
		o.phase = PhaseSucceeded
		return
	}

	o.failure = o.buildFailure(resp, err)
	o.phase = PhaseFailed
}

func (o *Orchestrator) successSummary() string {
	if o.kind == KindSyncModulesEox {
		return "Warranty/EOX sync job submitted"
	}
	return "Configuration sync job submitted"
}

func (o *Orchestrator) failureTitle() string {
	if o.kind == KindSyncModulesEox {
		return "Warranty/EOX Sync Failed"
	}
	return "Device Sync Failed"
}

// buildFailure applies the message-extraction ladder and keeps the raw
// payload for the technical-details block.
func (o *Orchestrator) buildFailure(resp *api.SyncResponse, err error) *Failure {
	f := &Failure{Title: o.failureTitle()}

	// Application-level failure: success=false in a 2xx response.
	if err == nil && resp != nil {
		switch {
		case resp.Message != "":
			f.Message = resp.Message
		case resp.Err != "":
			f.Message = resp.Err
		default:
			f.Message = "the backend rejected the sync request"
		}
		f.Details = resp.Raw()
		return f
	}

	// Transport or HTTP failure: prefer a message buried in the error
	// body over the transport error's own text.
	if apiErr := api.AsError(err); apiErr != nil {
		if msg := extractBodyMessage(apiErr.Body); msg != "" {
			f.Message = msg
		} else {
			f.Message = apiErr.Message
		}
		f.Details = apiErr.Body
		return f
	}

	if err != nil {
		f.Message = err.Error()
	} else {
		f.Message = "sync request failed for an unknown reason"
	}
	return f
}

// extractBodyMessage pulls a human-readable reason out of an error
// response body, trying the "message" field then the "error" field.
func extractBodyMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var wire struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	if err := json.Unmarshal(body, &wire); err != nil {
		return ""
	}
	if wire.Message != "" {
		return wire.Message
	}
	return wire.Err
}

// reset clears the previous outcome before re-entering Confirming: a
// new action invocation always starts from a clean slate.
func (o *Orchestrator) reset(kind Kind) {
	o.kind = kind
	o.phase = PhaseIdle
	o.pending = Submission{}
	o.result = nil
	o.failure = nil
}
