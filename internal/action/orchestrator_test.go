package action

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/tuaninbox/netdash/internal/api"
)

func testDevices() []api.Device {
	return []api.Device{
		{ID: 1, Hostname: "core-sw1"},
		{ID: 2, Hostname: "edge-rtr1"},
		{ID: 3, Hostname: "access-sw2"},
	}
}

func TestDeviceSyncSelectedHostnames(t *testing.T) {
	o := New()

	// One device selected out of a filtered view: the payload names it
	// explicitly, it is not collapsed to "all".
	req, err := o.BeginDeviceSync(testDevices(), []int64{1})
	if err != nil {
		t.Fatalf("BeginDeviceSync() error = %v", err)
	}
	if o.Phase() != PhaseConfirming {
		t.Fatalf("phase = %s, want confirming", o.Phase())
	}
	if req.Title == "" || req.Message == "" {
		t.Error("confirm request should carry title and message")
	}

	sub, err := o.Accept()
	if err != nil {
		t.Fatalf("Accept() error = %v", err)
	}
	if !reflect.DeepEqual(sub.Hostnames, []string{"core-sw1"}) {
		t.Errorf("Hostnames = %v, want [core-sw1]", sub.Hostnames)
	}
	if o.Phase() != PhaseSubmitting {
		t.Errorf("phase = %s after accept, want submitting", o.Phase())
	}
}

func TestDeviceSyncEmptySelectionMeansAll(t *testing.T) {
	o := New()

	if _, err := o.BeginDeviceSync(testDevices(), nil); err != nil {
		t.Fatalf("BeginDeviceSync() error = %v", err)
	}

	sub, err := o.Accept()
	if err != nil {
		t.Fatalf("Accept() error = %v", err)
	}
	// nil marshals as JSON null: the backend's "all devices" form.
	if sub.Hostnames != nil {
		t.Errorf("Hostnames = %v, want nil", sub.Hostnames)
	}
	encoded, _ := json.Marshal(struct {
		Hostnames []string `json:"hostnames"`
	}{sub.Hostnames})
	if string(encoded) != `{"hostnames":null}` {
		t.Errorf("payload = %s, want {\"hostnames\":null}", encoded)
	}
}

func TestDeviceSyncDeclineSendsNothing(t *testing.T) {
	o := New()

	if _, err := o.BeginDeviceSync(testDevices(), nil); err != nil {
		t.Fatalf("BeginDeviceSync() error = %v", err)
	}
	o.Decline()

	if o.Phase() != PhaseIdle {
		t.Errorf("phase = %s after decline, want idle", o.Phase())
	}
	if _, err := o.Accept(); err == nil {
		t.Error("Accept() after decline should be a caller error")
	}
}

func TestDeviceSyncUnresolvableSelection(t *testing.T) {
	o := New()

	// Selected ids no longer present in the current page.
	_, err := o.BeginDeviceSync(testDevices(), []int64{99})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if o.Phase() != PhaseIdle {
		t.Errorf("phase = %s, want idle", o.Phase())
	}
}

func TestModuleSyncSerialNormalization(t *testing.T) {
	dev := &api.Device{
		ID:       1,
		Hostname: "core-sw1",
		Modules: []api.Module{
			{ID: 101, SerialNumber: "ab:12"},
			{ID: 102, SerialNumber: ""},
		},
	}

	o := New()
	if _, err := o.BeginModuleSync(dev, []int64{101, 102}); err != nil {
		t.Fatalf("BeginModuleSync() error = %v", err)
	}

	sub, err := o.Accept()
	if err != nil {
		t.Fatalf("Accept() error = %v", err)
	}
	// Uppercased, blank entry dropped.
	if !reflect.DeepEqual(sub.Eox.SerialNumbers, []string{"AB:12"}) {
		t.Errorf("SerialNumbers = %v, want [AB:12]", sub.Eox.SerialNumbers)
	}
	if sub.Eox.DeviceIDs != nil {
		t.Errorf("DeviceIDs = %v, want nil", sub.Eox.DeviceIDs)
	}
}

func TestModuleSyncAllBlankSerialsAborts(t *testing.T) {
	dev := &api.Device{
		ID:       1,
		Hostname: "core-sw1",
		Modules: []api.Module{
			{ID: 101, SerialNumber: "  "},
			{ID: 102, SerialNumber: ""},
		},
	}

	o := New()
	_, err := o.BeginModuleSync(dev, nil)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if vErr.Message == "" {
		t.Error("validation error should carry a message")
	}
	// The action aborts client-side: no confirmation, no request.
	if o.Phase() != PhaseIdle {
		t.Errorf("phase = %s, want idle", o.Phase())
	}
}

func TestModuleSyncEmptySelectionMeansWholeDevice(t *testing.T) {
	dev := &api.Device{
		ID:       1,
		Hostname: "core-sw1",
		Modules: []api.Module{
			{ID: 101, SerialNumber: "aaa"},
			{ID: 102, SerialNumber: "bbb"},
			{ID: 103, SerialNumber: "aaa"}, // duplicate serial
		},
	}

	o := New()
	if _, err := o.BeginModuleSync(dev, nil); err != nil {
		t.Fatalf("BeginModuleSync() error = %v", err)
	}
	sub, _ := o.Accept()
	if !reflect.DeepEqual(sub.Eox.SerialNumbers, []string{"AAA", "BBB"}) {
		t.Errorf("SerialNumbers = %v, want [AAA BBB]", sub.Eox.SerialNumbers)
	}
}

func TestFinishSuccess(t *testing.T) {
	o := New()
	_, _ = o.BeginDeviceSync(testDevices(), nil)
	_, _ = o.Accept()

	var resp api.SyncResponse
	if err := json.Unmarshal([]byte(`{"success":true,"job_id":42,"message":"queued"}`), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	o.Finish(&resp, nil)

	if o.Phase() != PhaseSucceeded {
		t.Fatalf("phase = %s, want succeeded", o.Phase())
	}
	result := o.Result()
	if result == nil {
		t.Fatal("Result() should not be nil")
	}
	if result.JobID != "42" {
		t.Errorf("JobID = %q, want 42", result.JobID)
	}
	if result.Summary != "queued" {
		t.Errorf("Summary = %q, want queued", result.Summary)
	}
	if !result.NavigateToJobs {
		t.Error("success should advise navigating to the job list")
	}
}

func TestFinishMessageExtractionPriority(t *testing.T) {
	tests := []struct {
		name string
		resp string
		err  error
		want string
	}{
		{
			name: "application failure with message field",
			resp: `{"success":false,"message":"collector offline","error":"ignored"}`,
			want: "collector offline",
		},
		{
			name: "application failure with error field only",
			resp: `{"success":false,"error":"device unreachable"}`,
			want: "device unreachable",
		},
		{
			name: "application failure with no reason",
			resp: `{"success":false}`,
			want: "the backend rejected the sync request",
		},
		{
			name: "http error with message in body",
			err:  api.NewHTTPError(500, "unexpected status code: 500", []byte(`{"message":"queue is full"}`)),
			want: "queue is full",
		},
		{
			name: "http error with error field in body",
			err:  api.NewHTTPError(500, "unexpected status code: 500", []byte(`{"error":"boom"}`)),
			want: "boom",
		},
		{
			name: "transport error falls back to its own message",
			err:  api.NewNetworkError("POST /devices/sync failed", errors.New("dial tcp: connect: connection refused")),
			want: "POST /devices/sync failed: connection refused (is the backend running?)",
		},
		{
			name: "plain error",
			err:  errors.New("something odd"),
			want: "something odd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New()
			_, _ = o.BeginDeviceSync(testDevices(), nil)
			_, _ = o.Accept()

			var resp *api.SyncResponse
			if tt.resp != "" {
				resp = &api.SyncResponse{}
				if err := json.Unmarshal([]byte(tt.resp), resp); err != nil {
					t.Fatalf("unmarshal: %v", err)
				}
			}
			o.Finish(resp, tt.err)

			if o.Phase() != PhaseFailed {
				t.Fatalf("phase = %s, want failed", o.Phase())
			}
			failure := o.Failure()
			if failure == nil {
				t.Fatal("Failure() should not be nil")
			}
			if failure.Message != tt.want {
				t.Errorf("Message = %q, want %q", failure.Message, tt.want)
			}
			if failure.Title == "" {
				t.Error("failure should carry a title")
			}
		})
	}
}

func TestNewActionClearsPreviousOutcome(t *testing.T) {
	o := New()
	_, _ = o.BeginDeviceSync(testDevices(), nil)
	_, _ = o.Accept()
	o.Finish(nil, errors.New("boom"))

	if o.Failure() == nil {
		t.Fatal("setup: expected a failure record")
	}

	// Starting the next action clears the previous result/error before
	// re-entering Confirming.
	if _, err := o.BeginDeviceSync(testDevices(), nil); err != nil {
		t.Fatalf("BeginDeviceSync() error = %v", err)
	}
	if o.Failure() != nil || o.Result() != nil {
		t.Error("previous outcome should be cleared on new action start")
	}
	if o.Phase() != PhaseConfirming {
		t.Errorf("phase = %s, want confirming", o.Phase())
	}
}

func TestFinishIgnoredOutsideSubmitting(t *testing.T) {
	o := New()
	o.Finish(nil, errors.New("late response"))
	if o.Phase() != PhaseIdle || o.Failure() != nil {
		t.Error("Finish outside Submitting must be ignored")
	}
}
