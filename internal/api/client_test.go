package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListDevicesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/devices" {
			t.Errorf("path = %s, want /devices", r.URL.Path)
		}
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("page = %s, want 2", got)
		}
		if got := r.URL.Query().Get("page_size"); got != "50" {
			t.Errorf("page_size = %s, want 50", got)
		}
		_, _ = w.Write([]byte(`{"items":[{"id":1,"hostname":"core-sw1"}],"total":73}`))
	}))
	defer srv.Close()

	list, err := NewClient(srv.URL).ListDevices(2, 50)
	if err != nil {
		t.Fatalf("ListDevices() error = %v", err)
	}
	if len(list.Items) != 1 || list.Items[0].Hostname != "core-sw1" {
		t.Errorf("Items = %+v", list.Items)
	}
	if list.Total != 73 {
		t.Errorf("Total = %d, want 73", list.Total)
	}
}

func TestListDevicesLegacyArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"hostname":"core-sw1"},{"id":2,"hostname":"edge-rtr1"}]`))
	}))
	defer srv.Close()

	list, err := NewClient(srv.URL).ListDevices(1, 25)
	if err != nil {
		t.Fatalf("ListDevices() error = %v", err)
	}
	if len(list.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(list.Items))
	}
	// Legacy shape carries no total; the array length stands in.
	if list.Total != 2 {
		t.Errorf("Total = %d, want 2", list.Total)
	}
}

func TestListDevicesUnexpectedShapeDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bare string", `"oops"`},
		{"object without items", `{"devices":[]}`},
		{"empty body", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			list, err := NewClient(srv.URL).ListDevices(1, 25)
			if err != nil {
				t.Fatalf("ListDevices() error = %v, want graceful empty list", err)
			}
			if len(list.Items) != 0 || list.Total != 0 {
				t.Errorf("list = %+v, want empty", list)
			}
		})
	}
}

func TestSyncDevicesNullHostnames(t *testing.T) {
	var received []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Content-Type = %s", r.Header.Get("Content-Type"))
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("request should carry an X-Request-ID")
		}
		received, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"success":true,"job_id":7}`))
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL).SyncDevices(nil)
	if err != nil {
		t.Fatalf("SyncDevices() error = %v", err)
	}
	if string(received) != `{"hostnames":null}` {
		t.Errorf("request body = %s, want {\"hostnames\":null}", received)
	}
	if !resp.Success || resp.JobID != "7" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestSyncDevicesNamedHostnames(t *testing.T) {
	var received []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).SyncDevices([]string{"core-sw1"}); err != nil {
		t.Fatalf("SyncDevices() error = %v", err)
	}
	if string(received) != `{"hostnames":["core-sw1"]}` {
		t.Errorf("request body = %s", received)
	}
}

func TestSyncApplicationFailureIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"collector offline"}`))
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL).SyncDevices(nil)
	if err != nil {
		t.Fatalf("a 2xx success=false reply must not be an error, got %v", err)
	}
	if resp.Success {
		t.Error("Success = true, want false")
	}
	if resp.Message != "collector offline" {
		t.Errorf("Message = %q", resp.Message)
	}
}

func TestUnauthorizedBecomesAuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetAuth("operator", "wrong")
	_, err := c.ListDevices(1, 25)
	if !IsAuthError(err) {
		t.Fatalf("error = %v, want auth error", err)
	}
}

func TestHTTPErrorRetainsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"queue is full"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).SyncDevices(nil)
	apiErr := AsError(err)
	if apiErr == nil {
		t.Fatalf("error = %v, want *Error", err)
	}
	if apiErr.Type != ErrTypeHTTP {
		t.Errorf("Type = %s, want http", apiErr.Type)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", apiErr.StatusCode)
	}
	if string(apiErr.Body) != `{"message":"queue is full"}` {
		t.Errorf("Body = %s", apiErr.Body)
	}
}

func TestNetworkErrorOnClosedServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewClient(srv.URL).ListDevices(1, 25)
	apiErr := AsError(err)
	if apiErr == nil || apiErr.Type != ErrTypeNetwork {
		t.Fatalf("error = %v, want network error", err)
	}
	if apiErr.Unwrap() == nil {
		t.Error("network error should wrap the transport error")
	}
}

func TestGetJobs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/jobs" {
			t.Errorf("path = %s, want /jobs", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"id":1,"category":"sync_devices","status":"running","started_at":"2026-08-30T10:00:00Z","finished_at":null}]`))
	}))
	defer srv.Close()

	jobs, err := NewClient(srv.URL).GetJobs()
	if err != nil {
		t.Fatalf("GetJobs() error = %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("len(jobs) = %d, want 1", len(jobs))
	}
	if jobs[0].Status != "running" || jobs[0].FinishedAt != nil {
		t.Errorf("job = %+v", jobs[0])
	}
}

func TestGetDeviceConfigOpsEscapesHostname(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.EscapedPath()
		_ = json.NewEncoder(w).Encode(ConfigOps{Success: true})
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).GetDeviceConfigOps("core/sw1"); err != nil {
		t.Fatalf("GetDeviceConfigOps() error = %v", err)
	}
	if path != "/devices/core%2Fsw1/configops" {
		t.Errorf("path = %s", path)
	}
}

func TestGetJobsParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"jobs":[]}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GetJobs()
	apiErr := AsError(err)
	if apiErr == nil || apiErr.Type != ErrTypeParse {
		t.Fatalf("error = %v, want parse error", err)
	}
	var target *Error
	if !errors.As(err, &target) {
		t.Error("errors.As should match *Error")
	}
}
