package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tuaninbox/netdash/internal/logging"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 15 * time.Second

	// DefaultBaseURL is the backend used when no server is configured.
	DefaultBaseURL = "http://localhost:8000"
)

// Client is an HTTP client for the netdash inventory backend.
//
// The client performs exactly one request per call; it never retries.
// Sync submissions must not be retried automatically (failed jobs are
// re-initiated by the operator), and list/poll callers already discard
// stale responses, so a retry loop would only add ways for an old
// response to arrive late.
type Client struct {
	// BaseURL is the backend base URL (e.g. "http://inventory:8000").
	BaseURL string

	// Username and Password are HTTP Basic Auth credentials. Auth is
	// skipped entirely when Username is empty.
	Username string
	Password string

	// HTTPClient is the underlying HTTP client.
	HTTPClient *http.Client
}

// NewClient creates a backend client for the given base URL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetAuth sets HTTP Basic Auth credentials.
func (c *Client) SetAuth(username, password string) {
	c.Username = username
	c.Password = password
}

// SetTimeout sets the HTTP request timeout.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// ListDevices fetches one page of the device inventory.
//
// The backend has shipped two response shapes: the current envelope
// {"items": [...], "total": N} and a legacy bare array (where total is
// the array length). Both are accepted. Any other shape is logged and
// treated as an empty inventory rather than an error, so the grid
// degrades to "no devices" instead of crashing.
func (c *Client) ListDevices(page, pageSize int) (*DeviceList, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))

	body, err := c.get("/devices?" + q.Encode())
	if err != nil {
		return nil, err
	}

	list, err := decodeDeviceList(body)
	if err != nil {
		logging.Warn("unexpected device list payload, treating as empty",
			zap.Error(err),
			zap.Int("body_length", len(body)),
		)
		return &DeviceList{Items: nil, Total: 0}, nil
	}
	list.buildIndexes()
	return list, nil
}

func decodeDeviceList(body []byte) (*DeviceList, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty response body")
	}

	switch trimmed[0] {
	case '[':
		// Legacy shape: bare device array, total inferred.
		var items []Device
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decoding device array: %w", err)
		}
		return &DeviceList{Items: items, Total: len(items)}, nil

	case '{':
		var envelope struct {
			Items *[]Device `json:"items"`
			Total *int      `json:"total"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, fmt.Errorf("decoding device envelope: %w", err)
		}
		if envelope.Items == nil {
			return nil, fmt.Errorf("object payload has no items field")
		}
		list := &DeviceList{Items: *envelope.Items}
		if envelope.Total != nil {
			list.Total = *envelope.Total
		} else {
			list.Total = len(list.Items)
		}
		return list, nil

	default:
		return nil, fmt.Errorf("payload is neither array nor object")
	}
}

// SyncDevices submits a configuration-sync job. A nil hostnames slice
// marshals as JSON null, which the backend reads as "sync all devices".
//
// An application-level failure (success=false in a 2xx response) is
// returned as a response, not an error; the caller decides how to
// surface it.
func (c *Client) SyncDevices(hostnames []string) (*SyncResponse, error) {
	payload := struct {
		Hostnames []string `json:"hostnames"`
	}{Hostnames: hostnames}

	return c.postSync("/devices/sync", payload)
}

// SyncModulesEox submits a warranty/EOX sync job for the given module
// serial numbers and/or device ids. Nil slices marshal as null.
func (c *Client) SyncModulesEox(req EoxSyncRequest) (*SyncResponse, error) {
	return c.postSync("/modules/sync-eox", req)
}

// GetJobs fetches the full background-job list.
func (c *Client) GetJobs() ([]Job, error) {
	body, err := c.get("/jobs")
	if err != nil {
		return nil, err
	}

	var jobs []Job
	if err := json.Unmarshal(body, &jobs); err != nil {
		return nil, NewParseError("failed to parse job list", err)
	}
	return jobs, nil
}

// GetDeviceConfigOps fetches a device's stored configuration and
// operational data by hostname.
func (c *Client) GetDeviceConfigOps(hostname string) (*ConfigOps, error) {
	body, err := c.get("/devices/" + url.PathEscape(hostname) + "/configops")
	if err != nil {
		return nil, err
	}

	var ops ConfigOps
	if err := json.Unmarshal(body, &ops); err != nil {
		return nil, NewParseError("failed to parse configops response", err)
	}
	return &ops, nil
}

func (c *Client) postSync(path string, payload any) (*SyncResponse, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, NewParseError("failed to encode request payload", err)
	}

	body, err := c.do(http.MethodPost, path, encoded)
	if err != nil {
		return nil, err
	}

	var resp SyncResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, NewParseError("failed to parse sync response", err)
	}
	return &resp, nil
}

func (c *Client) get(path string) ([]byte, error) {
	return c.do(http.MethodGet, path, nil)
}

// do performs a single request and returns the response body. Non-2xx
// statuses become typed errors carrying the raw body for diagnostics.
func (c *Client) do(method, path string, payload []byte) ([]byte, error) {
	requestID := uuid.NewString()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reader)
	if err != nil {
		return nil, NewNetworkError("failed to create request", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if c.Username != "" {
		req.SetBasicAuth(c.Username, c.Password)
	}

	logging.LogAPIRequest(requestID, method, path, len(payload))
	start := time.Now()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logging.LogAPIFailure(requestID, method, path, err)
		return nil, NewNetworkError(fmt.Sprintf("%s %s failed", method, path), err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logging.LogAPIFailure(requestID, method, path, err)
		return nil, NewNetworkError("failed to read response body", err)
	}

	logging.LogAPIResponse(requestID, method, path, resp.StatusCode, len(body), time.Since(start))

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, NewAuthError("authentication failed (check credentials)")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewHTTPError(resp.StatusCode,
			fmt.Sprintf("unexpected status code: %d", resp.StatusCode), body)
	}

	return body, nil
}
