// Package api provides the HTTP client for the netdash inventory backend.
//
// It covers the five backend operations the dashboard consumes: listing
// devices (paginated), submitting configuration-sync and warranty/EOX-sync
// jobs, listing background jobs, and fetching a device's configuration and
// operational data.
//
// All responses are decoded defensively: the device list accepts both the
// current envelope shape and the legacy bare-array shape, and sync
// responses keep the raw payload around for diagnostic display.
package api
