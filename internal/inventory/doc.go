// Package inventory holds the client-side state of the hierarchical device
// grid: row/module selection, per-level column filters, the active sort,
// per-device expansion, and pagination.
//
// All state here is keyed by backend entity ids and kept in sparse
// set-like containers, so it survives the device list being replaced
// wholesale on every page or filter change (ids are assumed stable across
// fetches). Filtering and sorting are pure functions re-derived from the
// current rows on every render; nothing in this package performs I/O.
package inventory
