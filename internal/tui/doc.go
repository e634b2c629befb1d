// Package tui implements the interactive operator dashboard: a
// hierarchical device grid with per-column filtering, single-key sorting,
// cascading selection and expandable interface/module sub-tables, plus a
// polling background-job screen.
//
// Everything runs on the Bubble Tea event loop: all grid state is owned by
// the model on the single UI goroutine, async work (list fetches, sync
// submissions, job polls) runs as commands whose completions arrive as
// messages. List fetches are tagged with a sequence number and job polls
// with a screen generation, so a slow stale response can never overwrite a
// newer one.
package tui
