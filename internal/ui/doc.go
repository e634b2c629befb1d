// Package ui provides terminal output components for the netdash CLI.
//
// The interactive dashboard lives in internal/tui; this package covers the
// one-shot subcommands (devices, sync, sync-eox, jobs, configops), which
// render styled output once and exit without user interaction.
//
// Components:
//
//   - Header: command banner showing the operation and its parameters
//   - Result: success/failure boxes, with optional raw backend payload
//   - Tables: device, interface/module, and job listings
//   - ConfirmAction: y/N prompt shown before submitting sync jobs
//
// Output goes through a Printer so commands can target a buffer in tests.
//
// Logging is controlled via the NETDASH_LOG_LEVEL environment variable.
// When unset, zap logging is silent so the curated output stays clean.
package ui
