// Package action drives the confirm-then-submit flow for backend sync
// jobs as an explicit state machine:
//
//	Idle → Confirming → Submitting → {Succeeded, Failed} → Idle
//
// The orchestrator is pure: it computes the job payload from the current
// selection (empty selection means "everything"), hands the caller a
// confirmation request, and classifies the submission outcome. The caller
// owns the confirmation UI and performs the actual HTTP call, reporting
// back through Finish. Failures are never retried automatically; the
// operator re-initiates explicitly.
package action
