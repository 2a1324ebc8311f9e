package view

import (
	dErrors "leaders/pkg/domain-errors"
)

// Status classifies the list page's load state.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusOffline
	StatusServerError
	StatusNotFound
	StatusFailed
)

// Status messages, one per failure category.
const (
	msgOffline     = "You appear to be offline. Please check your connection and try again."
	msgServerError = "Something went wrong on our end. Please try again."
	msgNotFound    = "Candidate not found."
	msgFailed      = "Unable to load candidates. Please try again."
)

// LoadState is the owned load/error state of the candidate list. The
// collection is replaced wholesale on every transition, never patched, so
// a late response can only be applied by replacing the whole state. There
// is no in-flight cancellation; tests document that ordering caveat.
type LoadState struct {
	Status  Status
	Message string
}

// Loading is the placeholder state shown before a fetch resolves. Retry
// always passes through here before re-issuing the fetch.
func Loading() LoadState {
	return LoadState{Status: StatusLoading}
}

// Ready marks a successful load.
func Ready() LoadState {
	return LoadState{Status: StatusReady}
}

// Failed classifies a load error into one of the user-facing failure
// categories, each with its own message.
func Failed(err error) LoadState {
	switch dErrors.CodeOf(err) {
	case dErrors.CodeUnavailable:
		return LoadState{Status: StatusOffline, Message: msgOffline}
	case dErrors.CodeNotFound:
		return LoadState{Status: StatusNotFound, Message: msgNotFound}
	case dErrors.CodeInternal:
		return LoadState{Status: StatusServerError, Message: msgServerError}
	default:
		return LoadState{Status: StatusFailed, Message: msgFailed}
	}
}

// IsReady reports whether content loaded and should be shown.
func (s LoadState) IsReady() bool {
	return s.Status == StatusReady
}

// Retryable reports whether the state should offer a manual retry action.
// Failure is never a dead end; not-found shows empty content instead.
func (s LoadState) Retryable() bool {
	switch s.Status {
	case StatusOffline, StatusServerError, StatusFailed:
		return true
	default:
		return false
	}
}

// Retry resets to the loading placeholder; the caller re-issues the fetch.
func (s LoadState) Retry() LoadState {
	return Loading()
}
