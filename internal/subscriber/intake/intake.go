// Package intake models the newsletter signup form lifecycle as seen by
// a renderer: idle, submitting, then either a terminal success or back
// to idle with a notice.
package intake

import (
	"time"

	dErrors "leaders/pkg/domain-errors"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSuccess
)

// NoticeTTL is how long a failure notice stays visible before the form
// clears it. Renderers own the timer; the form only carries the value.
const NoticeTTL = 5 * time.Second

const (
	noticeOffline = "You appear to be offline. Please try again when connected."
	noticeGeneric = "Failed to subscribe. Please try again."
)

// Form tracks one signup attempt. Success is terminal: a subscribed
// visitor is never shown the input again.
type Form struct {
	Phase  Phase
	Email  string
	Notice string
}

func NewForm() Form {
	return Form{Phase: PhaseIdle}
}

// Submit moves an idle form into the submitting phase, keeping the
// address so a failure can restore it. Submitting and success phases
// ignore further submits.
func (f Form) Submit(email string) Form {
	if f.Phase != PhaseIdle {
		return f
	}
	return Form{Phase: PhaseSubmitting, Email: email}
}

// Complete marks the attempt successful. The form stays in success
// permanently; there is no reset path.
func (f Form) Complete() Form {
	if f.Phase != PhaseSubmitting {
		return f
	}
	return Form{Phase: PhaseSuccess, Email: f.Email}
}

// Reject returns a submitting form to idle, keeping the typed address
// and attaching a notice sized to the failure.
func (f Form) Reject(err error) Form {
	if f.Phase != PhaseSubmitting {
		return f
	}
	notice := noticeGeneric
	switch {
	case dErrors.HasCode(err, dErrors.CodeUnavailable):
		notice = noticeOffline
	case dErrors.HasCode(err, dErrors.CodeBadRequest):
		notice = err.Error()
	}
	return Form{Phase: PhaseIdle, Email: f.Email, Notice: notice}
}

// Submittable reports whether the form accepts input.
func (f Form) Submittable() bool {
	return f.Phase == PhaseIdle
}
