package store

import (
	"github.com/jsamuelsen11/todosync/internal/app/action"
	"github.com/jsamuelsen11/todosync/internal/app/classify"
	"github.com/jsamuelsen11/todosync/internal/domain"
)

// reduceApp observes every action generically. The guard clauses run in a
// fixed order and more than one can apply to the same action: the settled
// initializeApp action updates both the status fields and IsInitialized.
//
//  1. pending    → loading
//  2. rejected   → failed, error per rejectedError
//  3. fulfilled  → succeeded
//  4. initializeApp settled (either way) → IsInitialized
//  5. anything else → unchanged
func reduceApp(s AppState, a action.Action) AppState {
	switch a.Phase {
	case action.PhasePending:
		s.Status = domain.StatusLoading
	case action.PhaseRejected:
		s.Status = domain.StatusFailed
		s.Error = rejectedError(s.Error, a)
	case action.PhaseFulfilled:
		s.Status = domain.StatusSucceeded
	case action.PhaseNone:
		if p, ok := a.Payload.(action.ErrorSet); ok && a.Op == action.SetAppError {
			s.Error = p.Error
		}
	}

	if a.Op == action.InitializeApp && (a.Phase == action.PhaseFulfilled || a.Phase == action.PhaseRejected) {
		s.IsInitialized = true
	}

	return s
}

// rejectedError decides what the global error field holds after a rejection.
// Application rejections of inline-handled operations keep the current value
// because the initiating flow renders them; every other rejection surfaces
// its classified message. A rejection without a message keeps the current
// value.
func rejectedError(current *string, a action.Action) *string {
	r := a.Rejection
	if r == nil {
		msg := classify.Fallback
		return &msg
	}
	if r.Kind == action.ApplicationRejection && a.Op.Tag.InlineHandled() {
		return current
	}
	if r.Message == nil {
		return current
	}
	return r.Message
}
