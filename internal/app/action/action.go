// Package action defines the outcome stream every store reducer observes.
//
// An Action is a tagged union: Op names what happened, Phase says where in
// the request lifecycle it happened, and Payload carries the domain delta of
// a fulfilled operation. Plain actions (Phase == PhaseNone) are local state
// changes that never touch the network.
//
// Every orchestrated invocation emits exactly two actions sharing one ID:
//
//	pending → fulfilled(Payload)
//	pending → rejected(Rejection)
package action

import (
	"github.com/google/uuid"
)

// Phase is the lifecycle stage of an orchestrated operation.
type Phase int

const (
	PhaseNone Phase = iota
	PhasePending
	PhaseFulfilled
	PhaseRejected
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseFulfilled:
		return "fulfilled"
	case PhaseRejected:
		return "rejected"
	default:
		return "none"
	}
}

// Action is one event on the outcome stream.
type Action struct {
	// ID correlates the pending and settled actions of one invocation.
	// Zero for plain actions.
	ID uuid.UUID

	Op    Op
	Phase Phase

	// Arg is the input the operation was invoked with.
	Arg any

	// Payload is the domain delta of a fulfilled operation, or the body of a
	// plain action.
	Payload any

	// Rejection is set only when Phase == PhaseRejected.
	Rejection *Rejection
}

// Type returns the action's wire name, e.g. "tasks/addTask/fulfilled".
func (a Action) Type() string {
	if a.Phase == PhaseNone {
		return a.Op.Name
	}
	return a.Op.Name + "/" + a.Phase.String()
}

// Plain builds a non-orchestrated action.
func Plain(op Op, payload any) Action {
	return Action{Op: op, Payload: payload}
}

// Pending builds the pending action of an invocation.
func Pending(id uuid.UUID, op Op, arg any) Action {
	return Action{ID: id, Op: op, Phase: PhasePending, Arg: arg}
}

// Fulfilled builds the fulfilled action of an invocation.
func Fulfilled(id uuid.UUID, op Op, arg, payload any) Action {
	return Action{ID: id, Op: op, Phase: PhaseFulfilled, Arg: arg, Payload: payload}
}

// Rejected builds the rejected action of an invocation.
func Rejected(id uuid.UUID, op Op, arg any, r Rejection) Action {
	return Action{ID: id, Op: op, Phase: PhaseRejected, Arg: arg, Rejection: &r}
}
