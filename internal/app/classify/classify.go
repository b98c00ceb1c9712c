// Package classify turns the failure of a remote operation into the message
// and status update the global app status store applies.
//
// Three kinds of failure are distinguished:
//
//	*domain.ApplicationError     → ApplicationRejection (envelope, result code != 0)
//	*domain.ValidationError      → ApplicationRejection (rejected locally, same rules)
//	domain.ErrTaskNotFound       → NotFoundLocal (no remote call was made)
//	anything else                → NetworkFailure (no envelope)
//
// The status update is always domain.StatusFailed, whether or not a message
// is produced.
package classify

import (
	"errors"

	"github.com/jsamuelsen11/todosync/internal/app/action"
	"github.com/jsamuelsen11/todosync/internal/domain"
)

// Fallback is shown when a failure carries no usable message.
const Fallback = "Some error occurred"

// MsgTaskNotFound is shown when an update references a task the store does
// not hold.
const MsgTaskNotFound = "Task not found"

// Result is the classified failure plus the status it implies.
type Result struct {
	Status    domain.RequestStatus
	Rejection action.Rejection
}

// Classify maps err to a rejection. When showUserMessage is false, an
// application rejection leaves the global error untouched (nil Message);
// callers use this for expected rejections they render themselves.
// A nil err is classified as a network failure with the fallback message.
func Classify(err error, showUserMessage bool) Result {
	var (
		appErr *domain.ApplicationError
		valErr *domain.ValidationError
	)
	switch {
	case errors.As(err, &appErr):
		return Result{Status: domain.StatusFailed, Rejection: application(appErr, showUserMessage)}
	case errors.As(err, &valErr):
		r := application(&domain.ApplicationError{
			ResultCode: domain.ResultCodeError,
			Messages:   valErr.Messages(),
		}, showUserMessage)
		r.Err = err
		return Result{Status: domain.StatusFailed, Rejection: r}
	case errors.Is(err, domain.ErrTaskNotFound):
		msg := MsgTaskNotFound
		return Result{
			Status:    domain.StatusFailed,
			Rejection: action.Rejection{Kind: action.NotFoundLocal, Message: &msg, Err: err},
		}
	default:
		msg := Fallback
		if err != nil && err.Error() != "" {
			msg = err.Error()
		}
		return Result{
			Status:    domain.StatusFailed,
			Rejection: action.Rejection{Kind: action.NetworkFailure, Message: &msg, Err: err},
		}
	}
}

func application(appErr *domain.ApplicationError, showUserMessage bool) action.Rejection {
	r := action.Rejection{
		Kind:     action.ApplicationRejection,
		Messages: appErr.Messages,
		Err:      appErr,
	}
	if !showUserMessage || appErr.SuppressMessage {
		return r
	}

	msg := Fallback
	if len(appErr.Messages) > 0 {
		msg = appErr.Messages[0]
	}
	r.Message = &msg
	return r
}
