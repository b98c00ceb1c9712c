package action

// Kind classifies a failed operation.
type Kind int

const (
	// NetworkFailure is a transport error, timeout or unexpected panic: no
	// structured envelope was received.
	NetworkFailure Kind = iota + 1

	// ApplicationRejection is an envelope with a non-zero result code.
	ApplicationRejection

	// NotFoundLocal means the referenced entity was absent from the store and
	// no remote call was attempted.
	NotFoundLocal
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case NetworkFailure:
		return "network_failure"
	case ApplicationRejection:
		return "application_rejection"
	case NotFoundLocal:
		return "not_found_local"
	default:
		return "unknown"
	}
}

// Rejection is the classified failure of one invocation.
type Rejection struct {
	Kind Kind

	// Messages holds the envelope's messages for application rejections so
	// inline UIs can render them.
	Messages []string

	// Message is the text destined for the global error field. Nil leaves
	// the field untouched.
	Message *string

	// Err is the underlying failure.
	Err error
}

// Text returns Message, or "" when it is nil.
func (r *Rejection) Text() string {
	if r == nil || r.Message == nil {
		return ""
	}
	return *r.Message
}

// Outcome is what the caller of an orchestrated operation observes: either a
// value or a rejection, never a raised error.
type Outcome[T any] struct {
	Value     T
	Rejection *Rejection
}

// Fulfilled reports whether the operation succeeded.
func (o Outcome[T]) Fulfilled() bool {
	return o.Rejection == nil
}
