package availability

import (
	"fmt"

	"github.com/nikmy/timekeeper/pkg/errors"
)

type Kind int

const (
	KindUnknown Kind = iota

	// KindInvalidTimeWindow is returned for unparsable timestamps or an end before the start.
	KindInvalidTimeWindow

	// KindMalformedEvent marks an event that cannot be attributed to anyone.
	// It is reported through logs only, never returned.
	KindMalformedEvent

	// KindCollaboratorUnavailable wraps failures of the user or event source.
	KindCollaboratorUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindInvalidTimeWindow:
		return "invalid time window"
	case KindMalformedEvent:
		return "malformed event"
	case KindCollaboratorUnavailable:
		return "collaborator unavailable"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func invalidWindow(err error) error {
	return &Error{Kind: KindInvalidTimeWindow, Err: err}
}

func collaboratorUnavailable(err error) error {
	return &Error{Kind: KindCollaboratorUnavailable, Err: err}
}
