package errorvalues

import "errors"

// Kind classifies a recoverable failure so callers can present it.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches the kind sentinels (ErrValidation, ErrNotFound, ...) besides identity.
func (e *Error) Is(target error) bool {
	t, ok := target.(*kindSentinel)
	return ok && t.kind == e.Kind
}

type kindSentinel struct {
	kind Kind
}

func (s *kindSentinel) Error() string {
	return s.kind.String()
}

var (
	ErrValidation   error = &kindSentinel{kind: KindValidation}
	ErrNotFound     error = &kindSentinel{kind: KindNotFound}
	ErrUnauthorized error = &kindSentinel{kind: KindUnauthorized}
)

var (
	ErrUserExists       = &Error{Kind: KindValidation, Message: "username already exists"}
	ErrUserNotFound     = &Error{Kind: KindNotFound, Message: "user doesn't exist"}
	ErrWrongCredentials = &Error{Kind: KindUnauthorized, Message: "invalid username or password"}
	ErrPasswordMismatch = &Error{Kind: KindValidation, Message: "passwords do not match"}
	ErrInvalidToken     = &Error{Kind: KindUnauthorized, Message: "invalid token"}

	ErrSubjectNotFound = &Error{Kind: KindNotFound, Message: "subject not found"}
	ErrSessionNotFound = &Error{Kind: KindNotFound, Message: "session not found"}
	ErrGoalNotFound    = &Error{Kind: KindNotFound, Message: "goal not found"}
	// Touching another user's entity looks exactly like a miss.
	ErrWrongOwner = &Error{Kind: KindNotFound, Message: "entity belongs to another user"}

	ErrEndBeforeStart    = &Error{Kind: KindValidation, Message: "end time must be after start time"}
	ErrNoSubjectSelected = &Error{Kind: KindValidation, Message: "please select a subject"}
	ErrTimerRunning      = &Error{Kind: KindValidation, Message: "timer is already running"}
	ErrTimerNotRunning   = &Error{Kind: KindValidation, Message: "timer is not running"}
)

func Validation(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
