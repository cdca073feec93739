package workflow

// Kind classifies an engine failure so transports can map it to a
// response code without string matching.
type Kind int

const (
	KindNotFound Kind = iota
	KindInvalidState
	KindConflict
	KindValidation
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func notFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func invalidState(msg string) *Error {
	return &Error{Kind: KindInvalidState, Message: msg}
}

func conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}
