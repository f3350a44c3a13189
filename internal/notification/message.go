package notification

import "errors"

const UnknownErrorMessage = "Unknown error occurred"

// Messenger is implemented by errors that carry a message safe to show users.
type Messenger interface {
	UserMessage() string
}

func Message(err error) string {
	if err == nil {
		return ""
	}
	var m Messenger
	if errors.As(err, &m) {
		if msg := m.UserMessage(); msg != "" {
			return msg
		}
	}
	return UnknownErrorMessage
}

// PublicError pairs an internal error with a message that may be shown to users.
type PublicError struct {
	Msg string
	Err error
}

func NewPublicError(msg string, err error) *PublicError {
	return &PublicError{Msg: msg, Err: err}
}

func (e *PublicError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *PublicError) Unwrap() error { return e.Err }

func (e *PublicError) UserMessage() string { return e.Msg }
