// Package httperror holds the error kinds reported while ingesting a request.
//
// Every failure is terminal for the request it belongs to. Callers match on
// the kind with errors.Is against the sentinel values below, the message is
// informational only.
package httperror

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindRequestLine
	KindHeaderName
	KindHeaderValue
	KindConnectionClosed
	KindUnsupportedEncoding
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindRequestLine:
		return "malformed request line"
	case KindHeaderName:
		return "invalid header name"
	case KindHeaderValue:
		return "invalid header value"
	case KindConnectionClosed:
		return "connection closed"
	case KindUnsupportedEncoding:
		return "unsupported transfer encoding"
	case KindDecode:
		return "body decode failed"
	default:
		return "unknown error"
	}
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

var (
	ErrRequestLine         = &Error{Kind: KindRequestLine}
	ErrHeaderName          = &Error{Kind: KindHeaderName}
	ErrHeaderValue         = &Error{Kind: KindHeaderValue}
	ErrConnectionClosed    = &Error{Kind: KindConnectionClosed}
	ErrUnsupportedEncoding = &Error{Kind: KindUnsupportedEncoding}
	ErrDecode              = &Error{Kind: KindDecode}
)

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Msg != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s (caused by: %v)", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports a match for any *Error of the same kind, so a sentinel matches
// errors carrying their own message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, err error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
