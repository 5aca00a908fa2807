package http11

import (
	"errors"
	"fmt"
)

// Kind classifies a parser rejection. Kind values are comparable and can
// be matched with errors.Is against the exported sentinels below.
type Kind uint8

const (
	// KindInvalidRequestLine is a grammar violation in the method,
	// target, or line-terminator region of the request line.
	KindInvalidRequestLine Kind = iota + 1

	// KindInvalidRequestHeader is a grammar violation within a single
	// header line.
	KindInvalidRequestHeader

	// KindInvalidRequestHeadersNoCRLF is a bare CR not followed by LF in
	// the header region.
	KindInvalidRequestHeadersNoCRLF

	// KindUnrecognizedHTTPVersion is a syntactically valid request line
	// whose version token is neither HTTP/1.0 nor HTTP/1.1. Unlike the
	// other three kinds this is recoverable: the caller may choose to
	// respond 505 and keep the connection, per spec.
	KindUnrecognizedHTTPVersion
)

func (k Kind) String() string {
	switch k {
	case KindInvalidRequestLine:
		return "invalid request line"
	case KindInvalidRequestHeader:
		return "invalid request header"
	case KindInvalidRequestHeadersNoCRLF:
		return "invalid request headers: bare CR without LF"
	case KindUnrecognizedHTTPVersion:
		return "unrecognized HTTP version"
	default:
		return "unknown parser error"
	}
}

// Sentinels for errors.Is matching against a *Error's Kind, e.g.
// errors.Is(err, ErrUnrecognizedHTTPVersion).
var (
	ErrInvalidRequestLine          = &Error{Kind: KindInvalidRequestLine}
	ErrInvalidRequestHeader        = &Error{Kind: KindInvalidRequestHeader}
	ErrInvalidRequestHeadersNoCRLF = &Error{Kind: KindInvalidRequestHeadersNoCRLF}
	ErrUnrecognizedHTTPVersion     = &Error{Kind: KindUnrecognizedHTTPVersion}
)

// Error is a classified rejection, optionally carrying an escaped-ASCII
// excerpt of the offending input. The excerpt is populated only when the
// Parser was constructed with Options.ShowErrorDetails; otherwise Detail
// is empty and Error() allocates nothing beyond the formatted message.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("http11: %s", e.Kind)
	}
	return fmt.Sprintf("http11: %s: %s", e.Kind, e.Detail)
}

// Is reports whether target is a *Error with the same Kind, so that
// errors.Is(err, ErrInvalidRequestLine) works regardless of Detail.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return other.Kind == e.Kind
}

// newError builds a classified rejection, attaching an escaped excerpt of
// culprit (bounded to MaxExceptionDetailSize bytes) only when showDetails
// is set.
func newError(kind Kind, showDetails bool, culprit []byte) *Error {
	if !showDetails {
		return &Error{Kind: kind}
	}
	return &Error{Kind: kind, Detail: escapeDetail(culprit)}
}

// escapeDetail renders b as a bounded, escaped-ASCII excerpt suitable for
// inclusion in an error message: non-printable bytes become \xHH escapes,
// and the input is truncated to MaxExceptionDetailSize bytes first.
func escapeDetail(b []byte) string {
	if len(b) > MaxExceptionDetailSize {
		b = b[:MaxExceptionDetailSize]
	}
	out := make([]byte, 0, len(b)+8)
	for _, c := range b {
		switch {
		case c == '\r':
			out = append(out, '\\', 'r')
		case c == '\n':
			out = append(out, '\\', 'n')
		case c == '\t':
			out = append(out, '\\', 't')
		case c < 0x20 || c >= 0x7f:
			out = append(out, fmt.Sprintf("\\x%02x", c)...)
		default:
			out = append(out, c)
		}
	}
	return string(out)
}
