// Package http11 implements the streaming, zero-copy HTTP/1.x
// request-line and header parser: a pair of pure, reentrant functions
// operating over a segmented input view (pkg/reqscan/segbuf), each
// driving a caller-supplied handler via borrowed byte-slice views.
package http11

// MaxExceptionDetailSize bounds the escaped-ASCII excerpt an Error
// carries when ShowErrorDetails is enabled.
const MaxExceptionDetailSize = 128

// Byte constants used throughout the parser.
const (
	sp    = ' '
	cr    = '\r'
	lf    = '\n'
	ht    = '\t'
	colon = ':'
	qmark = '?'
	pct   = '%'
)

var (
	http10Bytes = []byte("HTTP/1.0")
	http11Bytes = []byte("HTTP/1.1")
)

const versionLen = 8 // len("HTTP/1.x")

// isTokenChar reports whether b is a valid RFC 7230 §3.2.6 "tchar":
//
//	tchar = "!" / "#" / "$" / "%" / "&" / "'" / "*" / "+" / "-" / "." /
//	        "^" / "_" / "`" / "|" / "~" / DIGIT / ALPHA
//
// Implemented as a 256-entry lookup table rather than a chain of
// comparisons: a single indexed read is both branch-free and faster than
// the method dictionary's fixed-length compares would be for an
// arbitrary-length scan.
var tokenChar [256]bool

func init() {
	const extra = "!#$%&'*+-.^_`|~"
	for c := 'a'; c <= 'z'; c++ {
		tokenChar[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		tokenChar[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		tokenChar[c] = true
	}
	for i := 0; i < len(extra); i++ {
		tokenChar[extra[i]] = true
	}
}

// isOWS reports whether b is optional whitespace (SP or HTAB).
func isOWS(b byte) bool {
	return b == sp || b == ht
}
