package http11

import "github.com/yourusername/reqscan/pkg/reqscan/segbuf"

// Options configures a Parser. The zero value (ShowErrorDetails: false) is
// the safe default for production use; enabling ShowErrorDetails is
// intended for development and debugging, since it attaches an
// escaped-ASCII excerpt of the offending input to every rejection.
type Options struct {
	ShowErrorDetails bool
}

// Parser parses HTTP/1.x request lines and header blocks from a segmented
// input view. A Parser carries no mutable state: it holds only its
// immutable Options, so a single instance may be shared across
// goroutines and reused across any number of unrelated requests.
type Parser struct {
	opts Options
}

// NewParser returns a Parser configured with opts.
func NewParser(opts Options) *Parser {
	return &Parser{opts: opts}
}

// Parse runs ParseRequestLine followed by ParseHeaders against the same
// cursor, a convenience for callers that want both steps in one call. On
// any incomplete or rejected result from either stage, it returns
// immediately with that stage's result; cur is left unadvanced past
// whatever the failing stage consumed (ParseRequestLine and ParseHeaders
// each already guarantee this for their own portion).
func (p *Parser) Parse(cur *segbuf.Cursor, sh StartLineHandler, hh HeaderHandler) (ok bool, consumed int, err error) {
	lineOK, lineConsumed, err := p.ParseRequestLine(cur, sh)
	if err != nil || !lineOK {
		return false, 0, err
	}

	headersOK, headersConsumed, err := p.ParseHeaders(cur, hh)
	if err != nil || !headersOK {
		return false, 0, err
	}

	return true, lineConsumed + headersConsumed, nil
}
