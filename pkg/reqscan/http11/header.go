package http11

import "github.com/yourusername/reqscan/pkg/reqscan/segbuf"

// ParseHeaders parses zero or more header lines followed by a terminating
// CRLF, invoking h.OnHeader once per header line in source order, strictly
// before returning.
//
// It returns (true, consumed, nil) on success, with consumed covering the
// full block including the terminating CRLF; (false, 0, nil) if cur does
// not yet contain a complete block (cur is left entirely unmodified); or
// (false, 0, err) on a malformed block.
//
// No header is handed to h until the entire block has been located and
// validated: the scan walks ahead using offsets relative to cur's current
// position (segbuf.Cursor.IndexByteFrom / SliceAt), and cur.Advance is
// called exactly once, after the terminating CRLF is confirmed.
func (p *Parser) ParseHeaders(cur *segbuf.Cursor, h HeaderHandler) (ok bool, consumed int, err error) {
	type line struct {
		start, end int // offsets relative to cur's current position; end excludes LF
	}
	var lines []line

	pos := 0
	for {
		c1, ok1 := cur.PeekAt(pos)
		if !ok1 {
			return false, 0, nil
		}
		c2, ok2 := cur.PeekAt(pos + 1)
		if !ok2 {
			return false, 0, nil
		}
		if c1 == cr {
			if c2 != lf {
				return false, 0, newError(KindInvalidRequestHeadersNoCRLF, p.opts.ShowErrorDetails, nil)
			}
			pos += 2
			break
		}

		lfOffset, found := cur.IndexByteFrom(pos, lf)
		if !found {
			return false, 0, nil
		}
		lines = append(lines, line{start: pos, end: lfOffset + 1})
		pos = lfOffset + 1
	}

	// Validate every line before invoking any handler: the header handler
	// must never see a partial block, so one pass over the lines checks
	// grammar only and a second re-slices and dispatches. Both passes run
	// before cur.Advance, against offsets relative to cur's pre-advance
	// position; re-slicing a line in the dispatch pass is cheap and avoids
	// holding more than one materialised line alive at a time, which
	// matters because straddling lines share the cursor's one scratch
	// buffer and a later SliceAt invalidates an earlier one.
	for _, ln := range lines {
		raw, ok := cur.SliceAt(ln.start, ln.end-ln.start)
		if !ok {
			return false, 0, nil
		}
		if _, _, terr := tokenizeHeaderLine(raw); terr != nil {
			return false, 0, newError(KindInvalidRequestHeader, p.opts.ShowErrorDetails, raw)
		}
	}

	for _, ln := range lines {
		raw, ok := cur.SliceAt(ln.start, ln.end-ln.start)
		if !ok {
			return false, 0, nil
		}
		name, value, _ := tokenizeHeaderLine(raw)
		h.OnHeader(name, value)
	}

	cur.Advance(pos)
	return true, pos, nil
}

// tokenizeHeaderLine splits one contiguous header line (including its
// terminating CRLF) into name and value per spec §4.3. err is non-nil for
// any grammar violation; the caller classifies it uniformly as
// InvalidRequestHeader.
func tokenizeHeaderLine(raw []byte) (name, value []byte, err error) {
	if len(raw) < 2 || raw[len(raw)-2] != cr || raw[len(raw)-1] != lf {
		return nil, nil, errHeaderGrammar
	}
	body := raw[:len(raw)-2]

	colonIdx := segbuf.IndexByte(body, colon)
	if colonIdx <= 0 {
		return nil, nil, errHeaderGrammar
	}
	rawName := body[:colonIdx]
	for _, c := range rawName {
		if !tokenChar[c] {
			return nil, nil, errHeaderGrammar
		}
	}

	rawValue := body[colonIdx+1:]
	for _, c := range rawValue {
		if c == cr {
			return nil, nil, errHeaderGrammar
		}
	}

	start := 0
	for start < len(rawValue) && isOWS(rawValue[start]) {
		start++
	}
	end := len(rawValue)
	for end > start && isOWS(rawValue[end-1]) {
		end--
	}

	return rawName, rawValue[start:end], nil
}

// errHeaderGrammar is the detail-free error tokenizeHeaderLine returns for
// any rejected line. ParseHeaders does not pass it on: it builds a fresh
// classified *Error with the actual line bytes attached for
// ShowErrorDetails.
var errHeaderGrammar = newError(KindInvalidRequestHeader, false, nil)
