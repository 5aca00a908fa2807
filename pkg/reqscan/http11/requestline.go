package http11

import "github.com/yourusername/reqscan/pkg/reqscan/segbuf"

// ParseRequestLine parses one "METHOD SP target SP HTTP/x.y CRLF" line from
// cur and invokes h.OnStartLine exactly once on success.
//
// It returns (true, consumed, nil) on success, (false, 0, nil) if cur does
// not yet contain a full line (the caller should feed more bytes and retry
// from the same cursor position — cur is left entirely unmodified), or
// (false, 0, err) on a malformed line, where err is a classified *Error.
//
// The errors.Is(err, ErrUnrecognizedHTTPVersion) case is the one recoverable
// rejection: the line was otherwise well-formed, and a caller may choose to
// answer 505 and keep parsing rather than close the connection.
func (p *Parser) ParseRequestLine(cur *segbuf.Cursor, h StartLineHandler) (ok bool, consumed int, err error) {
	lineLen, found := cur.IndexByte(lf)
	if !found {
		return false, 0, nil
	}
	lineLen++ // include the LF itself

	line, ok := cur.Slice(lineLen)
	if !ok {
		return false, 0, nil
	}

	sl, err := p.parseRequestLineBytes(line)
	if err != nil {
		return false, 0, err
	}

	cur.Advance(lineLen)
	h.OnStartLine(sl)
	return true, lineLen, nil
}

// parseRequestLineBytes parses a single, already-materialised line
// (including its terminating CRLF) per spec §4.1. line is never retained
// past the call: the returned StartLine's slices alias it directly.
func (p *Parser) parseRequestLineBytes(line []byte) (StartLine, error) {
	var sl StartLine

	// Method recognition: dictionary compare first, then a token-char scan
	// for a custom method. Either way we stop at the first SP.
	methodEnd := indexOf(line, sp)
	if methodEnd <= 0 {
		return sl, p.rejectLine(line)
	}
	methodWord := line[:methodEnd]
	for _, c := range methodWord {
		if !tokenChar[c] {
			return sl, p.rejectLine(line)
		}
	}
	sl.Method = lookupMethod(methodWord)
	if sl.Method == MethodUnknown {
		sl.Method = MethodCUSTOM
		sl.CustomMethod = methodWord
	}

	rest := line[methodEnd+1:]

	// Target scan: path, optional '?query', ends at the next SP.
	targetEnd := indexOf(rest, sp)
	if targetEnd < 0 {
		return sl, p.rejectLine(line)
	}
	target := rest[:targetEnd]
	if len(target) == 0 {
		return sl, p.rejectLine(line)
	}
	if target[0] == pct {
		return sl, p.rejectLine(line)
	}
	for _, c := range target {
		if c == cr {
			return sl, p.rejectLine(line)
		}
	}

	sl.Target = target
	if qi := indexOf(target, qmark); qi >= 0 {
		sl.Path = target[:qi]
		sl.Query = target[qi+1:]
	} else {
		sl.Path = target
		sl.Query = target[len(target):]
	}
	if len(sl.Path) == 0 {
		return sl, p.rejectLine(line)
	}
	// path_encoded reflects the '%' byte seen anywhere during the target
	// scan (path and query share one scan pass, per the single path_encoded
	// flag the algorithm threads through both), not just within path.
	sl.PathEncoded = indexOf(target, pct) >= 0

	rest = rest[targetEnd+1:]

	// Version: exactly versionLen bytes, then CR then LF.
	if len(rest) < versionLen+2 {
		return sl, p.rejectLine(line)
	}
	versionWord := rest[:versionLen]
	if rest[versionLen] != cr || rest[versionLen+1] != lf {
		return sl, p.rejectLine(line)
	}
	if len(rest) != versionLen+2 {
		// trailing bytes between version and CRLF
		return sl, p.rejectLine(line)
	}

	sl.Version = lookupVersion(versionWord)
	if sl.Version == VersionUnknown {
		return sl, newError(KindUnrecognizedHTTPVersion, p.opts.ShowErrorDetails, line)
	}

	return sl, nil
}

// rejectLine builds an InvalidRequestLine error for line.
func (p *Parser) rejectLine(line []byte) error {
	return newError(KindInvalidRequestLine, p.opts.ShowErrorDetails, line)
}

// indexOf is a thin wrapper over the vectorised scanner for already-
// materialised contiguous slices, distinct from segbuf.Cursor.IndexByte
// which operates across segment boundaries.
func indexOf(b []byte, delim byte) int {
	return segbuf.IndexByte(b, delim)
}
