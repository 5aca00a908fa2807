// Package segbuf implements the segmented input view the parser in
// pkg/reqscan/http11 is driven from: a logically contiguous byte stream
// physically represented as an ordered sequence of non-overlapping byte
// segments (for example, successive reads off a socket that have not yet
// been copied into one buffer).
//
// Segments never mutates the byte slices handed to it and never performs
// I/O; it is a pure, reentrant view over memory the caller already owns.
package segbuf

import "github.com/valyala/bytebufferpool"

// Segments is a read-only, ordered sequence of contiguous byte segments.
// The zero value is an empty view; use New or Append to populate it.
type Segments struct {
	segs  [][]byte
	total int
}

// New returns a Segments view over a single contiguous slice.
func New(b []byte) *Segments {
	s := &Segments{}
	if len(b) > 0 {
		s.segs = append(s.segs, b)
		s.total = len(b)
	}
	return s
}

// FromSlices returns a Segments view over an already-segmented input.
// Empty segments are skipped; they carry no bytes to index.
func FromSlices(segs [][]byte) *Segments {
	s := &Segments{}
	for _, seg := range segs {
		s.Append(seg)
	}
	return s
}

// Append adds another segment to the tail of the view, as more data
// arrives from the caller's transport. Appending does not affect any
// Cursor already positioned earlier in the view.
func (s *Segments) Append(b []byte) {
	if len(b) == 0 {
		return
	}
	s.segs = append(s.segs, b)
	s.total += len(b)
}

// Len reports the total number of bytes across all segments.
func (s *Segments) Len() int { return s.total }

// Cursor tracks a read position within a Segments view and materialises
// contiguous sub-ranges on demand. A Cursor never mutates the underlying
// Segments and never reads past the position it reports.
type Cursor struct {
	s       *Segments
	seg     int // index of the segment containing pos
	off     int // byte offset within segs[seg]
	pos     int // absolute offset from the start of the view
	scratch *bytebufferpool.ByteBuffer
}

// NewCursor returns a Cursor positioned at the start of s.
func NewCursor(s *Segments) *Cursor {
	return &Cursor{s: s}
}

// Pos reports the cursor's absolute offset from the start of the view.
func (c *Cursor) Pos() int { return c.pos }

// Remaining reports how many bytes lie between the cursor and the end of
// the view.
func (c *Cursor) Remaining() int { return c.s.total - c.pos }

// Release returns any pooled scratch memory the cursor is holding. Callers
// should Release a Cursor once its materialised views are no longer
// needed (i.e. once the handler callback that consumed them has
// returned).
func (c *Cursor) Release() {
	if c.scratch != nil {
		putScratch(c.scratch)
		c.scratch = nil
	}
}

// scratchBuf lazily acquires the cursor's pooled scratch buffer.
func (c *Cursor) scratchBuf() *bytebufferpool.ByteBuffer {
	if c.scratch == nil {
		c.scratch = getScratch()
	}
	c.scratch.Reset()
	return c.scratch
}

// currentSeg returns the remainder of the segment currently under the
// cursor, or nil if the cursor has reached the end of the view.
func (c *Cursor) currentSeg() []byte {
	for c.seg < len(c.s.segs) && c.off >= len(c.s.segs[c.seg]) {
		c.seg++
		c.off = 0
	}
	if c.seg >= len(c.s.segs) {
		return nil
	}
	return c.s.segs[c.seg][c.off:]
}

// Peek returns the byte at the cursor without advancing it. ok is false
// if the cursor is at the end of the view.
func (c *Cursor) Peek() (b byte, ok bool) {
	seg := c.currentSeg()
	if len(seg) == 0 {
		return 0, false
	}
	return seg[0], true
}

// PeekAt returns the byte n positions ahead of the cursor (n=0 is the
// current byte) without advancing it. ok is false if that position lies
// beyond the end of the view.
//
// This is the portable equivalent of the teacher's stack-allocated 2-byte
// scratch peek: the caller typically asks for n in {0,1} and the result
// lives entirely on the stack, never touching the heap.
//
//go:noinline
func (c *Cursor) PeekAt(n int) (b byte, ok bool) {
	seg, off, ok := c.locate(n)
	if !ok || seg >= len(c.s.segs) {
		return 0, false
	}
	return c.s.segs[seg][off], true
}

// Advance moves the cursor forward by n bytes. n must not exceed
// Remaining(); callers establish that bound before calling Advance (via
// IndexByte or an explicit Remaining check), per the parser's invariant
// that it never reads past bytes it has validated.
func (c *Cursor) Advance(n int) {
	for n > 0 {
		seg := c.currentSeg()
		if len(seg) == 0 {
			return
		}
		take := n
		if take > len(seg) {
			take = len(seg)
		}
		c.off += take
		c.pos += take
		n -= take
	}
}

// locate resolves the (segment index, in-segment offset) corresponding to
// a position rel bytes ahead of the cursor, without mutating c. ok is
// false if rel lies beyond the end of the view.
func (c *Cursor) locate(rel int) (seg, off int, ok bool) {
	if rel < 0 || rel > c.Remaining() {
		return 0, 0, false
	}
	seg, off = c.seg, c.off+rel
	for seg < len(c.s.segs) && off >= len(c.s.segs[seg]) {
		off -= len(c.s.segs[seg])
		seg++
	}
	return seg, off, true
}

// IndexByte returns the offset, relative to the cursor's current
// position, of the first occurrence of delim at or after the cursor.
// found is false if delim does not appear in the remainder of the view.
// The cursor is not advanced. Equivalent to IndexByteFrom(0, delim).
func (c *Cursor) IndexByte(delim byte) (offset int, found bool) {
	return c.IndexByteFrom(0, delim)
}

// IndexByteFrom returns the offset, relative to the cursor's current
// position (not relative to start), of the first occurrence of delim at
// or after start bytes ahead of the cursor. It lets a caller scan forward
// through a region it has already partially inspected without re-walking
// or advancing the cursor, which is how the header-block parser resumes
// its LF search line by line without committing any bytes until the
// whole block parses successfully.
func (c *Cursor) IndexByteFrom(start int, delim byte) (offset int, found bool) {
	seg, off, ok := c.locate(start)
	if !ok {
		return 0, false
	}
	scanned := start
	for seg < len(c.s.segs) {
		s := c.s.segs[seg]
		if off >= len(s) {
			seg++
			off = 0
			continue
		}
		rest := s[off:]
		if i := IndexByte(rest, delim); i >= 0 {
			return scanned + i, true
		}
		scanned += len(rest)
		seg++
		off = 0
	}
	return 0, false
}

// Slice materialises the next n bytes starting at the cursor's current
// position as a contiguous view, without advancing the cursor. Equivalent
// to SliceAt(0, n).
func (c *Cursor) Slice(n int) (view []byte, ok bool) {
	return c.SliceAt(0, n)
}

// SliceAt materialises the n bytes starting start bytes ahead of the
// cursor's current position as a contiguous view, without advancing the
// cursor. ok is false if the requested range extends past the end of the
// view.
//
// When the range lies entirely within one segment, SliceAt returns a
// direct sub-slice of that segment: zero copies, zero allocations. When
// it straddles a segment boundary, SliceAt copies the range into the
// Cursor's pooled scratch buffer; that view is valid only until the next
// call to Slice/SliceAt or to Release, which is why the header-block
// parser consumes each materialised line (handing it to the handler)
// before materialising the next one.
func (c *Cursor) SliceAt(start, n int) (view []byte, ok bool) {
	if n < 0 {
		return nil, false
	}
	seg, off, ok := c.locate(start)
	if !ok || n > c.Remaining()-start {
		return nil, false
	}
	if n == 0 {
		return nil, true
	}
	if seg < len(c.s.segs) {
		if s := c.s.segs[seg][off:]; len(s) >= n {
			return s[:n], true
		}
	}

	buf := c.scratchBuf()
	remaining := n
	for remaining > 0 {
		s := c.s.segs[seg][off:]
		take := remaining
		if take > len(s) {
			take = len(s)
		}
		buf.Write(s[:take])
		remaining -= take
		seg++
		off = 0
	}
	return buf.B, true
}
