// Package reqscan provides a streaming, zero-copy HTTP/1.x request-line and
// header parser. It consumes bytes arriving in one or more non-contiguous
// segments (pkg/reqscan/segbuf) and drives caller-supplied handler sinks
// (pkg/reqscan/http11) with byte-slice views into the original buffers —
// no body framing, no response generation, no I/O.
//
// A typical caller owns a segbuf.Segments view fed from a net.Conn, drives
// a segbuf.Cursor across it, and calls http11.Parser.ParseRequestLine
// followed by http11.Parser.ParseHeaders (or the combined Parse) once per
// request.
package reqscan

import "github.com/yourusername/reqscan/pkg/reqscan/segbuf"

// VectorWidth reports the word width, in bytes, that the byte-search
// scanner operates on, and whether the host CPU additionally exposes
// AVX2-width vector registers. Both fields are purely informational: the
// scanner always executes the portable word-at-a-time path regardless of
// HasWideVector, and neither field ever changes parsing results.
type VectorWidth struct {
	WordBytes     int
	HasWideVector bool
}

// Vector reports the current process's VectorWidth.
func Vector() VectorWidth {
	return VectorWidth{
		WordBytes:     8,
		HasWideVector: segbuf.HasWideVectorHint,
	}
}
