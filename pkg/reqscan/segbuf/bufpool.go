package segbuf

import "github.com/valyala/bytebufferpool"

// scratchPool supplies scratch buffers for the one-time copy Cursor.Slice
// performs when a requested range straddles a segment boundary. Buffers
// are sized for a request line or header line, not a full body.
var scratchPool bytebufferpool.Pool

// getScratch returns a pooled, empty *bytebufferpool.ByteBuffer.
func getScratch() *bytebufferpool.ByteBuffer {
	return scratchPool.Get()
}

// putScratch returns b to the pool. Callers must not touch b afterward.
func putScratch(b *bytebufferpool.ByteBuffer) {
	scratchPool.Put(b)
}
