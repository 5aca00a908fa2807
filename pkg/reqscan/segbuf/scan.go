package segbuf

import (
	"math/bits"

	"golang.org/x/sys/cpu"
)

// wordSize is the width, in bytes, of the word-at-a-time scan below. Real
// SIMD intrinsics are not reachable from portable Go without assembly; the
// machine word is the widest "vector" this package can scan without one
// (see the package doc comment on Contains for the rationale).
const wordSize = 8

const (
	loOnes = 0x0101010101010101
	hiBits = 0x8080808080808080
)

// HasWideVectorHint reports whether the host CPU exposes AVX2, the width
// the teacher's websocket mask path dispatches a real SIMD routine on.
// This package never executes SIMD assembly; the flag is informational
// only, surfaced through reqscan.VectorWidth for benchmarking, and must
// never change parsing results.
var HasWideVectorHint = cpu.X86.HasAVX2

// Contains reports whether delim occurs anywhere in b.
//
// Contains and IndexByte scan a machine word (8 bytes on every platform
// Go runs on) at a time: the needle byte is broadcast across all 8 byte
// lanes of a uint64 by multiplying it by 0x0101010101010101 (per the
// spec's requirement that the broadcast go through an integer multiply
// rather than a byte-filled construction, so the compiler has a single
// arithmetic op to lower rather than eight stores), the word is XORed
// against the loaded chunk, and the classic "subtract-one, clear-set,
// mask high bits" trick locates a zero byte — i.e. a matching byte —
// without a per-byte branch inside the chunk. The tail shorter than one
// word falls back to a scalar byte loop. The function never reads past
// len(b).
func Contains(b []byte, delim byte) bool {
	return IndexByte(b, delim) >= 0
}

// IndexByte returns the index of the first occurrence of delim in b, or
// -1 if delim does not appear. See Contains for the scanning strategy.
func IndexByte(b []byte, delim byte) int {
	n := len(b)
	i := 0
	if n >= wordSize {
		needle := uint64(delim) * loOnes
		for ; i+wordSize <= n; i += wordSize {
			word := loadWord(b[i : i+wordSize])
			x := word ^ needle
			if z := hasZeroByte(x); z != 0 {
				return i + bits.TrailingZeros64(z)/8
			}
		}
	}
	for ; i < n; i++ {
		if b[i] == delim {
			return i
		}
	}
	return -1
}

// hasZeroByte returns a nonzero value iff at least one byte lane of v is
// zero; bit 7 of the matching lane is set in the result (and only that
// bit, for the lowest such lane, is guaranteed useful — callers only need
// TrailingZeros64 to find the first one).
func hasZeroByte(v uint64) uint64 {
	return (v - loOnes) & ^v & hiBits
}

// loadWord assembles the 8 bytes at b (len(b) == wordSize) into a
// little-endian uint64 via explicit shifts rather than an unsafe pointer
// cast, matching the teacher's scalar byte-assembly style and keeping
// this path free of alignment assumptions.
func loadWord(b []byte) uint64 {
	_ = b[7] // bounds-check hint, eliminates 8 separate checks below
	return uint64(b[0]) |
		uint64(b[1])<<8 |
		uint64(b[2])<<16 |
		uint64(b[3])<<24 |
		uint64(b[4])<<32 |
		uint64(b[5])<<40 |
		uint64(b[6])<<48 |
		uint64(b[7])<<56
}
