package http11

import "bytes"

// VersionTag identifies the HTTP version token of a parsed request line.
type VersionTag uint8

const (
	VersionUnknown VersionTag = iota
	Version10
	Version11
)

func (v VersionTag) String() string {
	switch v {
	case Version10:
		return "HTTP/1.0"
	case Version11:
		return "HTTP/1.1"
	default:
		return "UNKNOWN"
	}
}

// lookupVersion classifies an 8-byte version token. word must be exactly
// versionLen bytes; the caller establishes that bound from the already-
// located line length before calling this, never by probing a fixed
// offset past an unverified line end (see spec's Open Question on this).
func lookupVersion(word []byte) VersionTag {
	switch {
	case bytes.Equal(word, http11Bytes):
		return Version11
	case bytes.Equal(word, http10Bytes):
		return Version10
	default:
		return VersionUnknown
	}
}
