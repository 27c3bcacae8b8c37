// Package corevalue provides the small leaf value types (importing no
// other package of this module) that
// the rest of the core runtime (error unwinding, memory contexts, the page
// checksum and tar codecs) uses as vocabulary for their inputs and outputs.
//
// None of the types here are themselves hard engineering; they exist so
// that components built on top of them don't have to invent ad hoc byte
// handling at every boundary.
package corevalue

import (
	"bytes"
	"fmt"
)

// String is an immutable, explicit-length byte sequence. Unlike a Go
// string it carries no implicit NUL requirement and never needs to be
// re-validated as UTF-8; it is a thin wrapper over an already-owned byte
// slice.
type String struct {
	b []byte
}

// NewString copies s into a new, independently owned String.
func NewString(s string) String {
	b := make([]byte, len(s))
	copy(b, s)
	return String{b: b}
}

// NewStringBytes copies b into a new, independently owned String.
func NewStringBytes(b []byte) String {
	dup := make([]byte, len(b))
	copy(dup, b)
	return String{b: dup}
}

// NewStringFmt builds a String from a format string, the same way
// higher-level code builds one-off messages without caring about the
// underlying allocation.
func NewStringFmt(format string, args ...any) String {
	return NewStringBytes([]byte(fmt.Sprintf(format, args...)))
}

// Len returns the number of bytes in the string.
func (s String) Len() int { return len(s.b) }

// Bytes returns the string's bytes. Callers must not mutate the result;
// it aliases the String's backing array.
func (s String) Bytes() []byte { return s.b }

// String implements fmt.Stringer.
func (s String) String() string { return string(s.b) }

// Equal reports whether s and o hold byte-for-byte identical content.
func (s String) Equal(o String) bool { return bytes.Equal(s.b, o.b) }

// Dup returns an independent copy of s, sharing no backing array.
func (s String) Dup() String { return NewStringBytes(s.b) }

// Sub returns the substring [start, start+size), panicking on an
// out-of-range request the way a slice expression would.
func (s String) Sub(start, size int) String {
	return NewStringBytes(s.b[start : start+size])
}

// HasPrefix reports whether s begins with prefix.
func (s String) HasPrefix(prefix String) bool { return bytes.HasPrefix(s.b, prefix.b) }

// HasSuffix reports whether s ends with suffix.
func (s String) HasSuffix(suffix String) bool { return bytes.HasSuffix(s.b, suffix.b) }

// Contains reports whether s contains sub as a substring.
func (s String) Contains(sub String) bool { return bytes.Contains(s.b, sub.b) }
