package corevalue

import (
	"bytes"
	"testing"
)

func TestBufferAppendGrows(t *testing.T) {
	buf := NewBuffer(0)
	buf.Append([]byte("hello"))
	buf.Append([]byte(" world"))
	if got := buf.Bytes(); !bytes.Equal(got, []byte("hello world")) {
		t.Fatalf("Bytes() = %q, want %q", got, "hello world")
	}
	if buf.Used() != len("hello world") {
		t.Fatalf("Used() = %d, want %d", buf.Used(), len("hello world"))
	}
}

func TestBufferReset(t *testing.T) {
	buf := NewBuffer(8)
	buf.Append([]byte("data"))
	buf.Reset()
	if buf.Used() != 0 {
		t.Fatalf("Used() after Reset = %d, want 0", buf.Used())
	}
	buf.Append([]byte("more"))
	if got := buf.Bytes(); !bytes.Equal(got, []byte("more")) {
		t.Fatalf("Bytes() after Reset+Append = %q, want %q", got, "more")
	}
}
