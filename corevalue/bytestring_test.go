package corevalue

import "testing"

func TestStringEqual(t *testing.T) {
	a := NewString("pgbackrest")
	b := NewStringBytes([]byte("pgbackrest"))
	if !a.Equal(b) {
		t.Fatalf("expected equal strings, got %q vs %q", a, b)
	}
	c := NewString("pgbackrest ")
	if a.Equal(c) {
		t.Fatalf("expected unequal strings, got equal: %q vs %q", a, c)
	}
}

func TestStringDupIsIndependent(t *testing.T) {
	a := NewString("original")
	b := a.Dup()
	b.Bytes()[0] = 'X'
	if a.Bytes()[0] == 'X' {
		t.Fatalf("Dup aliased the backing array")
	}
}

func TestStringSub(t *testing.T) {
	a := NewString("0123456789")
	sub := a.Sub(2, 3)
	if sub.String() != "234" {
		t.Fatalf("Sub(2, 3) = %q, want %q", sub, "234")
	}
}

func TestStringPrefixSuffixContains(t *testing.T) {
	a := NewString("pgbackrest-core")
	if !a.HasPrefix(NewString("pgbackrest")) {
		t.Fatalf("expected prefix match")
	}
	if !a.HasSuffix(NewString("core")) {
		t.Fatalf("expected suffix match")
	}
	if !a.Contains(NewString("rest-co")) {
		t.Fatalf("expected substring match")
	}
	if a.Contains(NewString("nope")) {
		t.Fatalf("unexpected substring match")
	}
}

func TestNewStringFmt(t *testing.T) {
	s := NewStringFmt("block %d of %d", 3, 10)
	if s.String() != "block 3 of 10" {
		t.Fatalf("NewStringFmt = %q", s)
	}
}
