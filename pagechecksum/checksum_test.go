package pagechecksum

import "testing"

func allFF(size int) []byte {
	p := make([]byte, size)
	for i := range p {
		p[i] = 0xFF
	}
	return p
}

func TestChecksumGoldenBlockZero(t *testing.T) {
	page := allFF(8192)
	if got := Checksum(page, 0, 8192); got != 0x0E1C {
		t.Fatalf("Checksum(block=0) = %#x, want 0x0E1C", got)
	}
}

func TestChecksumGoldenBlock999(t *testing.T) {
	page := allFF(8192)
	if got := Checksum(page, 999, 8192); got != 0x0EC3 {
		t.Fatalf("Checksum(block=999) = %#x, want 0x0EC3", got)
	}
}

func TestChecksumDoesNotMutatePage(t *testing.T) {
	page := allFF(8192)
	page[pdChecksumOffset] = 0x12
	page[pdChecksumOffset+1] = 0x34
	before := append([]byte(nil), page...)

	Checksum(page, 0, 8192)

	for i := range page {
		if page[i] != before[i] {
			t.Fatalf("Checksum mutated page at offset %d", i)
		}
	}
}

func TestChecksumIsStableAcrossRepeatedCalls(t *testing.T) {
	page := allFF(8192)
	a := Checksum(page, 5, 8192)
	b := Checksum(page, 5, 8192)
	if a != b {
		t.Fatalf("Checksum not stable: %#x then %#x", a, b)
	}
}
