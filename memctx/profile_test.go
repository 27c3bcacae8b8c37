package memctx

import "testing"

func TestSnapshotIncludesLiveAllocations(t *testing.T) {
	c := New("snapshot-target")
	defer c.Free()
	prev := Switch(c)
	Alloc(64)
	Alloc(32)
	Switch(prev)

	prof := Snapshot()

	var found bool
	for _, s := range prof.Sample {
		if s.Label["context"][0] == "snapshot-target" {
			found = true
			if s.Value[0] != 2 {
				t.Fatalf("sample count = %d, want 2", s.Value[0])
			}
			if s.Value[1] != 96 {
				t.Fatalf("sample bytes = %d, want 96", s.Value[1])
			}
		}
	}
	if !found {
		t.Fatalf("expected a sample for context %q", "snapshot-target")
	}
}

func TestSnapshotSkipsEmptyContexts(t *testing.T) {
	c := New("empty-target")
	defer c.Free()

	prof := Snapshot()
	for _, s := range prof.Sample {
		if s.Label["context"][0] == "empty-target" {
			t.Fatalf("did not expect a sample for an allocation-free context")
		}
	}
}
