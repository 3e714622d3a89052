package cache

import "testing"

func TestNewTable_AllFramesStartEmpty(t *testing.T) {
	table := NewTable(4)
	if len(table) != 4 {
		t.Fatalf("len(table) = %d, want 4", len(table))
	}
	for i, f := range table {
		if !f.IsEmpty() {
			t.Errorf("frame %d should start empty, got page %d", i, f.Page)
		}
		if f.Index != i {
			t.Errorf("frame %d has Index %d, want %d", i, f.Index, i)
		}
	}
}

func TestFrame_ResetPreservesIndex(t *testing.T) {
	f := Frame{Index: 3, Page: 7, Extra: 99, Frequency: 5}
	f.reset()
	if !f.IsEmpty() {
		t.Fatalf("frame should be empty after reset")
	}
	if f.Index != 3 {
		t.Fatalf("reset should preserve Index, got %d", f.Index)
	}
	if f.Extra != 0 || f.Frequency != 0 {
		t.Fatalf("reset should clear metadata fields, got %+v", f)
	}
}
