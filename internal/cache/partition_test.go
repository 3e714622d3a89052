package cache

import "testing"

func TestPartition_HasSpaceAndEmptySlot(t *testing.T) {
	p := NewPartition(2)
	if !p.HasSpace() {
		t.Fatalf("fresh partition should have space")
	}
	slot, ok := p.EmptySlot()
	if !ok || slot != 0 {
		t.Fatalf("EmptySlot() = (%d, %v), want (0, true)", slot, ok)
	}
	p.Frames[0] = Frame{Index: 0, Page: 5}
	p.Frames[1] = Frame{Index: 1, Page: 9}
	if p.HasSpace() {
		t.Fatalf("full partition should report no space")
	}
	if _, ok := p.EmptySlot(); ok {
		t.Fatalf("full partition should return no empty slot")
	}
}

func TestPartition_ContainsAndIndexOf(t *testing.T) {
	p := NewPartition(3)
	p.Frames[1] = Frame{Index: 1, Page: 42}

	if !p.Contains(42) {
		t.Fatalf("partition should contain page 42")
	}
	if idx, ok := p.IndexOf(42); !ok || idx != 1 {
		t.Fatalf("IndexOf(42) = (%d, %v), want (1, true)", idx, ok)
	}
	if p.Contains(7) {
		t.Fatalf("partition should not contain page 7")
	}
}

func TestPartitionPair_Capacity(t *testing.T) {
	pp := NewPartitionPair(3, 5)
	if got := pp.Capacity(); got != 8 {
		t.Fatalf("Capacity() = %d, want 8", got)
	}
}
