package cache

// Partition is a fixed-size bag of frames used by LFRU's two-tier engine.
// It has no eviction policy of its own; the policy package decides which
// slot to touch and applies the LRU or LFU discipline to a Partition's
// frames directly. Partition only tracks membership and capacity.
type Partition struct {
	Frames []Frame
}

// NewPartition allocates a partition with capacity empty frames.
func NewPartition(capacity int) *Partition {
	return &Partition{Frames: NewTable(capacity)}
}

// HasSpace reports whether any frame in the partition is empty.
func (p *Partition) HasSpace() bool {
	for i := range p.Frames {
		if p.Frames[i].IsEmpty() {
			return true
		}
	}
	return false
}

// Contains reports whether the partition currently holds page.
func (p *Partition) Contains(page int) bool {
	_, ok := p.IndexOf(page)
	return ok
}

// IndexOf returns the slot index holding page, if resident.
func (p *Partition) IndexOf(page int) (int, bool) {
	for i := range p.Frames {
		if !p.Frames[i].IsEmpty() && p.Frames[i].Page == page {
			return i, true
		}
	}
	return -1, false
}

// EmptySlot returns the index of a free frame, if any.
func (p *Partition) EmptySlot() (int, bool) {
	for i := range p.Frames {
		if p.Frames[i].IsEmpty() {
			return i, true
		}
	}
	return -1, false
}

// PartitionPair is LFRU's substate: a privileged, LRU-managed partition and
// an unprivileged, LFU-managed partition.
type PartitionPair struct {
	Privileged   *Partition
	Unprivileged *Partition
}

// NewPartitionPair allocates a privileged partition of size p1 and an
// unprivileged partition of size p2.
func NewPartitionPair(p1, p2 int) *PartitionPair {
	return &PartitionPair{
		Privileged:   NewPartition(p1),
		Unprivileged: NewPartition(p2),
	}
}

// Capacity returns the combined size of both partitions.
func (pp *PartitionPair) Capacity() int {
	return len(pp.Privileged.Frames) + len(pp.Unprivileged.Frames)
}
