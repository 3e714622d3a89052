package cache

import "testing"

func TestPolicyState_HitRatio(t *testing.T) {
	s := NewPolicyState(4)
	if got := s.HitRatio(); got != 0 {
		t.Fatalf("HitRatio() on fresh state = %v, want 0", got)
	}
	s.Hits, s.Misses = 3, 1
	if got := s.HitRatio(); got != 0.75 {
		t.Fatalf("HitRatio() = %v, want 0.75", got)
	}
}

func TestPolicyState_RecordVictimAppendsInOrder(t *testing.T) {
	s := NewPolicyState(2)
	s.RecordVictim(Frame{Index: 0, Page: 1})
	s.RecordVictim(Frame{Index: 1, Page: 2})
	if len(s.VictimLog) != 2 || s.VictimLog[0].Page != 1 || s.VictimLog[1].Page != 2 {
		t.Fatalf("VictimLog = %+v, want [{Page:1} {Page:2}]", s.VictimLog)
	}
}

func TestPolicyState_ResidentPagesPlainTable(t *testing.T) {
	s := NewPolicyState(3)
	s.Table[0] = Frame{Index: 0, Page: 10}
	s.Table[2] = Frame{Index: 2, Page: 20}

	got := s.ResidentPages()
	if len(got) != 2 {
		t.Fatalf("ResidentPages() = %v, want 2 entries", got)
	}
	if _, ok := got[10]; !ok {
		t.Errorf("missing page 10")
	}
	if _, ok := got[20]; !ok {
		t.Errorf("missing page 20")
	}
}

func TestPolicyState_ResidentPagesLFRU(t *testing.T) {
	s := NewLFRUPolicyState(1, 1)
	s.LFRU.Privileged.Frames[0] = Frame{Index: 0, Page: 1}
	s.LFRU.Unprivileged.Frames[0] = Frame{Index: 0, Page: 2}

	got := s.ResidentPages()
	if len(got) != 2 {
		t.Fatalf("ResidentPages() = %v, want 2 entries", got)
	}
}

func TestPolicyState_SyncLFRUTableForReporting(t *testing.T) {
	s := NewLFRUPolicyState(1, 1)
	s.LFRU.Privileged.Frames[0] = Frame{Index: 0, Page: 1}
	s.LFRU.Unprivileged.Frames[0] = Frame{Index: 0, Page: 2}

	s.SyncLFRUTableForReporting()

	if s.Table[0].Page != 1 {
		t.Errorf("Table[0].Page = %d, want 1 (privileged first)", s.Table[0].Page)
	}
	if s.Table[1].Page != 2 {
		t.Errorf("Table[1].Page = %d, want 2 (unprivileged second)", s.Table[1].Page)
	}
}
