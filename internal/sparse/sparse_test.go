package sparse

import "testing"

func TestSet_InsertContains(t *testing.T) {
	s := NewSet(16)

	if s.Contains(3) {
		t.Error("empty set should not contain 3")
	}

	s.Insert(3)
	s.Insert(0)
	s.Insert(15)

	for _, v := range []uint32{3, 0, 15} {
		if !s.Contains(v) {
			t.Errorf("set should contain %d", v)
		}
	}
	if s.Contains(7) {
		t.Error("set should not contain 7")
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestSet_DuplicateInsert(t *testing.T) {
	s := NewSet(8)
	s.Insert(5)
	s.Insert(5)

	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestSet_OutOfRange(t *testing.T) {
	s := NewSet(4)
	s.Insert(4)
	s.Insert(100)

	if s.Len() != 0 {
		t.Errorf("out-of-range inserts must be ignored, Len() = %d", s.Len())
	}
	if s.Contains(100) {
		t.Error("set should not contain out-of-range value")
	}
}

func TestSet_Clear(t *testing.T) {
	s := NewSet(8)
	s.Insert(1)
	s.Insert(2)
	s.Clear()

	if s.Len() != 0 || s.Contains(1) || s.Contains(2) {
		t.Error("Clear should empty the set")
	}

	// Stale sparse slots must not produce false membership after reuse.
	s.Insert(2)
	if !s.Contains(2) || s.Contains(1) {
		t.Error("membership wrong after Clear and reinsert")
	}
}
