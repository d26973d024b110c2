// Package sparse provides a sparse set over small uint32 universes.
//
// The simulator uses it to track visited NFA states during epsilon
// exhaustion: insertion, membership and clearing are all O(1), and Clear
// does not touch the backing arrays, which matters when the set is cleared
// once per input position.
package sparse

// Set is a set of uint32 values below a fixed capacity.
// The sparse array maps a value to its slot in the dense array; a value is
// a member iff that slot is in range and points back at it.
type Set struct {
	sparse []uint32
	dense  []uint32
}

// NewSet creates a set holding values in [0, capacity).
func NewSet(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set. Inserting an existing value is a no-op.
// Values at or above capacity are ignored.
func (s *Set) Insert(value uint32) {
	if value >= uint32(len(s.sparse)) || s.Contains(value) {
		return
	}
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	slot := s.sparse[value]
	return slot < uint32(len(s.dense)) && s.dense[slot] == value
}

// Clear empties the set without releasing memory.
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.dense)
}
