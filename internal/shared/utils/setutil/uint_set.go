// Package setutil provides set helpers for id collections.
package setutil

// UintSet is an insertion-ordered set of uint values.
type UintSet struct {
	items map[uint]struct{}
	order []uint
}

func NewUintSet() *UintSet {
	return &UintSet{items: make(map[uint]struct{})}
}

// NewUintSetFrom builds a set from ids, dropping repeats.
func NewUintSetFrom(ids []uint) *UintSet {
	s := &UintSet{items: make(map[uint]struct{}, len(ids))}
	s.AddAll(ids)
	return s
}

func (s *UintSet) Add(id uint) {
	if _, ok := s.items[id]; ok {
		return
	}
	s.items[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *UintSet) AddAll(ids []uint) {
	for _, id := range ids {
		s.Add(id)
	}
}

func (s *UintSet) Has(id uint) bool {
	_, ok := s.items[id]
	return ok
}

// ToSlice returns the ids in first-insertion order.
func (s *UintSet) ToSlice() []uint {
	out := make([]uint, len(s.order))
	copy(out, s.order)
	return out
}

func (s *UintSet) Len() int {
	return len(s.order)
}

// Intersect returns the members of s that are also in other, in s order.
func (s *UintSet) Intersect(other *UintSet) []uint {
	var out []uint
	for _, id := range s.order {
		if other.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

// Missing returns the members of s not present in found, in s order.
func (s *UintSet) Missing(found []uint) []uint {
	have := NewUintSetFrom(found)
	var out []uint
	for _, id := range s.order {
		if !have.Has(id) {
			out = append(out, id)
		}
	}
	return out
}
