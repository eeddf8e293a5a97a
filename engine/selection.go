package engine

// Selection tracks which channels are charted: at most cap ids, kept in
// insertion order (not risk order). Chart series colors are positional,
// so index 0 always maps to the first palette color.
//
// Not safe for concurrent use on its own; the owning Engine serializes
// access.
type Selection struct {
	ids []int
	cap int
}

// NewSelection creates a selection with the given capacity.
func NewSelection(capacity int) *Selection {
	return &Selection{cap: capacity}
}

// Toggle adds or removes an id. When the selection is full, the oldest
// inserted id is evicted first (FIFO, never risk-based).
func (s *Selection) Toggle(id int) {
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
	if len(s.ids) == s.cap {
		s.ids = s.ids[1:]
	}
	s.ids = append(s.ids, id)
}

// Contains reports whether id is currently selected.
func (s *Selection) Contains(id int) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Index returns the position of id in insertion order, or -1.
func (s *Selection) Index(id int) int {
	for i, existing := range s.ids {
		if existing == id {
			return i
		}
	}
	return -1
}

// IDs returns a copy of the selected ids in insertion order.
func (s *Selection) IDs() []int {
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of selected ids.
func (s *Selection) Len() int {
	return len(s.ids)
}
