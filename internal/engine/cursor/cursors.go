package cursor

// Set manages one or more selections with a designated primary.
// The primary is always the first element. A Set always holds at least
// one selection.
type Set struct {
	sels []Selection
}

// NewSet creates a set containing a single primary selection.
func NewSet(primary Selection) *Set {
	return &Set{sels: []Selection{primary}}
}

// NewSetAt creates a set with a single cursor at the given offset.
func NewSetAt(offset ByteOffset) *Set {
	return NewSet(NewCursorSelection(offset))
}

// Primary returns the primary selection.
func (s *Set) Primary() Selection {
	return s.sels[0]
}

// SetPrimary replaces the primary selection.
func (s *Set) SetPrimary(sel Selection) {
	s.sels[0] = sel
}

// All returns a copy of all selections, primary first.
func (s *Set) All() []Selection {
	out := make([]Selection, len(s.sels))
	copy(out, s.sels)
	return out
}

// Add appends a secondary selection.
func (s *Set) Add(sel Selection) {
	s.sels = append(s.sels, sel)
}

// Clear drops all secondary selections, keeping the primary.
func (s *Set) Clear() {
	s.sels = s.sels[:1]
}

// Count returns the number of selections.
func (s *Set) Count() int {
	return len(s.sels)
}

// IsMulti returns true if the set holds more than one selection.
func (s *Set) IsMulti() bool {
	return len(s.sels) > 1
}

// HasSelection returns true if any selection has extent.
func (s *Set) HasSelection() bool {
	for _, sel := range s.sels {
		if !sel.IsEmpty() {
			return true
		}
	}
	return false
}

// MapInPlace applies f to every selection, replacing each with the result.
func (s *Set) MapInPlace(f func(sel Selection) Selection) {
	for i, sel := range s.sels {
		s.sels[i] = f(sel)
	}
}

// Clamp clamps every selection to [0, maxOffset].
func (s *Set) Clamp(maxOffset ByteOffset) {
	for i, sel := range s.sels {
		s.sels[i] = sel.Clamp(maxOffset)
	}
}
