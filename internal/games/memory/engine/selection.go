package engine

// SelectionCap is the number of cards that can be face up pending evaluation.
const SelectionCap = 2

// Selection holds up to two distinct card indices awaiting evaluation.
type Selection struct {
	slots [SelectionCap]int
	n     int
}

// Len returns the number of selected cards.
func (s *Selection) Len() int {
	return s.n
}

// Full reports whether both slots are taken.
func (s *Selection) Full() bool {
	return s.n == SelectionCap
}

// Contains reports whether index is selected.
func (s *Selection) Contains(index int) bool {
	for i := 0; i < s.n; i++ {
		if s.slots[i] == index {
			return true
		}
	}
	return false
}

// Push adds index. It refuses when full or when index is already selected.
func (s *Selection) Push(index int) bool {
	if s.Full() || s.Contains(index) {
		return false
	}
	s.slots[s.n] = index
	s.n++
	return true
}

// Pair returns both selected indices. Only meaningful when Full.
func (s *Selection) Pair() (int, int) {
	return s.slots[0], s.slots[1]
}

// Indices returns the selected indices in selection order.
func (s *Selection) Indices() []int {
	out := make([]int, s.n)
	copy(out, s.slots[:s.n])
	return out
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.n = 0
}

// matchedSet tracks cards confirmed as pairs.
type matchedSet struct {
	flags []bool
	count int
}

func newMatchedSet(size int) matchedSet {
	return matchedSet{flags: make([]bool, size)}
}

func (m *matchedSet) has(index int) bool {
	return index >= 0 && index < len(m.flags) && m.flags[index]
}

func (m *matchedSet) addPair(a, b int) {
	m.flags[a] = true
	m.flags[b] = true
	m.count += 2
}
