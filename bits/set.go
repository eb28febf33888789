package bits

import "math/bits"

const wordBits = 64

// Set is a fixed-width bitset backed by a slice of machine words. The
// width is fixed at construction time and never grows; callers index it
// with small integers (symbol or rule ids).
type Set struct {
	words []uint64
	width int
}

// NewSet allocates a Set able to hold bits [0, width).
func NewSet(width int) *Set {
	if width < 0 {
		width = 0
	}
	return &Set{
		words: make([]uint64, (width+wordBits-1)/wordBits),
		width: width,
	}
}

// Width returns the number of addressable bits.
func (s *Set) Width() int {
	return s.width
}

// Set sets bit i to 1.
func (s *Set) Set(i int) {
	s.words[i/wordBits] |= 1 << uint(i%wordBits)
}

// Clear sets bit i to 0.
func (s *Set) Clear(i int) {
	s.words[i/wordBits] &^= 1 << uint(i%wordBits)
}

// Test reports whether bit i is set.
func (s *Set) Test(i int) bool {
	return s.words[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// UnionAssign performs dst ← dst ∪ src. Both sets must share the same width.
func (s *Set) UnionAssign(src *Set) {
	for i := range s.words {
		s.words[i] |= src.words[i]
	}
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	c := &Set{words: make([]uint64, len(s.words)), width: s.width}
	copy(c.words, s.words)
	return c
}

// Each invokes fn for every set bit, in increasing order.
func (s *Set) Each(fn func(i int)) {
	for w, word := range s.words {
		base := w * wordBits
		for word != 0 {
			tz := bits.TrailingZeros64(word)
			fn(base + tz)
			word &= word - 1 // clear lowest set bit
		}
	}
}

// Slice returns the set bits as a sorted slice of ints.
func (s *Set) Slice() []int {
	out := make([]int, 0)
	s.Each(func(i int) { out = append(out, i) })
	return out
}
