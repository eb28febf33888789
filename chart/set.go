package chart

import (
	"fmt"

	"github.com/cnf/structhash"
)

// Set is the ordered sequence of items at one input position, plus a
// secondary identity index for O(1) deduplicating insertion. Iteration
// over a Set tolerates growth: callers loop with `for i := 0; i <
// set.Len(); i++`, re-reading Len() each step, so items appended by the
// body of the loop (via Add) are themselves visited before the loop
// exits — see package doc.
type Set struct {
	Pos   int // the input position this set belongs to
	items []Item
	seen  map[string]int // identity hash -> index into items
}

// NewSet creates an empty Earley set for input position pos.
func NewSet(pos int) *Set {
	return &Set{
		Pos:  pos,
		seen: make(map[string]int),
	}
}

// Add inserts item iff no existing item in the set shares its
// (RuleNo, Pos, Origin) identity; the first inserted value for a given
// identity wins — a later Add with the same identity but a different Leo
// or Kind is dropped except for its Derivations, which is folded into
// the stored item so repeated insertion attempts stay countable even
// though they're deduped; see package chart's Item docs. Returns whether
// the item was newly inserted.
func (s *Set) Add(item Item) bool {
	key := identityHash(item)
	if idx, ok := s.seen[key]; ok {
		s.items[idx].Derivations++
		return false
	}
	item.Derivations = 1
	s.seen[key] = len(s.items)
	s.items = append(s.items, item)
	return true
}

// Len returns the current number of items. Callers iterating while the
// set grows must re-read Len() on every loop step.
func (s *Set) Len() int {
	return len(s.items)
}

// At returns the item at index i.
func (s *Set) At(i int) Item {
	return s.items[i]
}

// Items returns a snapshot of the current items, in insertion order.
// Mutating the returned slice does not affect the Set.
func (s *Set) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Find returns the item with the given identity and reports whether it
// was present.
func (s *Set) Find(ruleNo, pos, origin int) (Item, bool) {
	key := identityHash(Item{RuleNo: ruleNo, Pos: pos, Origin: origin})
	idx, ok := s.seen[key]
	if !ok {
		return Item{}, false
	}
	return s.items[idx], true
}

func identityHash(it Item) string {
	h, err := structhash.Hash(identityOf(it), 1)
	if err != nil {
		// identity is a plain value struct of ints; structhash cannot fail on it.
		panic(fmt.Sprintf("chart: hashing item identity: %v", err))
	}
	return h
}
