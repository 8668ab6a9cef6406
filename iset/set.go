package iset

import (
	"fmt"
	"strings"
	"sync"

	"github.com/isi-vista/immutable"
)

// Set is an immutable set with deterministic iteration order. The zero
// value is not usable; construct sets with Of, From or a Builder.
//
// A Set keeps two co-maintained views of the same elements: 'order' holds
// the distinct elements in first-insertion (or builder-assigned sort)
// order, 'index' maps each element's index key to its position in 'order'.
// Both are populated exclusively by Builder.Build and frozen afterwards.
type Set struct {
	order []interface{}
	index map[interface{}]int

	hashOnce sync.Once
	hashKey  string
}

// empty is the shared instance returned by every construction path that
// produces zero elements.
var empty = &Set{}

var _ immutable.Collection = (*Set)(nil)
var _ immutable.Container = (*Set)(nil)
var _ immutable.Hashable = (*Set)(nil)

// Of creates a set with the given elements, keeping the order of first
// occurrence and dropping later duplicates. It panics with
// *immutable.InvalidElementError if an element is not hashable.
func Of(items ...interface{}) *Set {
	if len(items) == 0 {
		return empty
	}
	return NewBuilder().AddAll(items...).Build()
}

// From creates a set from the values of an arbitrary collection. If coll
// already is a *Set it is returned unchanged; immutable instances can be
// shared safely.
func From(coll immutable.Collection) *Set {
	if coll == nil {
		return empty
	}
	if s, ok := coll.(*Set); ok {
		return s
	}
	return Of(coll.Values()...)
}

// Empty returns the shared empty set.
func Empty() *Set {
	return empty
}

// --- Sequence view ---------------------------------------------------------

// Size returns the number of elements.
func (s *Set) Size() int {
	return len(s.order)
}

// Empty reports whether the set has no elements.
func (s *Set) Empty() bool {
	return len(s.order) == 0
}

// Contains reports whether all given items are elements of the set.
// Non-hashable items are never contained.
func (s *Set) Contains(items ...interface{}) bool {
	for _, item := range items {
		k, ok := immutable.IndexKey(item)
		if !ok {
			return false
		}
		if _, present := s.index[k]; !present {
			return false
		}
	}
	return true
}

// Get returns the element at position i in iteration order. Negative
// positions count from the end, i.e. Get(-1) is the last element. Positions
// outside the set panic with *immutable.IndexOutOfRangeError.
func (s *Set) Get(i int) interface{} {
	j := i
	if j < 0 {
		j += len(s.order)
	}
	if j < 0 || j >= len(s.order) {
		panic(&immutable.IndexOutOfRangeError{Index: i, Length: len(s.order)})
	}
	return s.order[j]
}

// Values returns the elements in iteration order as a fresh slice.
func (s *Set) Values() []interface{} {
	values := make([]interface{}, len(s.order))
	copy(values, s.order)
	return values
}

// Each calls f once per element, in iteration order.
func (s *Set) Each(f func(index int, value interface{})) {
	for i, v := range s.order {
		f(i, v)
	}
}

// Iterator returns a stateful iterator over the elements in iteration
// order. Iterators are restartable: every call to Iterator starts at the
// beginning, and iteration order is stable across calls.
func (s *Set) Iterator() Iterator {
	return Iterator{set: s, pos: -1}
}

// Copy returns the set itself. Immutable sets never need copying; the
// method exists for symmetry with mutable container APIs.
func (s *Set) Copy() *Set {
	return s
}

// String renders the set as i{e1, e2, …}. The delimiters distinguish an
// immutable set from Go's rendering of mutable containers, the contents
// read like a list in iteration order.
func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteString("i{")
	for i, v := range s.order {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteString("}")
	return sb.String()
}

// --- Equality and hashing --------------------------------------------------

// Equal reports order-independent set equality: the operand's distinct
// values must be exactly the elements of this set. The operand may be any
// collection, not necessarily a *Set.
func (s *Set) Equal(other immutable.Collection) bool {
	if other == nil {
		return len(s.order) == 0
	}
	if o, ok := other.(*Set); ok {
		if o == s {
			return true
		}
		if len(o.order) != len(s.order) {
			return false
		}
		for k := range o.index {
			if _, present := s.index[k]; !present {
				return false
			}
		}
		return true
	}
	distinct := 0
	seen := make(map[interface{}]struct{}, other.Size())
	for _, v := range other.Values() {
		k, ok := immutable.IndexKey(v)
		if !ok {
			return false
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		distinct++
		if _, present := s.index[k]; !present {
			return false
		}
	}
	return distinct == len(s.order)
}

// HashKey returns a hash of the set's unordered content. Equal sets return
// equal hash keys, regardless of iteration order. The key is computed once
// and cached; Set implements immutable.Hashable, so sets can be elements
// of sets and keys of dictionaries.
func (s *Set) HashKey() string {
	s.hashOnce.Do(func() {
		s.hashKey = immutable.UnorderedHash(s.order)
	})
	return s.hashKey
}

// --- Set algebra -----------------------------------------------------------

// Union returns a new set holding this set's elements in their original
// order, followed by the operand's elements not already present, in the
// operand's iteration order.
func (s *Set) Union(other immutable.Collection) *Set {
	if other == nil || other.Size() == 0 {
		return s
	}
	b := NewBuilder().AddAll(s.order...)
	return b.AddAll(other.Values()...).Build()
}

// Intersection returns a new set holding this set's elements, in this
// set's order, that are also members of the operand.
func (s *Set) Intersection(other immutable.Collection) *Set {
	in := membership(other)
	b := NewBuilder()
	for _, v := range s.order {
		if in(v) {
			b.Add(v)
		}
	}
	return b.Build()
}

// Difference returns a new set holding this set's elements, in this set's
// order, that are not members of the operand.
func (s *Set) Difference(other immutable.Collection) *Set {
	in := membership(other)
	b := NewBuilder()
	for _, v := range s.order {
		if !in(v) {
			b.Add(v)
		}
	}
	return b.Build()
}

// SymmetricDifference returns a new set holding the elements contained in
// exactly one of the two operands. This set's surviving elements come
// first, in this set's order, followed by the operand's, in the operand's
// order.
func (s *Set) SymmetricDifference(other immutable.Collection) *Set {
	if other == nil {
		return s
	}
	in := membership(other)
	b := NewBuilder()
	for _, v := range s.order {
		if !in(v) {
			b.Add(v)
		}
	}
	for _, v := range other.Values() {
		if !s.Contains(v) {
			b.Add(v)
		}
	}
	return b.Build()
}

// Subset reports whether every element of this set is a member of the
// operand. Order is ignored.
func (s *Set) Subset(other immutable.Collection) bool {
	if len(s.order) == 0 {
		return true
	}
	if other == nil {
		return false
	}
	in := membership(other)
	for _, v := range s.order {
		if !in(v) {
			return false
		}
	}
	return true
}

// Superset reports whether every value of the operand is an element of
// this set. Order is ignored.
func (s *Set) Superset(other immutable.Collection) bool {
	if other == nil {
		return true
	}
	for _, v := range other.Values() {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}

// membership derives a membership predicate from an arbitrary operand.
// Operands implementing immutable.Container answer directly; for everything
// else the operand's values are indexed once.
func membership(other immutable.Collection) func(interface{}) bool {
	if other == nil {
		return func(interface{}) bool { return false }
	}
	if c, ok := other.(immutable.Container); ok {
		return func(v interface{}) bool { return c.Contains(v) }
	}
	index := make(map[interface{}]struct{}, other.Size())
	for _, v := range other.Values() {
		if k, ok := immutable.IndexKey(v); ok {
			index[k] = struct{}{}
		}
	}
	return func(v interface{}) bool {
		k, ok := immutable.IndexKey(v)
		if !ok {
			return false
		}
		_, present := index[k]
		return present
	}
}

// --- Iterator --------------------------------------------------------------

// Iterator is a stateful iterator over a set, in the style of the gods
// container iterators.
type Iterator struct {
	set *Set
	pos int
}

// Next advances the iterator and reports whether an element is available.
func (it *Iterator) Next() bool {
	if it.pos+1 >= len(it.set.order) {
		it.pos = len(it.set.order)
		return false
	}
	it.pos++
	return true
}

// Value returns the current element.
func (it *Iterator) Value() interface{} {
	return it.set.order[it.pos]
}

// Index returns the current position.
func (it *Iterator) Index() int {
	return it.pos
}

// Reset moves the iterator back before the first element.
func (it *Iterator) Reset() {
	it.pos = -1
}
