package ilist

import (
	"fmt"
	"strings"
	"sync"

	"github.com/isi-vista/immutable"
)

// List is an immutable sequence. The zero value is not usable; construct
// lists with Of, From or a Builder.
type List struct {
	items []interface{}

	hashOnce sync.Once
	hashKey  string
}

var empty = &List{}

var _ immutable.Collection = (*List)(nil)
var _ immutable.Hashable = (*List)(nil)

// Of creates a list with the given items, in the given order.
func Of(items ...interface{}) *List {
	if len(items) == 0 {
		return empty
	}
	owned := make([]interface{}, len(items))
	copy(owned, items)
	return &List{items: owned}
}

// From creates a list from the values of an arbitrary collection. If coll
// already is a *List it is returned unchanged.
func From(coll immutable.Collection) *List {
	if coll == nil {
		return empty
	}
	if l, ok := coll.(*List); ok {
		return l
	}
	return Of(coll.Values()...)
}

// Empty returns the shared empty list.
func Empty() *List {
	return empty
}

// Size returns the number of items.
func (l *List) Size() int {
	return len(l.items)
}

// Empty reports whether the list has no items.
func (l *List) Empty() bool {
	return len(l.items) == 0
}

// Get returns the item at position i. Negative positions count from the
// end. Positions outside the list panic with
// *immutable.IndexOutOfRangeError.
func (l *List) Get(i int) interface{} {
	j := i
	if j < 0 {
		j += len(l.items)
	}
	if j < 0 || j >= len(l.items) {
		panic(&immutable.IndexOutOfRangeError{Index: i, Length: len(l.items)})
	}
	return l.items[j]
}

// Slice returns the sub-list of positions [from, to), like slicing a Go
// slice. An invalid range panics with *immutable.IndexOutOfRangeError.
func (l *List) Slice(from, to int) *List {
	if from < 0 || from > len(l.items) {
		panic(&immutable.IndexOutOfRangeError{Index: from, Length: len(l.items)})
	}
	if to < from || to > len(l.items) {
		panic(&immutable.IndexOutOfRangeError{Index: to, Length: len(l.items)})
	}
	return Of(l.items[from:to]...)
}

// Contains reports whether all given items occur in the list. Items
// compare by immutable.ValueEqual; cost is linear per item.
func (l *List) Contains(items ...interface{}) bool {
	for _, item := range items {
		if l.IndexOf(item) < 0 {
			return false
		}
	}
	return true
}

// IndexOf returns the position of the first occurrence of item, or -1.
func (l *List) IndexOf(item interface{}) int {
	for i, v := range l.items {
		if immutable.ValueEqual(v, item) {
			return i
		}
	}
	return -1
}

// Values returns the items as a fresh slice.
func (l *List) Values() []interface{} {
	values := make([]interface{}, len(l.items))
	copy(values, l.items)
	return values
}

// Each calls f once per item, in order.
func (l *List) Each(f func(index int, value interface{})) {
	for i, v := range l.items {
		f(i, v)
	}
}

// Iterator returns a stateful, restartable iterator over the items.
func (l *List) Iterator() Iterator {
	return Iterator{list: l, pos: -1}
}

// Equal reports order-dependent equality with another list. A list never
// equals a set or any other collection kind.
func (l *List) Equal(other *List) bool {
	if other == nil {
		return len(l.items) == 0
	}
	if other == l {
		return true
	}
	if len(other.items) != len(l.items) {
		return false
	}
	for i, v := range l.items {
		if !immutable.ValueEqual(v, other.items[i]) {
			return false
		}
	}
	return true
}

// HashKey returns an order-dependent hash of the list's content: equal
// lists hash equal, permutations do not. It panics with
// *immutable.InvalidElementError if an item is not hashable. List
// implements immutable.Hashable, so lists of hashable items can be set
// elements and dictionary keys.
func (l *List) HashKey() string {
	l.hashOnce.Do(func() {
		l.hashKey = immutable.OrderedHash(l.items)
	})
	return l.hashKey
}

// String renders the list as i[e1, e2, …].
func (l *List) String() string {
	var sb strings.Builder
	sb.WriteString("i[")
	for i, v := range l.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteString("]")
	return sb.String()
}

// --- Iterator --------------------------------------------------------------

// Iterator is a stateful iterator over a list.
type Iterator struct {
	list *List
	pos  int
}

// Next advances the iterator and reports whether an item is available.
func (it *Iterator) Next() bool {
	if it.pos+1 >= len(it.list.items) {
		it.pos = len(it.list.items)
		return false
	}
	it.pos++
	return true
}

// Value returns the current item.
func (it *Iterator) Value() interface{} {
	return it.list.items[it.pos]
}

// Index returns the current position.
func (it *Iterator) Index() int {
	return it.pos
}

// Reset moves the iterator back before the first item.
func (it *Iterator) Reset() {
	it.pos = -1
}
