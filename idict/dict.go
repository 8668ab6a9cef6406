package idict

import (
	"fmt"
	"strings"
	"sync"

	"github.com/isi-vista/immutable"
)

// Dict is an immutable dictionary with deterministic iteration order. The
// zero value is not usable; construct dicts with Of, OfUnique or a
// Builder.
//
// Like a Set, a Dict keeps an ordered view and a hash index over the same
// entries: 'pairs' holds the key-value pairs in key first-appearance
// order, 'index' maps each key's index key to its position in 'pairs'.
type Dict struct {
	pairs []immutable.Pair
	index map[interface{}]int

	hashOnce sync.Once
	hashKey  string
}

var empty = &Dict{}

var _ immutable.Hashable = (*Dict)(nil)

// Of creates a dict from key-value pairs. A key occurring twice keeps its
// first position with the value of its last occurrence. Panics with
// *immutable.InvalidElementError if a key is not hashable.
func Of(pairs ...immutable.Pair) *Dict {
	if len(pairs) == 0 {
		return empty
	}
	return NewBuilder().PutAll(pairs...).Build()
}

// OfUnique creates a dict from key-value pairs, panicking with
// *immutable.DuplicateKeyError if any key occurs more than once.
func OfUnique(pairs ...immutable.Pair) *Dict {
	seen := make(map[interface{}]struct{}, len(pairs))
	for _, p := range pairs {
		k := immutable.MustIndexKey(p.Key)
		if _, dup := seen[k]; dup {
			panic(&immutable.DuplicateKeyError{Key: p.Key})
		}
		seen[k] = struct{}{}
	}
	return Of(pairs...)
}

// Empty returns the shared empty dict.
func Empty() *Dict {
	return empty
}

// Index builds a dict mapping key(item) to item, for each given item. A
// later item with the same key wins.
func Index(items []interface{}, key func(interface{}) interface{}) *Dict {
	if key == nil {
		panic(&immutable.InvalidArgumentError{Name: "key", Reason: "key function must not be nil"})
	}
	b := NewBuilder()
	for _, item := range items {
		b.Put(key(item), item)
	}
	return b.Build()
}

// --- Access ----------------------------------------------------------------

// Size returns the number of key-value pairs.
func (d *Dict) Size() int {
	return len(d.pairs)
}

// Empty reports whether the dict has no entries.
func (d *Dict) Empty() bool {
	return len(d.pairs) == 0
}

// Get returns the value for a key, and whether the key is present.
func (d *Dict) Get(key interface{}) (interface{}, bool) {
	k, ok := immutable.IndexKey(key)
	if !ok {
		return nil, false
	}
	pos, present := d.index[k]
	if !present {
		return nil, false
	}
	return d.pairs[pos].Value, true
}

// Contains reports whether all given keys are present.
func (d *Dict) Contains(keys ...interface{}) bool {
	for _, key := range keys {
		if _, present := d.Get(key); !present {
			return false
		}
	}
	return true
}

// Keys returns the keys in iteration order as a fresh slice.
func (d *Dict) Keys() []interface{} {
	keys := make([]interface{}, len(d.pairs))
	for i, p := range d.pairs {
		keys[i] = p.Key
	}
	return keys
}

// Values returns the values in key iteration order as a fresh slice.
func (d *Dict) Values() []interface{} {
	values := make([]interface{}, len(d.pairs))
	for i, p := range d.pairs {
		values[i] = p.Value
	}
	return values
}

// Pairs returns the key-value pairs in iteration order as a fresh slice.
func (d *Dict) Pairs() []immutable.Pair {
	pairs := make([]immutable.Pair, len(d.pairs))
	copy(pairs, d.pairs)
	return pairs
}

// Each calls f once per entry, in iteration order.
func (d *Dict) Each(f func(key, value interface{})) {
	for _, p := range d.pairs {
		f(p.Key, p.Value)
	}
}

// Iterator returns a stateful iterator over the entries in iteration
// order. Iterators are restartable.
func (d *Dict) Iterator() Iterator {
	return Iterator{dict: d, pos: -1}
}

// String renders the dict as i{k1: v1, k2: v2, …}.
func (d *Dict) String() string {
	var sb strings.Builder
	sb.WriteString("i{")
	for i, p := range d.pairs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v: %v", p.Key, p.Value)
	}
	sb.WriteString("}")
	return sb.String()
}

// --- Equality and hashing --------------------------------------------------

// Equal reports order-independent equality: both dicts hold the same keys,
// and each key maps to an equal value. Values compare by
// immutable.ValueEqual.
func (d *Dict) Equal(other *Dict) bool {
	if other == nil {
		return len(d.pairs) == 0
	}
	if other == d {
		return true
	}
	if len(other.pairs) != len(d.pairs) {
		return false
	}
	for k, pos := range other.index {
		mine, present := d.index[k]
		if !present {
			return false
		}
		if !immutable.ValueEqual(d.pairs[mine].Value, other.pairs[pos].Value) {
			return false
		}
	}
	return true
}

// HashKey returns a hash of the dict's unordered pair content. Equal dicts
// return equal hash keys. Computing it requires hashable values and is
// cached after the first call.
func (d *Dict) HashKey() string {
	d.hashOnce.Do(func() {
		d.hashKey = immutable.HashPairs(d.pairs)
	})
	return d.hashKey
}

// --- Derived dicts ---------------------------------------------------------

// Inverse returns the dict mapping each value to its key. Values must be
// hashable and unique; a duplicate value panics with
// *immutable.DuplicateKeyError.
func (d *Dict) Inverse() *Dict {
	b := NewBuilder()
	seen := make(map[interface{}]struct{}, len(d.pairs))
	for _, p := range d.pairs {
		k := immutable.MustIndexKey(p.Value)
		if _, dup := seen[k]; dup {
			panic(&immutable.DuplicateKeyError{Key: p.Value})
		}
		seen[k] = struct{}{}
		b.Put(p.Value, p.Key)
	}
	return b.Build()
}

// FilterKeys returns a dict holding the entries whose key satisfies pred,
// in the original order. If every key passes, the receiver itself is
// returned; no copying is needed for a no-op filter.
func (d *Dict) FilterKeys(pred func(key interface{}) bool) *Dict {
	kept := make([]immutable.Pair, 0, len(d.pairs))
	for _, p := range d.pairs {
		if pred(p.Key) {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(d.pairs) {
		return d
	}
	return Of(kept...)
}

// CopyBuilder returns a builder pre-seeded with this dict's entries. The
// seeding is lazy: building without intervening puts returns the receiver
// itself.
func (d *Dict) CopyBuilder() *Builder {
	return &Builder{source: d}
}

// --- Iterator --------------------------------------------------------------

// Iterator is a stateful iterator over a dict's entries.
type Iterator struct {
	dict *Dict
	pos  int
}

// Next advances the iterator and reports whether an entry is available.
func (it *Iterator) Next() bool {
	if it.pos+1 >= len(it.dict.pairs) {
		it.pos = len(it.dict.pairs)
		return false
	}
	it.pos++
	return true
}

// Key returns the current entry's key.
func (it *Iterator) Key() interface{} {
	return it.dict.pairs[it.pos].Key
}

// Value returns the current entry's value.
func (it *Iterator) Value() interface{} {
	return it.dict.pairs[it.pos].Value
}

// Reset moves the iterator back before the first entry.
func (it *Iterator) Reset() {
	it.pos = -1
}
