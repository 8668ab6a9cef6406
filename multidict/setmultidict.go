package multidict

import (
	"fmt"
	"strings"
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/isi-vista/immutable"
	"github.com/isi-vista/immutable/iset"
)

// SetMultiDict is an immutable mapping from keys to sets of values. The
// zero value is not usable; construct with SetsOf or a SetBuilder.
type SetMultiDict struct {
	keys   []interface{}
	index  map[interface{}]int
	groups []*iset.Set
	size   int // total number of key-value pairs

	hashOnce sync.Once
	hashKey  string
}

var emptySets = &SetMultiDict{}

var _ immutable.Hashable = (*SetMultiDict)(nil)

// SetsOf creates a set-multidict from key-value pairs. Keys keep
// first-appearance order; a repeated (key, value) pair is dropped.
func SetsOf(pairs ...immutable.Pair) *SetMultiDict {
	if len(pairs) == 0 {
		return emptySets
	}
	b := NewSetBuilder()
	for _, p := range pairs {
		b.Put(p.Key, p.Value)
	}
	return b.Build()
}

// EmptySets returns the shared empty set-multidict.
func EmptySets() *SetMultiDict {
	return emptySets
}

// Size returns the total number of key-value pairs.
func (m *SetMultiDict) Size() int {
	return m.size
}

// Empty reports whether the multidict has no entries.
func (m *SetMultiDict) Empty() bool {
	return m.size == 0
}

// NumKeys returns the number of distinct keys.
func (m *SetMultiDict) NumKeys() int {
	return len(m.keys)
}

// Get returns the group of values for a key. Absent keys yield the empty
// set.
func (m *SetMultiDict) Get(key interface{}) *iset.Set {
	k, ok := immutable.IndexKey(key)
	if !ok {
		return iset.Empty()
	}
	pos, present := m.index[k]
	if !present {
		return iset.Empty()
	}
	return m.groups[pos]
}

// Contains reports whether all given keys have at least one value.
func (m *SetMultiDict) Contains(keys ...interface{}) bool {
	for _, key := range keys {
		k, ok := immutable.IndexKey(key)
		if !ok {
			return false
		}
		if _, present := m.index[k]; !present {
			return false
		}
	}
	return true
}

// Keys returns the keys in first-appearance order as a fresh slice.
func (m *SetMultiDict) Keys() []interface{} {
	keys := make([]interface{}, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// KeySet returns the keys as an immutable set, in first-appearance order.
func (m *SetMultiDict) KeySet() *iset.Set {
	return iset.Of(m.keys...)
}

// Pairs enumerates all key-value pairs, grouped by key in key order, the
// values of each group in group order.
func (m *SetMultiDict) Pairs() []immutable.Pair {
	pairs := make([]immutable.Pair, 0, m.size)
	for i, key := range m.keys {
		for _, v := range m.groups[i].Values() {
			pairs = append(pairs, immutable.Pair{Key: key, Value: v})
		}
	}
	return pairs
}

// Each calls f once per key, in key order, with the key's group.
func (m *SetMultiDict) Each(f func(key interface{}, group *iset.Set)) {
	for i, key := range m.keys {
		f(key, m.groups[i])
	}
}

// Equal reports order-independent equality: the same keys, and per key an
// equal group.
func (m *SetMultiDict) Equal(other *SetMultiDict) bool {
	if other == nil {
		return m.size == 0
	}
	if other == m {
		return true
	}
	if len(other.keys) != len(m.keys) || other.size != m.size {
		return false
	}
	for k, pos := range other.index {
		mine, present := m.index[k]
		if !present {
			return false
		}
		if !m.groups[mine].Equal(other.groups[pos]) {
			return false
		}
	}
	return true
}

// HashKey returns an order-independent hash over (key, group) entries.
func (m *SetMultiDict) HashKey() string {
	m.hashOnce.Do(func() {
		entries := make([]immutable.Pair, len(m.keys))
		for i, key := range m.keys {
			entries[i] = immutable.Pair{Key: key, Value: m.groups[i]}
		}
		m.hashKey = immutable.HashPairs(entries)
	})
	return m.hashKey
}

// InvertToSetMultiDict returns the set-multidict containing (v, k) for
// every pair (k, v) of this multidict.
func (m *SetMultiDict) InvertToSetMultiDict() *SetMultiDict {
	return invertToSets(m.Pairs())
}

// InvertToListMultiDict returns the list-multidict containing (v, k) once
// for every pair (k, v) of this multidict.
func (m *SetMultiDict) InvertToListMultiDict() *ListMultiDict {
	return invertToLists(m.Pairs())
}

// String renders the multidict as i{k1: i{…}, k2: i{…}}.
func (m *SetMultiDict) String() string {
	var sb strings.Builder
	sb.WriteString("i{")
	for i, key := range m.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v: %v", key, m.groups[i])
	}
	sb.WriteString("}")
	return sb.String()
}

// --- Builder ---------------------------------------------------------------

// setEntry pairs a key with its accumulating group builder.
type setEntry struct {
	key   interface{}
	group *iset.Builder
}

// SetBuilder is a mutable accumulator for a SetMultiDict. Single-owner
// during accumulation.
type SetBuilder struct {
	entries *linkedhashmap.Map // key index key → *setEntry
}

// NewSetBuilder creates an empty builder.
func NewSetBuilder() *SetBuilder {
	return &SetBuilder{entries: linkedhashmap.New()}
}

// Put associates a value with a key. Putting an already-present pair is a
// no-op. Returns the builder for chaining. Panics with
// *immutable.InvalidElementError if key or value is not hashable.
func (b *SetBuilder) Put(key, value interface{}) *SetBuilder {
	k := immutable.MustIndexKey(key)
	e, present := b.entries.Get(k)
	if !present {
		e = &setEntry{key: key, group: iset.NewBuilder()}
		b.entries.Put(k, e)
	}
	e.(*setEntry).group.Add(value)
	return b
}

// PutAll puts the given pairs in traversal order. Returns the builder for
// chaining.
func (b *SetBuilder) PutAll(pairs ...immutable.Pair) *SetBuilder {
	for _, p := range pairs {
		b.Put(p.Key, p.Value)
	}
	return b
}

// Build produces an immutable snapshot with fresh storage. The builder
// stays usable afterwards. Zero entries yield the shared empty instance.
func (b *SetBuilder) Build() *SetMultiDict {
	if b.entries.Size() == 0 {
		return emptySets
	}
	m := &SetMultiDict{
		keys:   make([]interface{}, 0, b.entries.Size()),
		index:  make(map[interface{}]int, b.entries.Size()),
		groups: make([]*iset.Set, 0, b.entries.Size()),
	}
	it := b.entries.Iterator()
	for it.Next() {
		e := it.Value().(*setEntry)
		group := e.group.Build()
		m.index[it.Key()] = len(m.keys)
		m.keys = append(m.keys, e.key)
		m.groups = append(m.groups, group)
		m.size += group.Size()
	}
	tracer().Debugf("built immutable set-multidict: %d keys, %d pairs", len(m.keys), m.size)
	return m
}

func invertToSets(pairs []immutable.Pair) *SetMultiDict {
	b := NewSetBuilder()
	for _, p := range pairs {
		b.Put(p.Value, p.Key)
	}
	return b.Build()
}

func invertToLists(pairs []immutable.Pair) *ListMultiDict {
	b := NewListBuilder()
	for _, p := range pairs {
		b.Put(p.Value, p.Key)
	}
	return b.Build()
}
