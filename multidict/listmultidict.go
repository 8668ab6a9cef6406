package multidict

import (
	"fmt"
	"strings"
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/isi-vista/immutable"
	"github.com/isi-vista/immutable/ilist"
)

// ListMultiDict is an immutable mapping from keys to lists of values,
// keeping duplicate pairs. The zero value is not usable; construct with
// ListsOf or a ListBuilder.
type ListMultiDict struct {
	keys   []interface{}
	index  map[interface{}]int
	groups []*ilist.List
	size   int

	hashOnce sync.Once
	hashKey  string
}

var emptyLists = &ListMultiDict{}

var _ immutable.Hashable = (*ListMultiDict)(nil)

// ListsOf creates a list-multidict from key-value pairs. Keys keep
// first-appearance order; duplicate pairs are kept in put order.
func ListsOf(pairs ...immutable.Pair) *ListMultiDict {
	if len(pairs) == 0 {
		return emptyLists
	}
	b := NewListBuilder()
	for _, p := range pairs {
		b.Put(p.Key, p.Value)
	}
	return b.Build()
}

// EmptyLists returns the shared empty list-multidict.
func EmptyLists() *ListMultiDict {
	return emptyLists
}

// Size returns the total number of key-value pairs.
func (m *ListMultiDict) Size() int {
	return m.size
}

// Empty reports whether the multidict has no entries.
func (m *ListMultiDict) Empty() bool {
	return m.size == 0
}

// NumKeys returns the number of distinct keys.
func (m *ListMultiDict) NumKeys() int {
	return len(m.keys)
}

// Get returns the group of values for a key. Absent keys yield the empty
// list.
func (m *ListMultiDict) Get(key interface{}) *ilist.List {
	k, ok := immutable.IndexKey(key)
	if !ok {
		return ilist.Empty()
	}
	pos, present := m.index[k]
	if !present {
		return ilist.Empty()
	}
	return m.groups[pos]
}

// Contains reports whether all given keys have at least one value.
func (m *ListMultiDict) Contains(keys ...interface{}) bool {
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
func (m *ListMultiDict) Keys() []interface{} {
	keys := make([]interface{}, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Pairs enumerates all key-value pairs, grouped by key in key order, the
// values of each group in put order.
func (m *ListMultiDict) Pairs() []immutable.Pair {
	pairs := make([]immutable.Pair, 0, m.size)
	for i, key := range m.keys {
		for _, v := range m.groups[i].Values() {
			pairs = append(pairs, immutable.Pair{Key: key, Value: v})
		}
	}
	return pairs
}

// Each calls f once per key, in key order, with the key's group.
func (m *ListMultiDict) Each(f func(key interface{}, group *ilist.List)) {
	for i, key := range m.keys {
		f(key, m.groups[i])
	}
}

// Equal reports equality: the same keys, and per key an equal group.
// Groups compare order-dependently, as lists do.
func (m *ListMultiDict) Equal(other *ListMultiDict) bool {
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
func (m *ListMultiDict) HashKey() string {
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
func (m *ListMultiDict) InvertToSetMultiDict() *SetMultiDict {
	return invertToSets(m.Pairs())
}

// InvertToListMultiDict returns the list-multidict containing (v, k) once
// for every pair (k, v) of this multidict.
func (m *ListMultiDict) InvertToListMultiDict() *ListMultiDict {
	return invertToLists(m.Pairs())
}

// String renders the multidict as i{k1: i[…], k2: i[…]}.
func (m *ListMultiDict) String() string {
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

// listEntry pairs a key with its accumulating group builder.
type listEntry struct {
	key   interface{}
	group *ilist.Builder
}

// ListBuilder is a mutable accumulator for a ListMultiDict. Single-owner
// during accumulation.
type ListBuilder struct {
	entries *linkedhashmap.Map // key index key → *listEntry
}

// NewListBuilder creates an empty builder.
func NewListBuilder() *ListBuilder {
	return &ListBuilder{entries: linkedhashmap.New()}
}

// Put associates a value with a key, keeping duplicates. Returns the
// builder for chaining. Panics with *immutable.InvalidElementError if the
// key is not hashable.
func (b *ListBuilder) Put(key, value interface{}) *ListBuilder {
	k := immutable.MustIndexKey(key)
	e, present := b.entries.Get(k)
	if !present {
		e = &listEntry{key: key, group: ilist.NewBuilder()}
		b.entries.Put(k, e)
	}
	e.(*listEntry).group.Add(value)
	return b
}

// PutAll puts the given pairs in traversal order. Returns the builder for
// chaining.
func (b *ListBuilder) PutAll(pairs ...immutable.Pair) *ListBuilder {
	for _, p := range pairs {
		b.Put(p.Key, p.Value)
	}
	return b
}

// Build produces an immutable snapshot with fresh storage. The builder
// stays usable afterwards. Zero entries yield the shared empty instance.
func (b *ListBuilder) Build() *ListMultiDict {
	if b.entries.Size() == 0 {
		return emptyLists
	}
	m := &ListMultiDict{
		keys:   make([]interface{}, 0, b.entries.Size()),
		index:  make(map[interface{}]int, b.entries.Size()),
		groups: make([]*ilist.List, 0, b.entries.Size()),
	}
	it := b.entries.Iterator()
	for it.Next() {
		e := it.Value().(*listEntry)
		group := e.group.Build()
		m.index[it.Key()] = len(m.keys)
		m.keys = append(m.keys, e.key)
		m.groups = append(m.groups, group)
		m.size += group.Size()
	}
	tracer().Debugf("built immutable list-multidict: %d keys, %d pairs", len(m.keys), m.size)
	return m
}
