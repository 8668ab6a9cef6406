package idict

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/isi-vista/immutable"
)

// Builder is a mutable accumulator for a Dict. Keys keep the position of
// their first Put; a repeated Put replaces the value in place. Builders
// are single-owner during accumulation.
type Builder struct {
	elems *linkedhashmap.Map // key index key → immutable.Pair

	// source is the lazy seed installed by Dict.CopyBuilder. It is copied
	// into elems on the first Put; Build with source still set returns it
	// unchanged.
	source *Dict
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{elems: linkedhashmap.New()}
}

// Put inserts or replaces the value for a key. Returns the builder for
// chaining. Panics with *immutable.InvalidElementError if the key is not
// hashable.
func (b *Builder) Put(key, value interface{}) *Builder {
	if b.source != nil {
		src := b.source
		b.source = nil
		b.elems = linkedhashmap.New()
		for _, p := range src.pairs {
			b.elems.Put(immutable.MustIndexKey(p.Key), p)
		}
	}
	if b.elems == nil {
		b.elems = linkedhashmap.New()
	}
	b.elems.Put(immutable.MustIndexKey(key), immutable.Pair{Key: key, Value: value})
	return b
}

// PutAll inserts the given pairs in traversal order, equivalent to
// repeated Put. Returns the builder for chaining.
func (b *Builder) PutAll(pairs ...immutable.Pair) *Builder {
	for _, p := range pairs {
		b.Put(p.Key, p.Value)
	}
	return b
}

// Contains reports whether all given keys have been accumulated so far.
func (b *Builder) Contains(keys ...interface{}) bool {
	if b.source != nil {
		return b.source.Contains(keys...)
	}
	for _, key := range keys {
		k, ok := immutable.IndexKey(key)
		if !ok {
			return false
		}
		if _, present := b.elems.Get(k); !present {
			return false
		}
	}
	return true
}

// Size returns the number of distinct keys accumulated so far.
func (b *Builder) Size() int {
	if b.source != nil {
		return b.source.Size()
	}
	return b.elems.Size()
}

// Build produces an immutable snapshot of the accumulated entries, with
// fresh storage. The builder stays usable afterwards; later puts never
// affect previously built dicts. Zero entries yield the shared empty dict.
func (b *Builder) Build() *Dict {
	if b.source != nil {
		// no puts were done, the seed can be shared as-is
		return b.source
	}
	if b.elems.Size() == 0 {
		return empty
	}
	pairs := make([]immutable.Pair, 0, b.elems.Size())
	index := make(map[interface{}]int, b.elems.Size())
	it := b.elems.Iterator()
	for it.Next() {
		index[it.Key()] = len(pairs)
		pairs = append(pairs, it.Value().(immutable.Pair))
	}
	tracer().Debugf("built immutable dict of %d entries", len(pairs))
	return &Dict{pairs: pairs, index: index}
}
