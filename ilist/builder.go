package ilist

import (
	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/isi-vista/immutable"
)

// Builder is a mutable accumulator for a List. Builders are single-owner
// during accumulation.
type Builder struct {
	items *arraylist.List
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{items: arraylist.New()}
}

// Add appends an item. Returns the builder for chaining.
func (b *Builder) Add(item interface{}) *Builder {
	b.items.Add(item)
	return b
}

// AddAll appends the given items in order. Returns the builder for
// chaining.
func (b *Builder) AddAll(items ...interface{}) *Builder {
	b.items.Add(items...)
	return b
}

// AddValues appends the values of a collection in its iteration order.
// Returns the builder for chaining.
func (b *Builder) AddValues(coll immutable.Collection) *Builder {
	if coll == nil {
		return b
	}
	b.items.Add(coll.Values()...)
	return b
}

// Size returns the number of items accumulated so far.
func (b *Builder) Size() int {
	return b.items.Size()
}

// Build produces an immutable snapshot with fresh storage. The builder
// stays usable; later adds never affect previously built lists. Zero items
// yield the shared empty list.
func (b *Builder) Build() *List {
	if b.items.Size() == 0 {
		return empty
	}
	tracer().Debugf("built immutable list of %d items", b.items.Size())
	return Of(b.items.Values()...)
}
