package iset

import (
	"sort"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/utils"

	"github.com/isi-vista/immutable"
)

// Builder is a mutable accumulator for a Set. It deduplicates on insert,
// keeping the position of the first occurrence. Builders are not safe for
// concurrent mutation; confine a builder to a single owner until built.
//
// The accumulator is a linked hash map from index key to element, which
// gives both the dedup discipline and the insertion order in one
// structure.
type Builder struct {
	elems *linkedhashmap.Map
	cmp   utils.Comparator
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// OrderedBy installs an ordering on the builder: Build will sort the
// elements stably by cmp instead of keeping insertion order. Ties keep
// their insertion order. A nil comparator panics with
// *immutable.InvalidArgumentError.
func OrderedBy(cmp utils.Comparator) BuilderOption {
	if cmp == nil {
		panic(&immutable.InvalidArgumentError{
			Name:   "cmp",
			Reason: "ordering comparator must not be nil",
		})
	}
	return func(b *Builder) {
		b.cmp = cmp
	}
}

// KeyFunc maps an element to the value it should be ordered by.
type KeyFunc func(interface{}) interface{}

// ByKey lifts a unary key function into a comparator: elements compare by
// applying cmp to their keys. Either argument being nil panics with
// *immutable.InvalidArgumentError.
func ByKey(key KeyFunc, cmp utils.Comparator) utils.Comparator {
	if key == nil {
		panic(&immutable.InvalidArgumentError{Name: "key", Reason: "key function must not be nil"})
	}
	if cmp == nil {
		panic(&immutable.InvalidArgumentError{Name: "cmp", Reason: "key comparator must not be nil"})
	}
	return func(a, b interface{}) int {
		return cmp(key(a), key(b))
	}
}

// NewBuilder creates an empty builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{elems: linkedhashmap.New()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add inserts an element. Adding an element already present is a no-op.
// Returns the builder for chaining. Panics with
// *immutable.InvalidElementError if item is not hashable.
func (b *Builder) Add(item interface{}) *Builder {
	k := immutable.MustIndexKey(item)
	if _, present := b.elems.Get(k); !present {
		b.elems.Put(k, item)
	}
	return b
}

// AddAll inserts the given elements in traversal order, equivalent to
// repeated Add. Returns the builder for chaining.
func (b *Builder) AddAll(items ...interface{}) *Builder {
	for _, item := range items {
		b.Add(item)
	}
	return b
}

// AddValues inserts the values of a collection in its iteration order.
// Returns the builder for chaining.
func (b *Builder) AddValues(coll immutable.Collection) *Builder {
	if coll == nil {
		return b
	}
	return b.AddAll(coll.Values()...)
}

// Contains reports whether all given items have been accumulated so far.
func (b *Builder) Contains(items ...interface{}) bool {
	for _, item := range items {
		k, ok := immutable.IndexKey(item)
		if !ok {
			return false
		}
		if _, present := b.elems.Get(k); !present {
			return false
		}
	}
	return true
}

// Size returns the number of distinct elements accumulated so far.
func (b *Builder) Size() int {
	return b.elems.Size()
}

// Build produces an immutable snapshot of the accumulated elements. The
// snapshot owns fresh storage: the builder stays usable, and later Add
// calls never affect previously built sets. Zero accumulated elements
// yield the shared empty set.
//
// Build is the single constructor choke point for Set; the order/index
// invariant is established here and nowhere else.
func (b *Builder) Build() *Set {
	if b.elems.Size() == 0 {
		return empty
	}
	order := b.elems.Values()
	if b.cmp != nil {
		sort.SliceStable(order, func(i, j int) bool {
			return b.cmp(order[i], order[j]) < 0
		})
	}
	index := make(map[interface{}]int, len(order))
	for i, v := range order {
		k, _ := immutable.IndexKey(v)
		index[k] = i
	}
	tracer().Debugf("built immutable set of %d elements", len(order))
	return &Set{order: order, index: index}
}
