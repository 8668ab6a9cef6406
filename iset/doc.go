/*
Package iset implements an immutable set with deterministic iteration order.

A Set remembers the order in which distinct elements were first inserted
and iterates in that order, while membership queries run in O(1) through a
hash index. Duplicate insertions after the first are silently dropped.
Iteration order is ignored for equality and hashing: two sets are equal
exactly if they contain the same elements, and equal sets produce equal
hash keys.

Sets are constructed either directly,

    s := iset.Of(3, 1, 2, 1)      // iterates 3, 1, 2

or incrementally through a builder, which deduplicates on insert:

    b := iset.NewBuilder()
    b.Add(3).AddAll(1, 2, 1)
    s := b.Build()

A builder may be given an ordering; the built set is then sorted stably by
it instead of keeping insertion order:

    b := iset.NewBuilder(iset.OrderedBy(utils.IntComparator))

Once built, a Set is frozen: no operation mutates it, and all set algebra
returns new instances. Sets may therefore be shared freely across
goroutines. Builders are single-owner during accumulation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package iset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'immutable.coll'.
func tracer() tracing.Trace {
	return tracing.Select("immutable.coll")
}
