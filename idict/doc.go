/*
Package idict implements an immutable dictionary with deterministic
iteration order.

A Dict maps hashable keys to arbitrary values. Keys iterate in the order
of their first appearance; putting an existing key again replaces its
value but keeps its position. Equality and hashing ignore order, so two
dicts with the same key-value pairs are equal however they were built.

Dicts are constructed from pairs,

    d := idict.Of(immutable.P("one", 1), immutable.P("two", 2))

or through a builder:

    d := idict.NewBuilder().Put("one", 1).Put("two", 2).Build()

A Dict is frozen after construction and may be shared freely across
goroutines. Dict implements immutable.Hashable, so dicts can be elements
of sets and keys of other dicts, provided their values are hashable too.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package idict

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'immutable.coll'.
func tracer() tracing.Trace {
	return tracing.Select("immutable.coll")
}
