/*
Package multidict implements immutable one-to-many mappings.

A multidict associates every key with a group of values. Two flavors
exist, differing in their group semantics:

▪ SetMultiDict — groups are immutable sets (iset.Set): putting the same
key-value pair twice is a no-op, and each group deduplicates while keeping
first-insertion order.

▪ ListMultiDict — groups are immutable lists (ilist.List): duplicates are
kept, in put order.

Keys iterate in the order of their first appearance; groups preserve the
order values were put. Looking up an absent key returns the empty group,
never nil. Both flavors can invert themselves into either flavor, swapping
keys and values.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package multidict

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'immutable.coll'.
func tracer() tracing.Trace {
	return tracing.Select("immutable.coll")
}
