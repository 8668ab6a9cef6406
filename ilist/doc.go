/*
Package ilist implements an immutable sequence type.

A List holds arbitrary values in a fixed order, duplicates allowed.
Unlike set elements, list elements need not be hashable; only HashKey
demands hashable content. Equality is order-dependent and holds only
between lists, mirroring the relationship between slices and arrays
rather than the set types' order-independent equality.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package ilist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'immutable.coll'.
func tracer() tracing.Trace {
	return tracing.Select("immutable.coll")
}
