/*
Package immutable is a toolbox of immutable collection types.

It provides insertion-order-preserving, hashable collections in the spirit
of Guava's immutable collections. Package structure is as follows:

■ iset: Package iset implements an immutable set which remembers the order
in which distinct elements were first inserted, while still answering
membership queries in O(1).

■ idict: Package idict implements an immutable dictionary with deterministic
key iteration order.

■ ilist: Package ilist implements an immutable sequence type.

■ multidict: Package multidict implements immutable one-to-many mappings,
with either set-valued or list-valued groups.

■ setexpr: Package setexpr implements a small expression language over
immutable sets, intended as a sandbox for experiments. A REPL for it lives
in setexpr/icrepl.

The base package contains the vocabulary shared by all collection packages:
the capability contracts for collection operands, key-value pairs, the
element hashing scheme, and the error types.

Elements

Collections in this module store values of any type, but set elements and
dictionary keys must be hashable: either comparable in the sense of the Go
language specification, or implementing the Hashable interface. Inserting a
non-hashable element panics with *InvalidElementError at the point of
insertion, just as inserting a non-comparable key into a built-in map would
panic at runtime.

All collection types of this module implement Hashable themselves, with a
hash derived from their (unordered, where appropriate) content. Collections
may therefore be nested: a set of sets works as expected, with equal
content yielding equal hashes.

Sharing

Every collection type is deeply frozen after construction. Instances may
therefore be shared freely between goroutines without synchronization.
The builders are the one exception: a builder must be confined to a single
owner during its accumulation phase.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package immutable
