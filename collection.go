package immutable

import "fmt"

// --- Capability contracts --------------------------------------------------

// Collection is the minimal capability contract for operands of collection
// operations (set algebra, bulk construction). It is intentionally shaped
// like the containers of github.com/emirpasic/gods, so gods sets and lists
// are accepted operands without adaption.
type Collection interface {
	Size() int
	Values() []interface{}
}

// Container is an optional upgrade of Collection. Operations testing
// membership against an operand will use Contains when the operand provides
// it, instead of indexing the operand's values themselves.
type Container interface {
	Contains(items ...interface{}) bool
}

// --- Pairs -----------------------------------------------------------------

// Pair is a key-value pair, the element type of dictionary construction.
type Pair struct {
	Key   interface{}
	Value interface{}
}

// P is a shorthand constructor for a Pair.
func P(key, value interface{}) Pair {
	return Pair{Key: key, Value: value}
}

func (p Pair) String() string {
	return fmt.Sprintf("%v: %v", p.Key, p.Value)
}
