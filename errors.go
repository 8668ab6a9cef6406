package immutable

import "fmt"

// Error types for contract violations. Collections deliver these by
// panicking at the point of the violation, mirroring the behavior of the
// built-in types they stand in for (map key panics, slice index panics).
// Operations which can fail for data-dependent reasons return plain error
// values instead.

// InvalidElementError reports an element which cannot be stored in a set or
// used as a dictionary key, because it is neither comparable nor Hashable.
type InvalidElementError struct {
	Value interface{}
}

func (e *InvalidElementError) Error() string {
	return fmt.Sprintf("element of type %T is not hashable: %v", e.Value, e.Value)
}

// InvalidArgumentError reports a malformed constructor or builder argument.
type InvalidArgumentError struct {
	Name   string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument '%s': %s", e.Name, e.Reason)
}

// IndexOutOfRangeError reports positional access outside [0, Length), after
// negative-from-end normalization.
type IndexOutOfRangeError struct {
	Index  int
	Length int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for collection of size %d", e.Index, e.Length)
}

// DuplicateKeyError reports a key occurring twice where unique keys were
// demanded.
type DuplicateKeyError struct {
	Key interface{}
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key: %v", e.Key)
}
