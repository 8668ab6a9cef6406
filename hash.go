package immutable

import (
	"crypto/sha1"
	"encoding/hex"
	"reflect"

	"github.com/cnf/structhash"
)

// The element hashing scheme. Every hashable value maps to two things:
//
// ▪ an index key, a comparable value usable as a built-in map key, with the
//   property that two elements are equal exactly if their index keys are
//   equal. For plain comparable values the index key is the value itself;
//   for Hashable values it is derived from HashKey(), so that equality is
//   by content rather than by pointer identity.
//
// ▪ a content hash, a fixed-size digest used to fold the hash of whole
//   collections. Digests are produced by structhash, except for Hashable
//   values, which supply their own key.
//
// Folding element digests with XOR makes a collection hash independent of
// element order, which is exactly the contract an unordered set hash needs:
// equal sets hash equal, regardless of insertion history.

// Hashable may be implemented by element types which are not comparable, or
// which want equality by content instead of Go's built-in comparison. Two
// values with equal hash keys are considered equal elements. All collection
// types of this module implement Hashable.
type Hashable interface {
	HashKey() string
}

// hashedKey wraps the hash key of a Hashable element into a comparable
// index key.
type hashedKey struct {
	key string
}

// IsHashable reports whether v may be stored in a set or used as a
// dictionary key.
func IsHashable(v interface{}) bool {
	if v == nil {
		return true
	}
	if _, ok := v.(Hashable); ok {
		return true
	}
	return reflect.TypeOf(v).Comparable()
}

// IndexKey returns the comparable index key for v, or ok=false if v is not
// hashable.
func IndexKey(v interface{}) (interface{}, bool) {
	if v == nil {
		return nil, true
	}
	if h, ok := v.(Hashable); ok {
		return hashedKey{key: h.HashKey()}, true
	}
	if reflect.TypeOf(v).Comparable() {
		return v, true
	}
	return nil, false
}

// MustIndexKey is IndexKey for callers on the insertion path: a
// non-hashable v panics with *InvalidElementError.
func MustIndexKey(v interface{}) interface{} {
	k, ok := IndexKey(v)
	if !ok {
		panic(&InvalidElementError{Value: v})
	}
	return k
}

// HashOf returns the content digest of a single hashable value. It panics
// with *InvalidElementError if v is not hashable.
func HashOf(v interface{}) []byte {
	if v == nil {
		return make([]byte, sha1.Size)
	}
	if h, ok := v.(Hashable); ok {
		d := sha1.Sum([]byte(h.HashKey()))
		return d[:]
	}
	if !reflect.TypeOf(v).Comparable() {
		panic(&InvalidElementError{Value: v})
	}
	return structhash.Sha1(v, 1)
}

// UnorderedHash folds the digests of values into an order-independent hash
// key. Permutations of the same values produce identical keys.
func UnorderedHash(values []interface{}) string {
	acc := make([]byte, sha1.Size)
	for _, v := range values {
		xorInto(acc, HashOf(v))
	}
	return hex.EncodeToString(acc)
}

// OrderedHash chains the digests of values into an order-dependent hash
// key, for sequence types.
func OrderedHash(values []interface{}) string {
	d := sha1.New()
	for _, v := range values {
		d.Write(HashOf(v))
	}
	return hex.EncodeToString(d.Sum(nil))
}

// HashPairs folds key-value pairs into an order-independent hash key, for
// mapping types. Each pair contributes the digest of its concatenated key
// and value digests, so (a,b) and (b,a) contribute differently.
func HashPairs(pairs []Pair) string {
	acc := make([]byte, sha1.Size)
	for _, p := range pairs {
		d := sha1.New()
		d.Write(HashOf(p.Key))
		d.Write(HashOf(p.Value))
		xorInto(acc, d.Sum(nil))
	}
	return hex.EncodeToString(acc)
}

func xorInto(acc, h []byte) {
	for i := range acc {
		if i < len(h) {
			acc[i] ^= h[i]
		}
	}
}

// ValueEqual is the equality used for dictionary values and list elements,
// where operands need not be hashable. Hashable values compare by index
// key; everything else falls back to deep equality.
func ValueEqual(a, b interface{}) bool {
	ka, oka := IndexKey(a)
	kb, okb := IndexKey(b)
	if oka && okb {
		return ka == kb
	}
	if oka != okb {
		return false
	}
	return reflect.DeepEqual(a, b)
}
