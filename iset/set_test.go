package iset

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/isi-vista/immutable"
)

func TestEmptySingleton(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.coll")
	defer teardown()
	//
	e1 := Empty()
	e2 := Of()
	e3 := NewBuilder().Build()
	if e1.Size() != 0 {
		t.Errorf("Expected empty set to have size 0, has %d", e1.Size())
	}
	if e1 != e2 || e1 != e3 {
		t.Errorf("Expected all empty construction paths to share one instance")
	}
}

func TestInsertionOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.coll")
	defer teardown()
	//
	s := Of(3, 1, 2, 1)
	if s.Size() != 3 {
		t.Fatalf("Expected set of 3 elements, got size %d", s.Size())
	}
	want := []interface{}{3, 1, 2}
	for i, w := range want {
		if s.Get(i) != w {
			t.Errorf("Expected element %d to be %v, is %v", i, w, s.Get(i))
		}
	}
}

func TestContains(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.coll")
	defer teardown()
	//
	s := Of(1, 2, 3)
	if !s.Contains(1) {
		t.Errorf("Expected set to contain 1")
	}
	if s.Contains(4) {
		t.Errorf("Expected set to not contain 4")
	}
	if !s.Contains(1, 2, 3) {
		t.Errorf("Expected set to contain all of 1, 2, 3")
	}
	if s.Contains(2, 4) {
		t.Errorf("Expected Contains(2, 4) to fail")
	}
}

func TestGetNegative(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.coll")
	defer teardown()
	//
	s := Of("a", "b", "c")
	if s.Get(-1) != "c" {
		t.Errorf("Expected Get(-1) to be last element, is %v", s.Get(-1))
	}
	if s.Get(-3) != "a" {
		t.Errorf("Expected Get(-3) to be first element, is %v", s.Get(-3))
	}
}

func TestGetOutOfRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.coll")
	defer teardown()
	//
	s := Of(1, 2, 3)
	for _, i := range []int{3, -4} {
		func() {
			defer func() {
				r := recover()
				if _, ok := r.(*immutable.IndexOutOfRangeError); !ok {
					t.Errorf("Expected Get(%d) to panic with IndexOutOfRangeError, got %v", i, r)
				}
			}()
			s.Get(i)
		}()
	}
}

func TestFromIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.coll")
	defer teardown()
	//
	s := Of(1, 2, 3)
	if From(s) != s {
		t.Errorf("Expected From(set) to return the set itself")
	}
	if From(nil) != Empty() {
		t.Errorf("Expected From(nil) to be the empty set")
	}
}

func TestUnhashableElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.coll")
	defer teardown()
	//
	defer func() {
		r := recover()
		if _, ok := r.(*immutable.InvalidElementError); !ok {
			t.Errorf("Expected a slice element to panic with InvalidElementError, got %v", r)
		}
	}()
	Of([]int{1, 2, 3})
}

func TestEqualOrderIrrelevant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.coll")
	defer teardown()
	//
	x := Of("known", "jump")
	y := Of("jump", "known")
	if !x.Equal(y) {
		t.Errorf("Expected %v to equal %v", x, y)
	}
	if x.HashKey() != y.HashKey() {
		t.Errorf("Expected equal sets to have equal hash keys")
	}
	z := Of("known")
	if x.Equal(z) {
		t.Errorf("Expected %v to not equal %v", x, z)
	}
}

func TestEqualDuplicatingOperand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.coll")
	defer teardown()
	//
	s := Of(1, 2, 3)
	other := sliceColl{1, 2, 3, 3, 2, 1}
	if !s.Equal(other) {
		t.Errorf("Expected set to equal a collection with duplicated values")
	}
	smaller := sliceColl{1, 2, 2}
	if s.Equal(smaller) {
		t.Errorf("Expected set of 3 to not equal a collection of 2 distinct values")
	}
}

func TestSetAsElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.coll")
	defer teardown()
	//
	inner1 := Of(1, 2)
	inner2 := Of(2, 1) // equal content, different instance
	outer := Of(inner1, inner2, 3)
	if outer.Size() != 2 {
		t.Errorf("Expected equal inner sets to collapse, outer size is %d", outer.Size())
	}
	if !outer.Contains(Of(1, 2)) {
		t.Errorf("Expected membership of nested sets to go by content")
	}
}

func TestUnion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.coll")
	defer teardown()
	//
	u := Of("a", "c").Union(Of("b", "c"))
	want := []interface{}{"a", "c", "b"}
	if u.Size() != len(want) {
		t.Fatalf("Expected union of size %d, got %d", len(want), u.Size())
	}
	for i, w := range want {
		if u.Get(i) != w {
			t.Errorf("Expected union element %d to be %v, is %v", i, w, u.Get(i))
		}
	}
}

func TestIntersection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.coll")
	defer teardown()
	//
	i := Of(1, 2, 3, 4).Intersection(Of(4, 2, 8))
	if !i.Equal(Of(2, 4)) {
		t.Errorf("Expected intersection {2, 4}, got %v", i)
	}
	if i.Get(0) != 2 {
		t.Errorf("Expected intersection to keep the receiver's order")
	}
}

func TestDifference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.coll")
	defer teardown()
	//
	d := Of("a", "b", "c").Difference(Of("b", "d"))
	if !d.Equal(Of("a", "c")) {
		t.Errorf("Expected difference {a, c}, got %v", d)
	}
}

func TestSymmetricDifference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.coll")
	defer teardown()
	//
	d := Of(1, 2, 3).SymmetricDifference(Of(3, 4))
	if !d.Equal(Of(1, 2, 4)) {
		t.Errorf("Expected symmetric difference {1, 2, 4}, got %v", d)
	}
	want := []interface{}{1, 2, 4}
	for i, w := range want {
		if d.Get(i) != w {
			t.Errorf("Expected element %d to be %v, is %v", i, w, d.Get(i))
		}
	}
}

func TestSubsetSuperset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.coll")
	defer teardown()
	//
	small := Of(1, 2)
	big := Of(3, 2, 1)
	if !small.Subset(big) {
		t.Errorf("Expected {1, 2} to be a subset of {3, 2, 1}")
	}
	if big.Subset(small) {
		t.Errorf("Expected {3, 2, 1} to not be a subset of {1, 2}")
	}
	if !big.Superset(small) {
		t.Errorf("Expected {3, 2, 1} to be a superset of {1, 2}")
	}
	if !small.Subset(small) {
		t.Errorf("Expected a set to be a subset of itself")
	}
	if !Empty().Subset(small) {
		t.Errorf("Expected the empty set to be a subset of everything")
	}
}

func TestAlgebraWithPlainOperand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.coll")
	defer teardown()
	//
	// any Collection works as an operand, not just *Set
	other := sliceColl{2, 4}
	i := Of(1, 2, 3).Intersection(other)
	if !i.Equal(Of(2)) {
		t.Errorf("Expected intersection with plain collection to be {2}, got %v", i)
	}
	u := Of(1).Union(other)
	if !u.Equal(Of(1, 2, 4)) {
		t.Errorf("Expected union with plain collection to be {1, 2, 4}, got %v", u)
	}
}

func TestIterator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.coll")
	defer teardown()
	//
	s := Of("b", "a", "c", "b")
	it := s.Iterator()
	var got []interface{}
	for it.Next() {
		got = append(got, it.Value())
	}
	if len(got) != 3 || got[0] != "b" || got[1] != "a" || got[2] != "c" {
		t.Errorf("Expected iteration order [b a c], got %v", got)
	}
	it.Reset()
	if !it.Next() || it.Value() != "b" || it.Index() != 0 {
		t.Errorf("Expected reset iterator to restart at the first element")
	}
}

func TestString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.coll")
	defer teardown()
	//
	s := Of(1, 2, 3, 2)
	if fmt.Sprintf("%v", s) != "i{1, 2, 3}" {
		t.Errorf("Expected i{1, 2, 3}, got %v", s)
	}
	if Empty().String() != "i{}" {
		t.Errorf("Expected i{}, got %v", Empty())
	}
}

func TestValuesAreFresh(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.coll")
	defer teardown()
	//
	s := Of(1, 2, 3)
	values := s.Values()
	values[0] = 99
	if s.Get(0) != 1 {
		t.Errorf("Expected Values() to hand out a copy, set was mutated")
	}
}

// sliceColl is a minimal Collection operand for algebra tests.
type sliceColl []interface{}

func (c sliceColl) Size() int             { return len(c) }
func (c sliceColl) Values() []interface{} { return c }
