package setexpr

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/isi-vista/immutable/iset"
)

func evalSet(t *testing.T, input string, env *Env) *iset.Set {
	t.Helper()
	result, err := Eval(input, env)
	if err != nil {
		t.Fatalf("Eval(%q) failed: %v", input, err)
	}
	set, ok := result.(*iset.Set)
	if !ok {
		t.Fatalf("Eval(%q) yielded a %T, expected a set", input, result)
	}
	return set
}

func evalBool(t *testing.T, input string, env *Env) bool {
	t.Helper()
	result, err := Eval(input, env)
	if err != nil {
		t.Fatalf("Eval(%q) failed: %v", input, err)
	}
	b, ok := result.(bool)
	if !ok {
		t.Fatalf("Eval(%q) yielded a %T, expected a bool", input, result)
	}
	return b
}

func TestScan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.lang")
	defer teardown()
	//
	tokens, err := scan(`a = {1, "two"} | b`)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	types := []int{tokIdent, '=', '{', tokNum, ',', tokString, '}', '|', tokIdent, tokEOF}
	if len(tokens) != len(types) {
		t.Fatalf("Expected %d tokens, got %d", len(types), len(tokens))
	}
	for i, typ := range types {
		if tokens[i].typ != typ {
			t.Errorf("Expected token %d to have type %d, has %d (%s)", i, typ, tokens[i].typ, tokens[i])
		}
	}
}

func TestScanNegativeNumber(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.lang")
	defer teardown()
	//
	tokens, err := scan(`{-3, 4}`)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if tokens[1].typ != tokNum || tokens[1].lexeme != "-3" {
		t.Errorf("Expected a single token for -3, got %s", tokens[1])
	}
}

func TestScanError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.lang")
	defer teardown()
	//
	if _, err := scan(`{1} ? {2}`); err == nil {
		t.Errorf("Expected an error for an unknown character")
	}
}

func TestEvalLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.lang")
	defer teardown()
	//
	s := evalSet(t, `{3, 1, 2, 1}`, nil)
	if !s.Equal(iset.Of(3, 1, 2)) {
		t.Errorf("Expected {3, 1, 2}, got %v", s)
	}
	if s.Get(0) != 3 {
		t.Errorf("Expected literal order to be kept")
	}
	if evalSet(t, `{}`, nil) != iset.Empty() {
		t.Errorf("Expected the empty literal to be the empty set")
	}
}

func TestEvalStrings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.lang")
	defer teardown()
	//
	s := evalSet(t, `{"hello", "world"}`, nil)
	if !s.Contains("hello", "world") {
		t.Errorf("Expected string literals without quotes, got %v", s)
	}
}

func TestEvalAlgebra(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.lang")
	defer teardown()
	//
	cases := []struct {
		input string
		want  *iset.Set
	}{
		{`{1, 2} | {2, 3}`, iset.Of(1, 2, 3)},
		{`{1, 2, 3} & {2, 3, 4}`, iset.Of(2, 3)},
		{`{1, 2, 3} - {2}`, iset.Of(1, 3)},
		{`{1, 2} ^ {2, 3}`, iset.Of(1, 3)},
		{`{1, 2} | {3} & {3, 4}`, iset.Of(1, 2, 3)}, // '&' binds tighter
		{`({1, 2} | {3}) & {3, 4}`, iset.Of(3)},
	}
	for _, c := range cases {
		s := evalSet(t, c.input, nil)
		if !s.Equal(c.want) {
			t.Errorf("Expected %s to yield %v, got %v", c.input, c.want, s)
		}
	}
}

func TestEvalComparisons(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.lang")
	defer teardown()
	//
	cases := []struct {
		input string
		want  bool
	}{
		{`{1, 2} == {2, 1}`, true},
		{`{1, 2} == {1}`, false},
		{`{1} <= {1, 2}`, true},
		{`{1, 3} <= {1, 2}`, false},
		{`{1, 2} >= {2}`, true},
		{`{2} >= {1, 2}`, false},
	}
	for _, c := range cases {
		if got := evalBool(t, c.input, nil); got != c.want {
			t.Errorf("Expected %s to be %v", c.input, c.want)
		}
	}
}

func TestEvalAssignment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.lang")
	defer teardown()
	//
	env := NewEnv()
	evalSet(t, `a = {1, 2, 3}`, env)
	evalSet(t, `b = a - {2}`, env)
	s := evalSet(t, `a & b`, env)
	if !s.Equal(iset.Of(1, 3)) {
		t.Errorf("Expected a & b to be {1, 3}, got %v", s)
	}
	if names := env.Names(); len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("Expected bound names [a b], got %v", names)
	}
}

func TestEvalUnknownVariable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.lang")
	defer teardown()
	//
	if _, err := Eval(`nope | {1}`, NewEnv()); err == nil {
		t.Errorf("Expected an unknown variable to be an error")
	}
}

func TestEvalSyntaxErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.lang")
	defer teardown()
	//
	for _, input := range []string{
		`{1, 2`,
		`{1 2}`,
		`| {1}`,
		`{1} |`,
		`a = {1} == {1}`, // a bool cannot be assigned
		`{1} {2}`,
	} {
		if _, err := Eval(input, NewEnv()); err == nil {
			t.Errorf("Expected %q to be a syntax error", input)
		}
	}
}

func TestEnv(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.lang")
	defer teardown()
	//
	env := NewEnv()
	if _, ok := env.Resolve("x"); ok {
		t.Errorf("Expected an empty environment to resolve nothing")
	}
	env.Def("x", iset.Of(1))
	set, ok := env.Resolve("x")
	if !ok || !set.Equal(iset.Of(1)) {
		t.Errorf("Expected x to resolve to {1}, got %v", set)
	}
	env.Def("x", iset.Of(2))
	set, _ = env.Resolve("x")
	if !set.Equal(iset.Of(2)) {
		t.Errorf("Expected rebinding to replace the old value")
	}
}
