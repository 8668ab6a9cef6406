package setexpr

import (
	"sort"

	"github.com/isi-vista/immutable/iset"
)

// Env holds the variable bindings of an evaluation session. An Env is a
// plain mutable map and, like the collection builders, single-owner.
type Env struct {
	vars map[string]*iset.Set
}

// NewEnv creates an empty environment.
func NewEnv() *Env {
	return &Env{vars: make(map[string]*iset.Set)}
}

// Def binds a set to a variable name, replacing any previous binding.
func (e *Env) Def(name string, set *iset.Set) {
	e.vars[name] = set
}

// Resolve looks up a variable binding.
func (e *Env) Resolve(name string) (*iset.Set, bool) {
	set, ok := e.vars[name]
	return set, ok
}

// Names returns the bound variable names, sorted.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
