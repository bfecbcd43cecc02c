package runtime

import "sort"

// Environment is the single flat name→value scope of one evaluator run.
// There is deliberately no parent chain: no language construct introduces a
// nested scope.
type Environment struct {
	values map[string]Value
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// Define inserts or overwrites a binding. Redeclaring a name is not an
// error; the last write wins.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Lookup retrieves a binding.
func (e *Environment) Lookup(name string) (Value, bool) {
	v, ok := e.values[name]
	return v, ok
}

// Snapshot returns a copy of the current bindings.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// Keys returns the bound names in sorted order (useful for determinism in
// tests and CLI output).
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
