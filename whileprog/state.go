package whileprog

import (
	"fmt"
	"iter"
	"maps"
	"strings"

	"github.com/RGates94/proof-and-computation/internal"
)

// State is the variable store of a WHILE program run: a single flat
// namespace of natural-number variables, shared by every nested block.
type State struct {
	Variables map[string]uint64
}

// NewState creates an empty variable store.
func NewState() *State {
	return &State{Variables: map[string]uint64{}}
}

// StateOf creates a variable store pre-populated from vars.
func StateOf(vars map[string]uint64) *State {
	state := NewState()
	maps.Copy(state.Variables, vars)
	return state
}

// Lookup returns the value of name, and whether it is bound.
func (state *State) Lookup(name string) (value uint64, ok bool) {
	value, ok = state.Variables[name]
	return
}

// Get returns the value of name, or ErrUndefinedVariable if it is unbound.
func (state *State) Get(name string) (value uint64, err error) {
	value, ok := state.Variables[name]
	if !ok {
		err = ErrUndefinedVariable(name)
	}
	return
}

// Set binds name to value, replacing any prior value.
func (state *State) Set(name string, value uint64) {
	if state.Variables == nil {
		state.Variables = map[string]uint64{}
	}
	state.Variables[name] = value
}

// Delete unbinds name.
func (state *State) Delete(name string) {
	delete(state.Variables, name)
}

// Len returns the number of bound variables.
func (state *State) Len() int {
	return len(state.Variables)
}

// All iterates the bound variables in name order.
func (state *State) All() iter.Seq2[string, uint64] {
	return internal.SortedAll(state.Variables)
}

// Clone returns an independent copy of the store.
func (state *State) Clone() *State {
	return StateOf(state.Variables)
}

// less evaluates a < b over bound variables.
func (state *State) less(a, b string) (ok bool, err error) {
	va, err := state.Get(a)
	if err != nil {
		return
	}
	vb, err := state.Get(b)
	if err != nil {
		return
	}
	return va < vb, nil
}

// String returns the store as `name = value` lines in name order.
func (state *State) String() string {
	if state.Len() == 0 {
		return "(empty)\n"
	}

	var text strings.Builder
	for name, value := range state.All() {
		fmt.Fprintf(&text, "%v = %v\n", name, value)
	}
	return text.String()
}
