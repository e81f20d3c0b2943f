package remodel

import (
	"github.com/go-air/gini/z"
)

// Value is a lifted boolean: the value a variable carries in a
// partial model. The zero value is Undef.
type Value int8

const (
	Undef Value = 0
	True  Value = 1
	False Value = -1
)

// Lift returns the Value corresponding to b.
func Lift(b bool) Value {
	if b {
		return True
	}
	return False
}

// Not returns the negation of v. Undef negates to Undef.
func (v Value) Not() Value {
	return -v
}

func (v Value) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "undef"
	}
}

// Model assigns a Value to every variable in scope. It is indexed by
// z.Var; index 0 is unused since z.Var 0 is not a valid variable.
type Model []Value

// NewModel returns a Model covering variables 1..maxVar, all Undef.
func NewModel(maxVar z.Var) Model {
	return make(Model, maxVar+1)
}

// Covers reports whether v is within the model's range.
func (m Model) Covers(v z.Var) bool {
	return int(v) < len(m)
}

// Value returns the value assigned to v.
func (m Model) Value(v z.Var) Value {
	return m[v]
}

// Set assigns val to v.
func (m Model) Set(v z.Var, val Value) {
	m[v] = val
}

// Lit evaluates the literal l: True if l holds under m, False if its
// negation holds, Undef if l's variable is unassigned.
func (m Model) Lit(l z.Lit) Value {
	val := m[l.Var()]
	if l.IsPos() {
		return val
	}
	return val.Not()
}

// Extend returns a model covering variables 1..maxVar, preserving all
// existing assignments. The receiver is returned unchanged if it
// already covers maxVar.
func (m Model) Extend(maxVar z.Var) Model {
	if m.Covers(maxVar) {
		return m
	}
	grown := make(Model, maxVar+1)
	copy(grown, m)
	return grown
}
