package remodel

import (
	"github.com/go-air/gini/z"
)

// Kind distinguishes the two elimination events a Converter can
// record.
type Kind int8

const (
	// ElimVar records a variable removed entirely from the formula
	// by resolution or substitution. Its value is undefined when
	// reconstruction starts and is established here.
	ElimVar Kind = iota
	// BlockLit records a literal whose clauses were removed by
	// blocked-clause elimination. Its variable may already carry a
	// value when reconstruction reaches the entry, and the entry may
	// flip it.
	BlockLit
)

func (k Kind) String() string {
	switch k {
	case ElimVar:
		return "elim"
	case BlockLit:
		return "blocked"
	default:
		return "unknown"
	}
}

// EntryID identifies an entry within a Converter. IDs are stable for
// the lifetime of the Converter: unlike a pointer into a growing
// sequence, an EntryID remains valid as later entries are appended.
type EntryID int

// entry is one recorded elimination event. clauses is a flat sequence
// of literals, each clause terminated by z.LitNull, the same
// zero-terminated stream shape gini's inter.Adder consumes.
type entry struct {
	kind    Kind
	v       z.Var
	clauses []z.Lit
}

// eachClause calls fn once per recorded clause. fn returning false
// stops the walk.
func (e *entry) eachClause(fn func(clause []z.Lit) bool) {
	start := 0
	for i, l := range e.clauses {
		if l != z.LitNull {
			continue
		}
		if !fn(e.clauses[start:i]) {
			return
		}
		start = i + 1
	}
}
