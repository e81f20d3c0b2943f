// Package remodel reconstructs complete satisfying assignments for
// formulas that were simplified by variable-elimination and
// blocked-clause-elimination preprocessing.
//
// A preprocessing pass records one Converter entry per elimination
// event, together with the clauses it removed or shortened. After the
// search procedure produces a model of the surviving variables,
// Converter.Apply walks the recorded entries in reverse chronological
// order and extends that model, in place, to one that satisfies every
// removed clause. CheckModel and CheckInvariant expose the
// correctness conditions as callable checks so they can run in any
// build, not only under a debug switch.
package remodel

import (
	"fmt"
	"strings"

	"github.com/go-air/gini/z"
)

// Converter is an append-only record of elimination events. It is
// populated during preprocessing and read-only afterwards; it is not
// safe for concurrent use.
type Converter struct {
	entries []entry
	tracer  Tracer
}

// Option configures a Converter.
type Option func(c *Converter)

// WithTracer directs check failure diagnostics to t instead of
// discarding them.
func WithTracer(t Tracer) Option {
	return func(c *Converter) {
		c.tracer = t
	}
}

// New returns an empty Converter.
func New(options ...Option) *Converter {
	c := &Converter{tracer: DefaultTracer{}}
	for _, option := range options {
		option(c)
	}
	return c
}

// Len returns the number of recorded entries.
func (c *Converter) Len() int {
	return len(c.entries)
}

// NewEntry appends an entry for v and returns its id. Clauses are
// attached afterwards with AddClause or AddBinary; the id stays valid
// as later entries are appended.
func (c *Converter) NewEntry(kind Kind, v z.Var) EntryID {
	c.entries = append(c.entries, entry{kind: kind, v: v})
	return EntryID(len(c.entries) - 1)
}

// AddClause appends a clause to the entry's buffer. The clause must
// contain the entry's variable and no null literal.
func (c *Converter) AddClause(id EntryID, clause ...z.Lit) error {
	if int(id) < 0 || int(id) >= len(c.entries) {
		return fmt.Errorf("no entry with id %d", id)
	}
	e := &c.entries[id]
	found := false
	for _, l := range clause {
		if l == z.LitNull {
			return fmt.Errorf("entry %d: clause contains the null literal", id)
		}
		if l.Var() == e.v {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("entry %d: clause does not contain variable %d", id, e.v)
	}
	e.clauses = append(e.clauses, clause...)
	e.clauses = append(e.clauses, z.LitNull)
	return nil
}

// AddBinary records the two-literal clause (a or b).
func (c *Converter) AddBinary(id EntryID, a, b z.Lit) error {
	return c.AddClause(id, a, b)
}

// Apply extends m to satisfy every recorded clause, walking entries
// from last-inserted to first-inserted. Within an entry the clause
// buffer is scanned left to right: a clause already satisfied by m is
// left alone, a clause satisfiable by assigning a free variable other
// than the entry's own is satisfied that way, and a clause still
// unsatisfied at its terminator forces the entry's variable to the
// value that makes its last scanned occurrence true. When several of
// an entry's clauses force its variable, the last one scanned wins;
// preprocessing guarantees a single value works for all of them.
//
// On entry, m must assign Undef to the variable of every ElimVar
// entry. Apply mutates only variables referenced by some entry. A
// non-nil error means the recorded entries are inconsistent with m
// and the model contents are unspecified.
func (c *Converter) Apply(m Model) error {
	for i := len(c.entries) - 1; i >= 0; i-- {
		e := &c.entries[i]
		if !m.Covers(e.v) {
			return fmt.Errorf("model does not cover variable %d of entry %d", e.v, i)
		}
		if e.kind == ElimVar && m.Value(e.v) != Undef {
			return fmt.Errorf("eliminated variable %d of entry %d is already assigned", e.v, i)
		}
		sat := false
		// polarity of the entry's variable where last scanned;
		// negated occurrences record true
		negated := false
		for _, l := range e.clauses {
			if l == z.LitNull {
				if !sat {
					// nothing else satisfies the clause: make the
					// entry variable's last occurrence true
					m.Set(e.v, Lift(!negated))
				}
				sat = false
				continue
			}
			if sat {
				continue
			}
			v := l.Var()
			if !m.Covers(v) {
				return fmt.Errorf("model does not cover variable %d referenced by entry %d", v, i)
			}
			if v == e.v {
				negated = !l.IsPos()
			}
			if m.Lit(l) == True {
				sat = true
			} else if v != e.v && m.Value(v) == Undef {
				// a still-free variable can satisfy the clause
				// without touching the entry's own; the ordering
				// invariant guarantees no pending ElimVar entry
				// declares v
				m.Set(v, Lift(l.IsPos()))
				sat = true
			}
		}
		if bad := firstUnsatisfied(e, m); bad != nil {
			c.tracer.UnsatisfiedClause(EntryID(i), bad)
			return fmt.Errorf("entry %d (%s %d): clause unsatisfied after reconstruction", i, e.kind, e.v)
		}
	}
	return nil
}

// firstUnsatisfied returns the first clause of e that m does not
// satisfy, or nil.
func firstUnsatisfied(e *entry, m Model) []z.Lit {
	var bad []z.Lit
	e.eachClause(func(clause []z.Lit) bool {
		for _, l := range clause {
			if m.Covers(l.Var()) && m.Lit(l) == True {
				return true
			}
		}
		bad = clause
		return false
	})
	return bad
}

// CheckModel reports whether m satisfies every recorded clause. It
// never assigns; unsatisfied clauses are reported to the tracer.
// Calling it on the model Apply produced is the standard assurance
// check.
func (c *Converter) CheckModel(m Model) bool {
	ok := true
	for i := len(c.entries) - 1; i >= 0; i-- {
		e := &c.entries[i]
		sat := false
		start := 0
		for j, l := range e.clauses {
			if l == z.LitNull {
				if !sat {
					c.tracer.UnsatisfiedClause(EntryID(i), e.clauses[start:j])
					ok = false
				}
				sat = false
				start = j + 1
				continue
			}
			if sat {
				continue
			}
			if m.Covers(l.Var()) && m.Lit(l) == True {
				sat = true
			}
		}
	}
	return ok
}

// CheckInvariant verifies the ordering condition reconstruction
// relies on: once an ElimVar entry declares a variable, no entry
// recorded after it may reference that variable, and every referenced
// variable must be at most maxVar. Violations are reported to the
// tracer. Intended for use by preprocessing self-checks and tests.
func (c *Converter) CheckInvariant(maxVar z.Var) bool {
	for i := range c.entries {
		e := &c.entries[i]
		if e.v > maxVar {
			c.tracer.InvariantViolation(EntryID(i), e.v)
			return false
		}
		if e.kind != ElimVar {
			continue
		}
		for j := i + 1; j < len(c.entries); j++ {
			later := &c.entries[j]
			if later.v == e.v {
				c.tracer.InvariantViolation(EntryID(j), later.v)
				return false
			}
			for _, l := range later.clauses {
				if l == z.LitNull {
					continue
				}
				if l.Var() == e.v || l.Var() > maxVar {
					c.tracer.InvariantViolation(EntryID(j), l.Var())
					return false
				}
			}
		}
	}
	return true
}

// CollectVars adds the declared variable of every entry to s. The
// result identifies which variables are preprocessing artifacts
// rather than part of the surviving formula.
func (c *Converter) CollectVars(s map[z.Var]struct{}) {
	for i := range c.entries {
		s[c.entries[i].v] = struct{}{}
	}
}

// MaxVar returns the largest variable appearing in any recorded
// clause, or floor if none exceeds it.
func (c *Converter) MaxVar(floor z.Var) z.Var {
	max := floor
	for i := range c.entries {
		for _, l := range c.entries[i].clauses {
			if l == z.LitNull {
				continue
			}
			if l.Var() > max {
				max = l.Var()
			}
		}
	}
	return max
}

// Copy returns a deep copy; the copy's entries and clause buffers are
// independent of the receiver's.
func (c *Converter) Copy() *Converter {
	out := &Converter{
		tracer:  c.tracer,
		entries: make([]entry, len(c.entries)),
	}
	for i := range c.entries {
		e := c.entries[i]
		e.clauses = append([]z.Lit(nil), e.clauses...)
		out.entries[i] = e
	}
	return out
}

// Reset discards all recorded entries.
func (c *Converter) Reset() {
	c.entries = nil
}

// String renders every entry with its clauses, literals in DIMACS
// notation, for diagnostics.
func (c *Converter) String() string {
	var b strings.Builder
	b.WriteString("(model-converter")
	for i := range c.entries {
		e := &c.entries[i]
		fmt.Fprintf(&b, "\n  (%s %d", e.kind, e.v)
		e.eachClause(func(clause []z.Lit) bool {
			b.WriteString("\n    (")
			for j, l := range clause {
				if j > 0 {
					b.WriteByte(' ')
				}
				fmt.Fprintf(&b, "%d", l.Dimacs())
			}
			b.WriteByte(')')
			return true
		})
		b.WriteByte(')')
	}
	b.WriteString(")\n")
	return b.String()
}
