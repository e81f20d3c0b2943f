package remodel

import (
	"fmt"
	"io"

	"github.com/go-air/gini/z"
)

// Tracer receives diagnostic detail from the Converter's checking
// passes. Implementations must not retain the clause slice beyond the
// call.
type Tracer interface {
	// UnsatisfiedClause reports a recorded clause that the model
	// under validation does not satisfy.
	UnsatisfiedClause(id EntryID, clause []z.Lit)
	// InvariantViolation reports an entry that references a variable
	// an earlier ElimVar entry had claimed, or a variable out of
	// range.
	InvariantViolation(id EntryID, v z.Var)
}

type DefaultTracer struct{}

func (DefaultTracer) UnsatisfiedClause(_ EntryID, _ []z.Lit) {
}

func (DefaultTracer) InvariantViolation(_ EntryID, _ z.Var) {
}

// LoggingTracer writes one line per reported failure in a
// human-readable form, literals in DIMACS notation.
type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) UnsatisfiedClause(id EntryID, clause []z.Lit) {
	fmt.Fprintf(t.Writer, "entry %d: unsatisfied clause (", id)
	for i, l := range clause {
		if i > 0 {
			fmt.Fprint(t.Writer, " ")
		}
		fmt.Fprintf(t.Writer, "%d", l.Dimacs())
	}
	fmt.Fprintln(t.Writer, ")")
}

func (t LoggingTracer) InvariantViolation(id EntryID, v z.Var) {
	fmt.Fprintf(t.Writer, "entry %d: invariant violation on variable %d\n", id, v)
}
