// Package trail reads and writes the text formats the remodel CLI
// uses: elimination trails, DIMACS CNF formulas, and DIMACS-style
// model lines.
package trail

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-air/gini/z"

	"github.com/satkit/remodel/pkg/remodel"
)

// Parse reads an elimination trail into a Converter. One entry per
// line, chronological order:
//
//	c a comment
//	e <var> <clause> 0 [<clause> 0 ...]
//	b <var> <clause> 0 [<clause> 0 ...]
//
// where "e" records a variable elimination, "b" a blocked literal,
// and clauses are DIMACS literals terminated by 0.
func Parse(r io.Reader, options ...remodel.Option) (*remodel.Converter, error) {
	c := remodel.New(options...)
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		var kind remodel.Kind
		switch fields[0] {
		case "e":
			kind = remodel.ElimVar
		case "b":
			kind = remodel.BlockLit
		default:
			return nil, fmt.Errorf("line %d: unknown entry kind %q", lineno, fields[0])
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: missing variable", lineno)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("line %d: invalid variable %q", lineno, fields[1])
		}
		id := c.NewEntry(kind, z.Var(v))
		var clause []z.Lit
		for _, f := range fields[2:] {
			d, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid literal %q", lineno, f)
			}
			if d == 0 {
				if err := c.AddClause(id, clause...); err != nil {
					return nil, fmt.Errorf("line %d: %w", lineno, err)
				}
				clause = clause[:0]
				continue
			}
			clause = append(clause, z.Dimacs2Lit(d))
		}
		if len(clause) > 0 {
			return nil, fmt.Errorf("line %d: clause does not end with 0", lineno)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading trail: %w", err)
	}
	return c, nil
}
