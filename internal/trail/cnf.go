package trail

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-air/gini/z"
)

// CNF holds a formula parsed from DIMACS input: the clauses of the
// simplified, post-preprocessing problem.
type CNF struct {
	Clauses [][]z.Lit
	MaxVar  z.Var
}

// Vars returns the set of variables occurring in the clauses.
func (c *CNF) Vars() map[z.Var]struct{} {
	vars := map[z.Var]struct{}{}
	for _, clause := range c.Clauses {
		for _, l := range clause {
			vars[l.Var()] = struct{}{}
		}
	}
	return vars
}

// ParseCNF reads a CNF problem in DIMACS format:
//
//	c a comment
//	p cnf <variables> <clauses>
//	1 -2 0
func ParseCNF(r io.Reader) (*CNF, error) {
	scanner := bufio.NewScanner(r)
	lineno := 0
	declared := -1
	var cnf CNF
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		if fields[0] == "p" {
			if declared >= 0 {
				return nil, fmt.Errorf("line %d: duplicate problem line", lineno)
			}
			if len(fields) != 4 || fields[1] != "cnf" {
				return nil, fmt.Errorf("line %d: invalid problem line %q, want \"p cnf <variables> <clauses>\"", lineno, line)
			}
			nv, err := strconv.Atoi(fields[2])
			if err != nil || nv < 0 {
				return nil, fmt.Errorf("line %d: invalid variable count %q", lineno, fields[2])
			}
			if _, err := strconv.Atoi(fields[3]); err != nil {
				return nil, fmt.Errorf("line %d: invalid clause count %q", lineno, fields[3])
			}
			declared = nv
			continue
		}
		if declared < 0 {
			return nil, fmt.Errorf("line %d: clause before problem line", lineno)
		}
		var clause []z.Lit
		terminated := false
		for _, f := range fields {
			d, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid literal %q", lineno, f)
			}
			if terminated {
				return nil, fmt.Errorf("line %d: literal after clause terminator", lineno)
			}
			if d == 0 {
				terminated = true
				continue
			}
			if d > declared || -d > declared {
				return nil, fmt.Errorf("line %d: literal %d out of range, %d variables declared", lineno, d, declared)
			}
			clause = append(clause, z.Dimacs2Lit(d))
			if v := z.Dimacs2Lit(d).Var(); v > cnf.MaxVar {
				cnf.MaxVar = v
			}
		}
		if !terminated {
			return nil, fmt.Errorf("line %d: clause does not end with 0", lineno)
		}
		cnf.Clauses = append(cnf.Clauses, clause)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading cnf: %w", err)
	}
	if declared < 0 {
		return nil, fmt.Errorf("missing problem line \"p cnf <variables> <clauses>\"")
	}
	return &cnf, nil
}
