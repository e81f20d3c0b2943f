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

// ParseModel reads a model in DIMACS solution format: "c" comment and
// "s" status lines are ignored, "v" lines carry literals, the whole
// sequence terminated by 0. A positive literal assigns true, a
// negative one false; unmentioned variables stay undefined.
func ParseModel(r io.Reader) (remodel.Model, error) {
	m := remodel.NewModel(0)
	scanner := bufio.NewScanner(r)
	lineno := 0
	seen := false
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") || strings.HasPrefix(line, "s") {
			continue
		}
		fields := strings.Fields(line)
		if fields[0] != "v" {
			return nil, fmt.Errorf("line %d: expected a \"v\" line, got %q", lineno, line)
		}
		seen = true
		for _, f := range fields[1:] {
			d, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid literal %q", lineno, f)
			}
			if d == 0 {
				continue
			}
			l := z.Dimacs2Lit(d)
			m = m.Extend(l.Var())
			m.Set(l.Var(), remodel.Lift(d > 0))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading model: %w", err)
	}
	if !seen {
		return nil, fmt.Errorf("no \"v\" line found")
	}
	return m, nil
}

// FormatModel renders m as a DIMACS "v" line. Undefined variables are
// omitted.
func FormatModel(m remodel.Model) string {
	var b strings.Builder
	b.WriteString("v")
	for v := z.Var(1); m.Covers(v); v++ {
		switch m.Value(v) {
		case remodel.True:
			fmt.Fprintf(&b, " %d", v)
		case remodel.False:
			fmt.Fprintf(&b, " -%d", v)
		}
	}
	b.WriteString(" 0")
	return b.String()
}
