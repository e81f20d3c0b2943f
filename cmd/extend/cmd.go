package extend

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/spf13/cobra"

	"github.com/satkit/remodel/internal/trail"
	"github.com/satkit/remodel/pkg/remodel"
)

func NewExtendCommand() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "extend <cnf> <trail>",
		Short: "Solves a simplified formula and reconstructs the full model",
		Long: `Solves the simplified, post-preprocessing formula (DIMACS cnf format)
and extends its model to one of the original formula by replaying the
elimination trail in reverse. For instance:

c trail: x1 was eliminated with clauses (1 2) and (-1 3)
e 1 1 2 0 -1 3 0
c x4 blocked on literal -4
b 4 -4 2 0

The resulting model is printed as a DIMACS "v" line and covers both
the surviving and the eliminated variables.`,
		Args: cobra.ExactArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("file (%s) not found", path)
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return extend(args[0], args[1], verbose)
		},
	}
	cmd.Flags().BoolVar(&verbose, "verbose", false, "print clause-level diagnostics on check failures")
	return cmd
}

func extend(cnfPath, trailPath string, verbose bool) error {
	cnfFile, err := os.Open(cnfPath)
	if err != nil {
		return fmt.Errorf("error opening cnf file (%s): %w", cnfPath, err)
	}
	defer cnfFile.Close()
	cnf, err := trail.ParseCNF(cnfFile)
	if err != nil {
		return fmt.Errorf("error parsing cnf file (%s): %w", cnfPath, err)
	}

	trailFile, err := os.Open(trailPath)
	if err != nil {
		return fmt.Errorf("error opening trail file (%s): %w", trailPath, err)
	}
	defer trailFile.Close()
	var options []remodel.Option
	if verbose {
		options = append(options, remodel.WithTracer(remodel.LoggingTracer{Writer: os.Stderr}))
	}
	conv, err := trail.Parse(trailFile, options...)
	if err != nil {
		return fmt.Errorf("error parsing trail file (%s): %w", trailPath, err)
	}

	maxVar := conv.MaxVar(cnf.MaxVar)
	if !conv.CheckInvariant(maxVar) {
		return fmt.Errorf("trail violates the elimination ordering invariant")
	}

	// solve the surviving formula
	g := gini.New()
	for _, clause := range cnf.Clauses {
		for _, l := range clause {
			g.Add(l)
		}
		g.Add(z.LitNull)
	}
	if g.Solve() != 1 {
		fmt.Println("s UNSATISFIABLE")
		return nil
	}

	// partial model over the surviving variables only; eliminated
	// variables stay undefined for Apply to establish
	m := remodel.NewModel(maxVar)
	for v := range cnf.Vars() {
		m.Set(v, remodel.Lift(g.Value(v.Pos())))
	}

	if err := conv.Apply(m); err != nil {
		return fmt.Errorf("model reconstruction failed: %w", err)
	}
	if !conv.CheckModel(m) {
		return fmt.Errorf("reconstructed model does not satisfy the eliminated clauses")
	}

	fmt.Println("s SATISFIABLE")
	fmt.Println(trail.FormatModel(m))
	return nil
}
