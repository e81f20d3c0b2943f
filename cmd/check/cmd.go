package check

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-air/gini/z"
	"github.com/spf13/cobra"

	"github.com/satkit/remodel/internal/trail"
	"github.com/satkit/remodel/pkg/remodel"
)

func NewCheckCommand() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "check <trail> <model>",
		Short: "Validates a model against an elimination trail",
		Long: `Checks that the trail respects the elimination ordering invariant and
that the given model (a DIMACS "v" line) satisfies every clause the
trail records. No value is assigned; the model is only evaluated.`,
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
			return check(args[0], args[1], verbose)
		},
	}
	cmd.Flags().BoolVar(&verbose, "verbose", false, "print clause-level diagnostics on check failures")
	return cmd
}

func check(trailPath, modelPath string, verbose bool) error {
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

	modelFile, err := os.Open(modelPath)
	if err != nil {
		return fmt.Errorf("error opening model file (%s): %w", modelPath, err)
	}
	defer modelFile.Close()
	m, err := trail.ParseModel(modelFile)
	if err != nil {
		return fmt.Errorf("error parsing model file (%s): %w", modelPath, err)
	}

	maxVar := conv.MaxVar(z.Var(len(m) - 1))
	m = m.Extend(maxVar)

	ok := true
	if conv.CheckInvariant(maxVar) {
		fmt.Println("invariant: ok")
	} else {
		fmt.Println("invariant: violated")
		ok = false
	}
	if conv.CheckModel(m) {
		fmt.Println("model: ok")
	} else {
		fmt.Println("model: unsatisfied clauses")
		ok = false
	}
	if !ok {
		return fmt.Errorf("check failed")
	}
	return nil
}
