package root

import (
	"github.com/spf13/cobra"

	"github.com/satkit/remodel/cmd/check"

	"github.com/satkit/remodel/cmd/extend"

	"github.com/satkit/remodel/cmd/show"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "remodel",
		Short: "Remodel reconstructs SAT models after preprocessing",
		Long: `Remodel extends models of simplified Boolean formulas back to models
of the original formula, replaying the elimination trail recorded by
variable-elimination and blocked-clause-elimination preprocessing.`,
	}

	// add sub-commands
	rootCmd.AddCommand(extend.NewExtendCommand())
	rootCmd.AddCommand(check.NewCheckCommand())
	rootCmd.AddCommand(show.NewShowCommand())

	return rootCmd
}
