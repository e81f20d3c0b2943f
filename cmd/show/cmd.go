package show

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/satkit/remodel/internal/trail"
)

func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <trail>",
		Short: "Prints an elimination trail in a readable form",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(args[0])
		},
	}
}

func show(trailPath string) error {
	trailFile, err := os.Open(trailPath)
	if err != nil {
		return fmt.Errorf("error opening trail file (%s): %w", trailPath, err)
	}
	defer trailFile.Close()
	conv, err := trail.Parse(trailFile)
	if err != nil {
		return fmt.Errorf("error parsing trail file (%s): %w", trailPath, err)
	}
	fmt.Print(conv)
	return nil
}
