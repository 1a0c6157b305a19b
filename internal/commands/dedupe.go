package commands

import (
	"fmt"
	"iter"

	"github.com/spf13/cobra"

	"cookbook/seqs"
)

func NewDedupeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dedupe [FILE]",
		Short: "Print unique lines in the order they first appear",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInput(cmd, fileArg(args, 0), func(lines iter.Seq[string]) error {
				out := cmd.OutOrStdout()
				for line := range seqs.Distinct(lines) {
					if _, err := fmt.Fprintln(out, line); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
