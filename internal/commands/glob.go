package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cookbook/text"
)

func NewGlobCommand() *cobra.Command {
	var fold bool
	cmd := &cobra.Command{
		Use:   "glob PATTERN NAME...",
		Short: "Print the names matching a shell wildcard pattern",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			match := text.WildcardMatchCase
			if fold {
				match = text.WildcardMatchFold
			}
			out := cmd.OutOrStdout()
			for _, name := range args[1:] {
				if !match(name, args[0]) {
					continue
				}
				if _, err := fmt.Fprintln(out, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&fold, "fold", false, "ignore case")
	return cmd
}
