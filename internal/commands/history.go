package commands

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"cookbook/text"
)

const historySeparator = "--------------------"

func NewHistoryCommand() *cobra.Command {
	var keep int
	cmd := &cobra.Command{
		Use:   "history PATTERN [FILE]",
		Short: "Print matching lines with the lines before them",
		Long: heredoc.Doc(`
			Print every line containing PATTERN, preceded by up to --lines
			previous lines and followed by a separator.
		`),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if keep < 0 {
				return errors.New("--lines must not be negative")
			}
			return withInput(cmd, fileArg(args, 1), func(lines iter.Seq[string]) error {
				out := cmd.OutOrStdout()
				for line, previous := range text.SearchWithHistory(lines, args[0], keep) {
					block := append(previous, line, historySeparator)
					if _, err := fmt.Fprintln(out, strings.Join(block, "\n")); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&keep, "lines", "n", 5, "number of previous lines to print")
	return cmd
}
