// Package commands wires the cookbook library packages into a cobra CLI.
package commands

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/jzelinskie/cobrautil/v2"
	"github.com/jzelinskie/cobrautil/v2/cobrazerolog"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"cookbook/internal/logging"
)

func rootExample(programName string) string {
	return fmt.Sprintf(`	%[1]s:
		%[3]s recipes run priority-queue

	%[2]s:
		printf '1 foo\n5 bar\n4 spam\n1 grok\n' | %[3]s pq
`,
		color.YellowString("Run a single recipe"),
		color.GreenString("Pop lines in priority order"),
		programName,
	)
}

// NewRootCommand builds the command tree. Every flag can also be set through
// an environment variable named after the program, e.g. COOKBOOK_LOG_LEVEL.
func NewRootCommand(programName string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   programName,
		Short: "Recipes for everyday data structure and text problems",
		Long: heredoc.Doc(`
			A collection of small data structure and text processing recipes.

			The recipes subcommand prints the demo of each recipe. The other
			subcommands apply one recipe to your own input.
		`),
		Example:       rootExample(programName),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: cobrautil.CommandStack(
			cobrautil.SyncViperPreRunE(programName),
			cobrazerolog.New(
				cobrazerolog.WithTarget(func(logger zerolog.Logger) {
					logging.SetGlobalLogger(logger)
				}),
			).RunE(),
		),
	}
	cobrazerolog.New().RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(NewRecipesCommand())
	cmd.AddCommand(NewPQCommand())
	cmd.AddCommand(NewHistoryCommand())
	cmd.AddCommand(NewDedupeCommand())
	cmd.AddCommand(NewTopWordsCommand())
	cmd.AddCommand(NewGlobCommand())
	return cmd
}
