package commands

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cookbook/internal/recipes"
)

// ValidOutputs are the formats accepted by "recipes list --output".
var ValidOutputs = []string{"text", "json", "yaml"}

func NewRecipesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "List and run the recipe demos",
	}
	cmd.AddCommand(newRecipesListCommand())
	cmd.AddCommand(newRecipesRunCommand())
	return cmd
}

func newRecipesListCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the recipes in section order",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidOutputs, output) {
				return fmt.Errorf("invalid output %q: must be one of %v", output, ValidOutputs)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRecipes(cmd.OutOrStdout(), output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text|json|yaml)")
	return cmd
}

// listing is the yaml form of a catalogue entry. A sequence keeps the
// catalogue order, which a yaml mapping would not.
type listing struct {
	Slug           string `yaml:"slug"`
	recipes.Recipe `yaml:",inline"`
}

func listRecipes(w io.Writer, output string) error {
	catalogue := recipes.Catalogue()
	switch output {
	case "json":
		data, err := catalogue.MarshalJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err

	case "yaml":
		entries := make([]listing, 0, catalogue.Len())
		for slug, r := range catalogue.All() {
			entries = append(entries, listing{Slug: slug, Recipe: r})
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()

	default:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for slug, r := range catalogue.All() {
			if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Section, slug, r.Title); err != nil {
				return err
			}
		}
		return tw.Flush()
	}
}

func newRecipesRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run [NAME...]",
		Short: "Run recipe demos",
		Long: heredoc.Doc(`
			Run the named recipes, or every recipe when no name is given, and
			print their output under a header line.
		`),
		ValidArgs: recipes.Slugs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return recipes.RunAll(cmd.OutOrStdout(), args...)
		},
	}
}
