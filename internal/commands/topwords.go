package commands

import (
	"fmt"
	"iter"
	"slices"
	"text/tabwriter"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/scylladb/go-set/strset"
	"github.com/spf13/cobra"

	"cookbook/counter"
	"cookbook/internal/logging"
	"cookbook/seqs"
	"cookbook/sliceutil"
	"cookbook/text"
)

var wordPattern = text.MustCompile(`[\w']+`)

func NewTopWordsCommand() *cobra.Command {
	var (
		count     int
		minCount  int
		stopWords []string
	)
	cmd := &cobra.Command{
		Use:   "topwords [FILE]",
		Short: "Print the most common words",
		Long: heredoc.Doc(`
			Print the most common words of the input with their counts. A count
			of 0 or less prints every word. With --min-count the listing stops at
			the first word seen fewer times than that.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := strset.New(stopWords...)
			return withInput(cmd, fileArg(args, 0), func(lines iter.Seq[string]) error {
				words := counter.New[string]()
				for line := range lines {
					for _, m := range wordPattern.FindAll(line) {
						if !stop.Has(m[0]) {
							words.Add(m[0])
						}
					}
				}
				logging.Debug().Int("distinct", words.Len()).Int("total", words.Total()).Msg("words counted")
				top := slices.Values(words.MostCommon(count))
				if minCount > 0 {
					top = seqs.TakeWhile(top, func(e counter.Entry[string]) bool {
						return e.Count >= minCount
					})
				}
				return printTopWords(cmd, seqs.Collect(top))
			})
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 3, "number of words to print")
	cmd.Flags().IntVar(&minCount, "min-count", 0, "only print words seen at least this many times")
	cmd.Flags().StringSliceVar(&stopWords, "stop-words", nil, "words to ignore")
	return cmd
}

func printTopWords(cmd *cobra.Command, top []counter.Entry[string]) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	rows := sliceutil.Map(top, func(e counter.Entry[string]) string {
		return fmt.Sprintf("%s\t%s\n", e.Item, humanize.Comma(int64(e.Count)))
	})
	for _, row := range rows {
		if _, err := fmt.Fprint(tw, row); err != nil {
			return err
		}
	}
	return tw.Flush()
}
