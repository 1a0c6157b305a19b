package commands

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"cookbook/internal/logging"
	"cookbook/queues"
	"cookbook/seqs"
)

func NewPQCommand() *cobra.Command {
	var (
		minFirst bool
		limit    int
	)
	cmd := &cobra.Command{
		Use:   "pq [FILE]",
		Short: "Print items in priority order",
		Long: heredoc.Doc(`
			Read lines of the form "PRIORITY ITEM" and print the items from the
			highest priority to the lowest. Items with the same priority keep
			their input order. Blank lines are skipped. With --limit only the
			first N items are printed.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order := queues.MaxFirst
			if minFirst {
				order = queues.MinFirst
			}
			return withInput(cmd, fileArg(args, 0), func(lines iter.Seq[string]) error {
				return runPQ(cmd, lines, order, limit)
			})
		},
	}
	cmd.Flags().BoolVar(&minFirst, "min", false, "print the lowest priority first")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "print at most this many items (0 prints all)")
	return cmd
}

type pqEntry struct {
	item     string
	priority float64
}

// parsePQLine reads one "PRIORITY ITEM" line. A blank line gives an entry
// with an empty item.
func parsePQLine(n int, line string) (pqEntry, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return pqEntry{}, nil
	}
	field, item, ok := strings.Cut(line, " ")
	item = strings.TrimSpace(item)
	if !ok || item == "" {
		return pqEntry{}, fmt.Errorf("line %d: expected PRIORITY ITEM, got %q", n, line)
	}
	priority, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return pqEntry{}, fmt.Errorf("line %d: invalid priority %q: %w", n, field, err)
	}
	return pqEntry{item: item, priority: priority}, nil
}

func runPQ(cmd *cobra.Command, lines iter.Seq[string], order queues.Order, limit int) error {
	if limit < 0 {
		return errors.New("--limit must not be negative")
	}
	pq := queues.NewPriorityQueue[string, float64](0, order)
	n := 0
	entries := seqs.TryMap(lines, func(line string) (pqEntry, error) {
		n++
		return parsePQLine(n, line)
	})
	for e, err := range entries {
		if err != nil {
			return err
		}
		if e.item != "" {
			pq.Push(e.item, e.priority)
		}
	}
	logging.Debug().Int("items", pq.Len()).Stringer("order", pq.Order()).Msg("queue loaded")

	items := pq.Drain()
	if limit > 0 {
		items = seqs.Take(items, limit)
	}
	out := cmd.OutOrStdout()
	for item := range items {
		if _, err := fmt.Fprintln(out, item); err != nil {
			return err
		}
	}
	return nil
}
