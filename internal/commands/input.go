package commands

import (
	"io"
	"iter"
	"os"

	"github.com/spf13/cobra"

	"cookbook/internal/logging"
	"cookbook/text"
)

// openInput returns the named file, or the command's stdin when name is
// empty or "-".
func openInput(cmd *cobra.Command, name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	logging.Debug().Str("file", name).Msg("reading input")
	return f, nil
}

// fileArg returns args[i] or "" when it is absent.
func fileArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// lineSeq adapts text.Lines to a plain sequence. A read error stops the
// sequence and is stored in *errp.
func lineSeq(r io.Reader, errp *error) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line, err := range text.Lines(r) {
			if err != nil {
				*errp = err
				return
			}
			if !yield(line) {
				return
			}
		}
	}
}

// withInput opens the input named by name, hands its lines to fn and
// reports the first read error.
func withInput(cmd *cobra.Command, name string, fn func(lines iter.Seq[string]) error) error {
	in, err := openInput(cmd, name)
	if err != nil {
		return err
	}
	defer in.Close()

	var readErr error
	if err := fn(lineSeq(in, &readErr)); err != nil {
		return err
	}
	return readErr
}
