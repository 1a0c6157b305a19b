package text

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"

	"cookbook/queues"
)

// Lines yields the lines of r without their "\n" or "\r\n" terminators.
// Lines of any length are supported. A read error other than io.EOF is
// yielded once, with an empty line, and ends the sequence.
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if len(line) > 0 {
				line = strings.TrimSuffix(line, "\n")
				line = strings.TrimSuffix(line, "\r")
				if !yield(line, nil) {
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield("", err)
				}
				return
			}
		}
	}
}

// SearchWithHistory yields every line containing substr together with up
// to n lines that came before it, oldest first. The history snapshot is a
// fresh slice for each match.
func SearchWithHistory(lines iter.Seq[string], substr string, n int) iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		previous := queues.NewBoundedDeque[string](n)
		for line := range lines {
			if strings.Contains(line, substr) {
				if !yield(line, previous.Slice()) {
					return
				}
			}
			previous.PushBack(line)
		}
	}
}
