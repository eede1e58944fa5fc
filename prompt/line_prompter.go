package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LinePrompter prints each label on its own line and reads one newline-terminated
// line of input in response. It works with piped input as well as a terminal.
type LinePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLinePrompter creates a prompter reading from in and printing labels to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (p *LinePrompter) Prompt(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	if _, err := fmt.Fprintln(p.out, label); err != nil {
		return "", fmt.Errorf("failed to print prompt '%s': %w", label, err)
	}

	line, err := p.reader.ReadString('\n')
	if err != nil {
		// a final line without a terminator is still a line
		if !errors.Is(err, io.EOF) || line == "" {
			return "", fmt.Errorf("%w: %w", ErrReadInput, err)
		}
	}

	return strings.TrimSpace(line), nil
}
