package prompt

import (
	"context"
	"errors"
)

// ErrReadInput is returned when a line cannot be read from the console.
var ErrReadInput = errors.New("failed to read input")

// Prompter is used to ask the user for a single line of input.
type Prompter interface {
	// Prompt presents the given label and returns the entered line with surrounding whitespace removed.
	Prompt(ctx context.Context, label string) (string, error)
}
