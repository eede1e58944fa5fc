package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// InteractivePrompter uses promptui to present a terminal prompt.
// No validation is attached to the prompts; answers are returned as entered.
type InteractivePrompter struct {
}

func NewInteractivePrompter() *InteractivePrompter {
	return &InteractivePrompter{}
}

func (*InteractivePrompter) Prompt(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	prompt := promptui.Prompt{
		Label: strings.TrimSuffix(label, ":"),
	}

	answer, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	return strings.TrimSpace(answer), nil
}
