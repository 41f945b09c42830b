package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/relayer-registry/internal/domain/config"
	"github.com/trebuchet-org/relayer-registry/internal/domain/models"
	"github.com/trebuchet-org/relayer-registry/internal/usecase"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectRelayer selects a relayer from a list
func (s *SelectorAdapter) SelectRelayer(ctx context.Context, relayers []*models.Relayer, prompt string) (*models.Relayer, error) {
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(relayers) == 0 {
		return nil, fmt.Errorf("no relayers provided for selection")
	}

	if len(relayers) == 1 {
		return relayers[0], nil
	}

	options := formatRelayerOptions(relayers)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(searchTexts(relayers)),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return relayers[index], nil
}

// Confirm asks a yes/no question. Non-interactive mode always confirms.
func (s *SelectorAdapter) Confirm(ctx context.Context, prompt string) (bool, error) {
	if s.config.NonInteractive {
		return true, nil
	}

	confirm := promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
	}

	if _, err := confirm.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
	return true, nil
}

// formatRelayerOptions creates display strings for relayer selection
func formatRelayerOptions(relayers []*models.Relayer) []string {
	options := make([]string, len(relayers))
	for i, relayer := range relayers {
		account := color.New(color.FgWhite, color.Bold).Sprint(relayer.Account.Hex())
		chains := color.New(color.FgBlue).Sprint(formatChains(relayer.SupportedChains))
		options[i] = relayerLine(account, chains, relayer.MetadataString())
	}
	return options
}

// searchTexts returns the uncolored text each option is matched against
func searchTexts(relayers []*models.Relayer) []string {
	texts := make([]string, len(relayers))
	for i, relayer := range relayers {
		texts[i] = relayerLine(relayer.Account.Hex(), formatChains(relayer.SupportedChains), relayer.MetadataString())
	}
	return texts
}

func relayerLine(account, chains, meta string) string {
	if meta == "" {
		return fmt.Sprintf("%s %s", account, chains)
	}
	return fmt.Sprintf("%s %s (%s)", account, chains, meta)
}

func formatChains(chains []models.ChainID) string {
	parts := make([]string, len(chains))
	for i, c := range chains {
		parts[i] = fmt.Sprint(c)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		pattern := fuzzy.Find(input, []string{item})
		return len(pattern) > 0
	}
}

// Ensure the adapter implements the interface
var _ usecase.RelayerSelector = (*SelectorAdapter)(nil)
