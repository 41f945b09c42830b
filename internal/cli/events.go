package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/relayer-registry/internal/cli/render"
	"github.com/trebuchet-org/relayer-registry/internal/domain"
)

// NewEventsCmd creates the events command
func NewEventsCmd() *cobra.Command {
	var (
		limit int
		kind  string
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Show the registry event journal",
		Long: `Show registry events, newest first.

Every successful register, update and deregister is journaled.`,
		Example: `  # Last 5 registrations
  relayreg events --kind registered --limit 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			filter := domain.EventFilter{Limit: limit}
			if kind != "" {
				k, ok := domain.ParseEventKind(kind)
				if !ok {
					return fmt.Errorf("invalid event kind: %s (valid: registered, deregistered, updated)", kind)
				}
				filter.Kind = k
			}

			entries, err := app.ListEvents.Run(cmd.Context(), filter)
			if err != nil {
				return err
			}

			renderer := render.NewEventsRenderer(cmd.OutOrStdout(), app.Config.Output)
			return renderer.RenderEvents(entries)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of events to show (0 for all)")
	cmd.Flags().StringVar(&kind, "kind", "", "Only show events of this kind (registered, deregistered, updated)")
	return cmd
}
