package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/relayer-registry/internal/cli/render"
	"github.com/trebuchet-org/relayer-registry/internal/domain"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var chain uint

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List registered relayers",
		Long: `List registered relayers in registration order.

With --chain only relayers servicing that chain are shown.`,
		Example: `  # List all relayers
  relayreg list

  # List relayers servicing Polygon as JSON
  relayreg list --chain 137 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var filter domain.RelayerFilter
			if cmd.Flags().Changed("chain") {
				ids, err := toChainIDs([]uint{chain})
				if err != nil {
					return err
				}
				filter.ChainID = &ids[0]
			}

			result, err := app.ListRelayers.Run(cmd.Context(), filter)
			if err != nil {
				return err
			}

			renderer := render.NewRelayersRenderer(cmd.OutOrStdout(), app.Config.Output)
			return renderer.RenderList(result)
		},
	}

	cmd.Flags().UintVar(&chain, "chain", 0, "Only list relayers servicing this chain ID")
	return cmd
}
