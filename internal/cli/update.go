package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/relayer-registry/internal/cli/render"
	"github.com/trebuchet-org/relayer-registry/internal/usecase"
)

// NewUpdateCmd creates the update command
func NewUpdateCmd() *cobra.Command {
	var flags relayerFlags

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace the caller's supported chains and metadata",
		Long: `Replace the supported chains and metadata of the caller's relayer entry.

Both values are replaced as a whole: omitting --metadata clears it. The
registration block and position in the listing are kept.`,
		Example: `  relayreg update --chains 1,10,137 --metadata https://relay.example/v2`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			chains, err := flags.chainIDs()
			if err != nil {
				return err
			}

			result, err := app.UpdateRelayer.Run(cmd.Context(), usecase.UpdateRelayerParams{
				Chains:   chains,
				Metadata: []byte(flags.metadata),
			})
			if err != nil {
				return err
			}

			renderer := render.NewRelayersRenderer(cmd.OutOrStdout(), app.Config.Output)
			return renderer.RenderUpdated(result)
		},
	}

	flags.bind(cmd)
	return cmd
}
