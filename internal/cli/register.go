package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/relayer-registry/internal/cli/render"
	"github.com/trebuchet-org/relayer-registry/internal/usecase"
)

// NewRegisterCmd creates the register command
func NewRegisterCmd() *cobra.Command {
	var flags relayerFlags

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register the caller as a relayer",
		Long: `Register the caller account as a relayer servicing the given chains.

The caller is derived from --private-key or RELAYREG_PRIVATE_KEY. Each account
can register once, and the registry holds a bounded number of relayers.`,
		Example: `  # Register for Ethereum mainnet and Polygon
  relayreg register --chains 1,137 --metadata https://relay.example`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			chains, err := flags.chainIDs()
			if err != nil {
				return err
			}

			result, err := app.RegisterRelayer.Run(cmd.Context(), usecase.RegisterRelayerParams{
				Chains:   chains,
				Metadata: []byte(flags.metadata),
			})
			if err != nil {
				return err
			}

			renderer := render.NewRelayersRenderer(cmd.OutOrStdout(), app.Config.Output)
			return renderer.RenderRegistered(result)
		},
	}

	flags.bind(cmd)
	return cmd
}
