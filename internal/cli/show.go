package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/relayer-registry/internal/cli/render"
	"github.com/trebuchet-org/relayer-registry/internal/usecase"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [account]",
		Short: "Show a relayer entry",
		Long: `Show the entry of a registered relayer.

Without an account an interactive picker lists every registered relayer.`,
		Example: `  relayreg show 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var params usecase.ShowRelayerParams
			if len(args) == 1 {
				account, err := parseAccount(args[0])
				if err != nil {
					return err
				}
				params.Account = &account
			}

			relayer, err := app.ShowRelayer.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewRelayersRenderer(cmd.OutOrStdout(), app.Config.Output)
			return renderer.RenderRelayer(relayer)
		},
	}

	return cmd
}
