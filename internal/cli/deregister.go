package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/relayer-registry/internal/cli/render"
	"github.com/trebuchet-org/relayer-registry/internal/usecase"
)

// NewDeregisterCmd creates the deregister command
func NewDeregisterCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "deregister",
		Short: "Remove the caller's relayer entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.DeregisterRelayer.Run(cmd.Context(), usecase.DeregisterRelayerParams{Force: yes})
			if errors.Is(err, usecase.ErrDeregisterCancelled) {
				fmt.Fprintln(cmd.OutOrStdout(), render.FormatWarning("Deregistration cancelled"))
				return nil
			}
			if err != nil {
				return err
			}

			renderer := render.NewRelayersRenderer(cmd.OutOrStdout(), app.Config.Output)
			return renderer.RenderDeregistered(result)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
