package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/relayer-registry/internal/app"
	"github.com/trebuchet-org/relayer-registry/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command. Resources opened while running a
// command are released by Execute; callers driving the command directly
// should use newRootCmd and run the returned cleanup.
func NewRootCmd() *cobra.Command {
	rootCmd, _ := newRootCmd()
	return rootCmd
}

// Execute runs the CLI with the given arguments
func Execute(ctx context.Context, args []string) error {
	rootCmd, cleanup := newRootCmd()
	defer cleanup()

	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd() (*cobra.Command, func()) {
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
		cleanups = nil
	}

	rootCmd := &cobra.Command{
		Use:   "relayreg",
		Short: "Bounded registry of cross-chain relayers",
		Long: `relayreg maintains a bounded directory of relayers. Each account may register
once, declaring the chains it services and a short metadata blob.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			appInstance, closeApp, err := app.InitApp(ctx, v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			cleanups = append(cleanups, closeApp)

			ctx = context.WithValue(ctx, appKey, appInstance)

			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cleanups = append(cleanups, cancel)
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "Output format (table, json, yaml)")
	rootCmd.PersistentFlags().String("private-key", "", "Hex private key identifying the caller (env: RELAYREG_PRIVATE_KEY)")
	rootCmd.PersistentFlags().String("data-dir", "", "Directory holding registry state (default: .relayreg)")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "relayer",
		Title: "Relayer Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "query",
		Title: "Query Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	for _, c := range []*cobra.Command{NewRegisterCmd(), NewUpdateCmd(), NewDeregisterCmd()} {
		c.GroupID = "relayer"
		rootCmd.AddCommand(c)
	}

	for _, c := range []*cobra.Command{NewListCmd(), NewShowCmd(), NewWhoamiCmd(), NewEventsCmd()} {
		c.GroupID = "query"
		rootCmd.AddCommand(c)
	}

	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd, cleanup
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
