package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"techpulse/internal/app"
	"techpulse/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "techpulse",
	Short: "TechPulse content aggregation service",
	Long: `TechPulse aggregates trending technology content from news, Reddit,
GitHub, Twitter, LinkedIn and StackOverflow, scores and classifies it, and
tops the catalog up with AI-generated items.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	// PersistentPreRunE loads config and wires the app before any subcommand.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		appInstance, err := app.NewApp(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		ctx := context.WithValue(cmd.Context(), appKey, appInstance)
		cmd.SetContext(ctx)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Context key type avoids collisions with other packages' context values.
type contextKey string

const appKey contextKey = "app"

// GetAppFromContext retrieves the app instance stashed by PersistentPreRunE.
func GetAppFromContext(ctx context.Context) (*app.App, error) {
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("application instance not found in context")
	}
	return appInstance, nil
}
