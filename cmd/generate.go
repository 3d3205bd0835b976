package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var generateInitial bool

// generateCmd runs an AI generation batch from the command line.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate AI content",
	Long: `Generates AI content and persists it: one item per content type by
default, or the full initial catalog with --initial.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		if !appInstance.Generator.Enabled() {
			return fmt.Errorf("no AI provider configured (set OPENAI_API_KEY or GEMINI_API_KEY)")
		}

		if generateInitial {
			if err := appInstance.Generator.GenerateInitial(cmd.Context()); err != nil {
				return fmt.Errorf("initial generation failed: %w", err)
			}
			fmt.Println(color.GreenString("Initial content generated."))
			return nil
		}

		if err := appInstance.Generator.GenerateHourly(cmd.Context()); err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		fmt.Println(color.GreenString("Generated one item per content type."))
		return nil
	},
}

func init() {
	generateCmd.Flags().BoolVar(&generateInitial, "initial", false, "generate the full initial catalog")
	rootCmd.AddCommand(generateCmd)
}
