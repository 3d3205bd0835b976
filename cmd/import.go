package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"techpulse/internal/fileingest"
	"techpulse/internal/models"
)

// importCmd ingests operator-supplied content files.
var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import content items from JSON files",
	Long: `Reads one JSON file, or every .json file under a directory, each
holding an array of content items, and runs them through the normalization
and validation pipeline before persisting.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		path := args[0]
		info, err := os.Stat(path)
		if err != nil {
			return err
		}

		var raw []models.RawItem
		if info.IsDir() {
			files, err := fileingest.DiscoverItemFiles(cmd.Context(), path)
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			for _, f := range files {
				items, err := fileingest.ReadItems(f.Path)
				if err != nil {
					return err
				}
				raw = append(raw, items...)
			}
		} else {
			if raw, err = fileingest.ReadItems(path); err != nil {
				return err
			}
		}
		if len(raw) == 0 {
			fmt.Println("No items found.")
			return nil
		}

		persisted, err := appInstance.Aggregator.IngestRaw(cmd.Context(), raw)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		dropped := len(raw) - len(persisted)
		fmt.Printf("%s %d item(s), %d dropped by validation\n",
			color.GreenString("Imported"), len(persisted), dropped)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
