package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// discoverCmd runs one aggregation cycle from the command line.
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Run one content discovery cycle",
	Long: `Fetches trending items from all configured sources, scores and filters
them, persists the survivors and prints a summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		items, err := appInstance.Aggregator.AutoDiscover(cmd.Context())
		if err != nil {
			return fmt.Errorf("discovery failed: %w", err)
		}
		if len(items) == 0 {
			fmt.Println("No items survived filtering.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Type", "Title", "Source", "Relevance", "Quality"})
		table.SetBorder(true)
		table.SetRowLine(true)
		for _, item := range items {
			table.Append([]string{
				string(item.Type),
				item.Title,
				item.Source,
				fmt.Sprintf("%.2f", item.RelevanceScore),
				fmt.Sprintf("%.2f", item.QualityScore),
			})
		}
		table.Render()

		fmt.Printf("%s %d item(s)\n", color.GreenString("Persisted"), len(items))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(discoverCmd)
}
