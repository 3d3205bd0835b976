package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"techpulse/internal/clix"
)

var (
	listType  string
	listLimit int
)

// listCmd prints stored content for one type.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored content items",
	Long:  `Displays persisted content of the given type (game, course, training or news).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		contentType, err := clix.ParseContentType(cmd.Flags())
		if err != nil {
			return err
		}
		limit := clix.ParseLimit(cmd.Flags())

		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		items, err := appInstance.Store.ListContent(cmd.Context(), contentType)
		if err != nil {
			return fmt.Errorf("failed to list content: %w", err)
		}
		if len(items) == 0 {
			fmt.Printf("No %s content stored.\n", contentType)
			return nil
		}
		if len(items) > limit {
			items = items[:limit]
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Title", "Source", "AI", "Popularity"})
		table.SetBorder(true)
		for _, item := range items {
			ai := ""
			if item.AIGenerated {
				ai = color.CyanString("yes")
			}
			table.Append([]string{item.ID, item.Title, item.Source, ai, fmt.Sprintf("%d", item.Popularity)})
		}
		table.Render()
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listType, "type", "t", "news", "content type to list")
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "maximum items to display")
	rootCmd.AddCommand(listCmd)
}
