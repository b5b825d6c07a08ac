package cmd

import (
	"fmt"

	"github.com/gitaurr/gitaurr/export"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <tabId>",
	Short: "Prints a tab as text",
	Long:  `Prints a tab as text`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}

		s := openStore()
		doc, ok := s.FindTab(args[0])
		if !ok {
			fmt.Printf("No tab with id %v\n", args[0])
			return
		}
		settings := s.Settings().ExportSettings
		fmt.Println(export.ToText(doc, export.Options{
			Format:            export.FormatText,
			IncludeTechniques: settings.IncludeTechniques,
			IncludeMetadata:   settings.IncludeMetadata,
		}))
	},
}
