package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <title> [artist]",
	Short: "Creates a tab",
	Long:  `Creates a tab`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			panic("Need a title...")
		}
		var artist string
		if len(args) > 1 {
			artist = args[1]
		}

		s := openStore()
		doc := s.CreateTab(args[0], artist)
		if err := s.Flush(); err != nil {
			fmt.Printf("Could not save: %v\n", err)
		}
		fmt.Printf("Created tab %v\n", doc.Id)
	},
}
