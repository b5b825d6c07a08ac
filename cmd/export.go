package cmd

import (
	"errors"
	"fmt"

	"github.com/gitaurr/gitaurr/export"
	"github.com/spf13/cobra"
)

var exportFormat string
var exportMidiPath string
var exportSkipTechniques bool
var exportSkipMetadata bool

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "txt, json or csv (default from settings)")
	exportCmd.Flags().StringVar(&exportMidiPath, "midi", "", "also write a .mid file to this path")
	exportCmd.Flags().BoolVar(&exportSkipTechniques, "no-techniques", false, "leave technique symbols out")
	exportCmd.Flags().BoolVar(&exportSkipMetadata, "no-metadata", false, "leave the metadata header out")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <tabId>",
	Short: "Exports a tab and shares the file",
	Long:  `Exports a tab and shares the file`,
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
		format := exportFormat
		if format == "" {
			format = settings.DefaultFormat
		}
		opts := export.Options{
			Format:            export.Format(format),
			IncludeTechniques: settings.IncludeTechniques && !exportSkipTechniques,
			IncludeMetadata:   settings.IncludeMetadata && !exportSkipMetadata,
		}

		path, err := export.AndShare(doc, opts, export.ConsoleSharer{})
		switch {
		case errors.Is(err, export.ErrUnsupportedFormat):
			fmt.Printf("Format %v is not supported, use txt, json or csv\n", format)
			return
		case err != nil:
			fmt.Printf("Export failed: %v\n", err)
			return
		}
		fmt.Printf("Exported %v\n", path)

		if exportMidiPath != "" {
			if err := export.BuildSMF(doc).WriteFile(exportMidiPath); err != nil {
				fmt.Printf("Could not write midi file: %v\n", err)
				return
			}
			fmt.Printf("Wrote %v\n", exportMidiPath)
		}
	},
}
