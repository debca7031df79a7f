package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all notes to a JSON file",
	Long: `Write the current collection as pretty-printed JSON to
<export-dir>/ocean-notes-<date>.json, or to --out when given.
"-" writes to stdout.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, cfg, err := openStore()
		if err != nil {
			fatal("Failed to open notes", err)
		}

		text := store.ExportJSON()

		if exportOut == "-" {
			fmt.Print(text)
			return
		}

		path := exportOut
		if path == "" {
			path = filepath.Join(cfg.ExportDir, store.ExportFilename())
		}
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			fatal("Failed to write export file", err)
		}

		fmt.Printf("Exported %d note(s) to %s\n", store.Len(), path)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file path (\"-\" for stdout)")
}
