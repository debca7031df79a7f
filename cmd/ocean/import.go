package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file-or-glob>",
	Short: "Replace the collection with notes from a JSON file",
	Long: `Import notes from a JSON export. The argument may be a file path or
a glob pattern (including **); with multiple matches the lexicographically
last one is imported, which for dated export files is the newest.

Importing replaces the entire collection. Records sharing an id are
deduplicated with the later one winning.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path, err := resolveImportPath(args[0])
		if err != nil {
			fatal("Import failed", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			fatal("Import failed", err)
		}

		store, _, err := openStore()
		if err != nil {
			fatal("Failed to open notes", err)
		}

		count, err := store.Import(string(data))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Import failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Imported %d note(s) from %s\n", count, path)
	},
}

// resolveImportPath expands a glob argument to a concrete file, preferring
// the lexicographically last match.
func resolveImportPath(arg string) (string, error) {
	if _, err := os.Stat(arg); err == nil {
		return arg, nil
	}

	matches, err := doublestar.FilepathGlob(arg)
	if err != nil {
		return "", fmt.Errorf("bad pattern %q: %w", arg, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no file matches %q", arg)
	}
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}

func init() {
	rootCmd.AddCommand(importCmd)
}
