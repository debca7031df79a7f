package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var duplicateCmd = &cobra.Command{
	Use:     "duplicate <id>",
	Aliases: []string{"dup"},
	Short:   "Duplicate a note",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, _, err := openStore()
		if err != nil {
			fatal("Failed to open notes", err)
		}

		copyNote, ok := store.Duplicate(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Note not found: %s\n", args[0])
			os.Exit(1)
		}

		fmt.Println(copyNote.ID)
	},
}

func init() {
	rootCmd.AddCommand(duplicateCmd)
}
