package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var pinCmd = &cobra.Command{
	Use:   "pin <id>",
	Short: "Toggle a note's pinned state",
	Long: `Toggle whether the note stays at the top of the list.
Pinning does not count as an edit: the note's updated time is unchanged.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, _, err := openStore()
		if err != nil {
			fatal("Failed to open notes", err)
		}

		if _, ok := store.GetByID(args[0]); !ok {
			fmt.Fprintf(os.Stderr, "Note not found: %s\n", args[0])
			os.Exit(1)
		}

		store.TogglePinned(args[0])
		n, _ := store.GetByID(args[0])
		if n.Pinned {
			fmt.Println("Pinned.")
		} else {
			fmt.Println("Unpinned.")
		}
	},
}

func init() {
	rootCmd.AddCommand(pinCmd)
}
