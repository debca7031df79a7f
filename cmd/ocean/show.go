package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oceannotes/ocean/pkg/markdown"
)

var showHTML bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, _, err := openStore()
		if err != nil {
			fatal("Failed to open notes", err)
		}

		n, ok := store.GetByID(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Note not found: %s\n", args[0])
			os.Exit(1)
		}

		if showHTML {
			fmt.Println(markdown.Render(n.Body))
			return
		}

		fmt.Printf("# %s\n\n%s\n", n.Title, n.Body)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showHTML, "html", false, "Render the body through the markdown preview")
}
