package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oceannotes/ocean/pkg/core"
)

var (
	editTitle string
	editBody  string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update a note's title and/or body",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("body") {
			fmt.Fprintln(os.Stderr, "Error: at least one of --title or --body is required")
			cmd.Usage()
			os.Exit(1)
		}

		store, _, err := openStore()
		if err != nil {
			fatal("Failed to open notes", err)
		}

		if _, ok := store.GetByID(args[0]); !ok {
			fmt.Fprintf(os.Stderr, "Note not found: %s\n", args[0])
			os.Exit(1)
		}

		patch := core.Patch{}
		if cmd.Flags().Changed("title") {
			patch.Title = &editTitle
		}
		if cmd.Flags().Changed("body") {
			patch.Body = &editBody
		}
		store.Update(args[0], patch)

		fmt.Printf("Note '%s' saved.\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editBody, "body", "", "New body (markdown)")
}
