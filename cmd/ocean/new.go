package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oceannotes/ocean/pkg/core"
)

var (
	newTitle string
	newBody  string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new note",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, _, err := openStore()
		if err != nil {
			fatal("Failed to open notes", err)
		}

		n := store.Create()
		if newTitle != "" || newBody != "" {
			patch := core.Patch{}
			if newTitle != "" {
				patch.Title = &newTitle
			}
			if newBody != "" {
				patch.Body = &newBody
			}
			store.Update(n.ID, patch)
		}

		fmt.Println(n.ID)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVar(&newTitle, "title", "", "Note title")
	newCmd.Flags().StringVar(&newBody, "body", "", "Note body (markdown)")
}
