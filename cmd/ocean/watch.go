package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oceannotes/ocean/pkg/adapters/fs"
	"github.com/oceannotes/ocean/pkg/core"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the collection for external changes",
	Long: `Follow the persisted notes file and print the display order every
time another process changes it. Bursts of filesystem events are coalesced
through the configured watch debounce.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fatal("Failed to load config", err)
		}

		fsStore, err := fs.NewStore(fs.Config{Dir: cfg.DataDir, Logger: slog.Default()})
		if err != nil {
			fatal("Failed to open data directory", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		changes, err := fsStore.Watch(ctx, core.StorageKey, cfg.WatchDebounce)
		if err != nil {
			fatal("Failed to watch", err)
		}

		fmt.Println("Watching for changes. Ctrl-C to stop.")
		printList(fsStore)
		for range changes {
			printList(fsStore)
		}
	},
}

// printList reloads the collection from the substrate and prints it.
func printList(storage core.Storage) {
	store := core.NewStore(storage, core.WithLogger(slog.Default()))
	for _, n := range store.Sorted() {
		pin := " "
		if n.Pinned {
			pin = "*"
		}
		fmt.Printf("%s %s  %s\n", pin, n.ID, n.Title)
	}
	fmt.Println("---")
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
