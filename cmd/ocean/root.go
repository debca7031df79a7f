package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/oceannotes/ocean"
	"github.com/oceannotes/ocean/internal/config"
	"github.com/oceannotes/ocean/pkg/core"
)

var (
	verbose bool
	cfgPath string
	dataDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ocean",
	Short: "A local-first notes app with markdown preview",
	Long: `Ocean Notes keeps short markdown notes in a single versioned JSON
envelope on disk. Notes can be created, edited, pinned, duplicated,
searched, exported and imported; nothing ever leaves the machine.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Data directory (overrides config)")
}

// loadConfig resolves the effective CLI configuration.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return config.Config{}, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	return cfg, nil
}

// openStore opens the note collection per the effective configuration.
func openStore() (*core.Store, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, config.Config{}, err
	}
	store, err := ocean.Open(cfg.DataDir, ocean.WithLogger(slog.Default()))
	if err != nil {
		return nil, config.Config{}, err
	}
	return store, cfg, nil
}
