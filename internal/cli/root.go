// Package cli implements the foon CLI commands.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/robocook/foon/internal/config"
	"github.com/robocook/foon/internal/foon"
	"github.com/robocook/foon/internal/search"
	"github.com/robocook/foon/internal/store"
)

var (
	configPath  string
	foonPath    string
	kitchenPath string
	motionPath  string
	dbPath      string
	verbose     bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "foon",
	Short: "Search FOON cooking networks",
	Long: "Parse a FOON (functional object-oriented network) from flat text, check units\n" +
		"against a kitchen inventory, and search for a unit producing a goal object in a\n" +
		"goal state. Searches are recorded in a local SQLite history.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $FOON_CONFIG or ~/.foon/foon.yaml)")
	RootCmd.PersistentFlags().StringVar(&foonPath, "foon", "", "FOON network file (default: $FOON_FILE or config)")
	RootCmd.PersistentFlags().StringVar(&kitchenPath, "kitchen", "", "Kitchen inventory file (default: $FOON_KITCHEN or config)")
	RootCmd.PersistentFlags().StringVar(&motionPath, "motion", "", "Motion success-rate file (default: $FOON_MOTION or config)")
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "History database path (default: $FOON_DB or ~/.foon/history.db)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log search progress to stderr")
}

// settings resolves the effective configuration: flags beat environment
// variables, which beat the config file, which beats built-in defaults.
func settings() (config.Config, error) {
	path := configPath
	if path == "" {
		path = os.Getenv("FOON_CONFIG")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	applyOverride(&cfg.FOONFile, os.Getenv("FOON_FILE"), foonPath)
	applyOverride(&cfg.KitchenFile, os.Getenv("FOON_KITCHEN"), kitchenPath)
	applyOverride(&cfg.MotionFile, os.Getenv("FOON_MOTION"), motionPath)
	applyOverride(&cfg.DBPath, os.Getenv("FOON_DB"), dbPath)

	if cfg.DBPath == "" {
		home, _ := os.UserHomeDir()
		cfg.DBPath = filepath.Join(home, ".foon", "history.db")
	}

	return cfg, nil
}

func applyOverride(dst *string, env, flag string) {
	if env != "" {
		*dst = env
	}
	if flag != "" {
		*dst = flag
	}
}

// loadNetwork parses the three input files and builds the search index.
func loadNetwork(cfg config.Config) (*search.Network, error) {
	units, err := foon.ParseFile(cfg.FOONFile)
	if err != nil {
		return nil, err
	}
	kitchen, err := foon.LoadKitchen(cfg.KitchenFile)
	if err != nil {
		return nil, err
	}
	motions, err := foon.LoadMotions(cfg.MotionFile)
	if err != nil {
		return nil, err
	}
	return search.NewNetwork(units, kitchen, motions), nil
}

func openStore(cfg config.Config) (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(cfg.DBPath)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
