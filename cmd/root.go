package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrop/internal/config"
	"github.com/abhisek/mathdrop/internal/logger"
	"github.com/abhisek/mathdrop/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mathdrop",
	Short: "Falling-equation arithmetic game",
	Long:  "Math Drop: solve arithmetic equations before they hit the ground. Practice for grades 2-5.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGame(cmd, 0, false)
	},
	SilenceUsage: true,
}

// errSilent signals a non-zero exit whose output has already been printed.
var errSilent = errors.New("silent failure")

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHDROP_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file named by --config plus the environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path (which MATHDROP_DB feeds), then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.Database.Path != "" {
		return cfg.Database.Path, store.EnsureDir(cfg.Database.Path)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens the store.
func openStore(cmd *cobra.Command, cfg *config.Config) (*store.Store, string, error) {
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, "", fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, "", fmt.Errorf("open store: %w", err)
	}
	return st, dbPath, nil
}

// setupStderrLogger configures logging for non-interactive commands.
func setupStderrLogger(cfg *config.Config) error {
	if _, err := logger.Setup(cfg.Log.Level, cfg.Log.Format, os.Stderr); err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	return nil
}

// logPathFor places the TUI log file next to the database.
func logPathFor(dbPath string) string {
	return filepath.Join(filepath.Dir(dbPath), "mathdrop.log")
}
