package cmd

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/hima/internal/config"
	"github.com/abhisek/hima/internal/letters"
	"github.com/abhisek/hima/internal/store"
)

var rootCmd = &cobra.Command{
	Use:          "hima",
	Short:        "Hindi and Marathi alphabet practice",
	Long:         "Hima is a terminal app that helps children learn the Devanagari alphabet by listening, tracing and word quizzes.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides HIMA_DB env var)")
	rootCmd.PersistentFlags().String("assets", "", "Asset pack directory (overrides HIMA_ASSETS env var)")
	rootCmd.PersistentFlags().String("config", "", "Config file (overrides HIMA_CONFIG env var)")

	rootCmd.AddCommand(lettersCmd)
	rootCmd.AddCommand(sayCmd)
	rootCmd.AddCommand(starsCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file, then applies --db and --assets on top.
// Flags win over environment variables, which win over the file.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DB = p
	}
	if p, _ := cmd.Flags().GetString("assets"); p != "" {
		cfg.AssetsDir = p
	}
	return cfg, nil
}

// openStore opens the database named by cfg.
func openStore(cfg config.Config) (*store.Store, error) {
	dbPath, err := cfg.DBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// loadLibrary loads the configured asset pack, or the bundled sample.
// Broken letter files are reported on stderr and skipped.
func loadLibrary(cfg config.Config) (*letters.Library, error) {
	fsys, dir := cfg.Assets()
	if fsys == nil {
		fsys = letters.Sample()
	}
	lib, err := letters.Load(fsys)
	if err != nil {
		if dir == "" {
			dir = "bundled sample"
		}
		return nil, fmt.Errorf("load asset pack (%s): %w", dir, err)
	}
	for _, p := range lib.Problems() {
		fmt.Fprintln(os.Stderr, "skipping", p)
	}
	return lib, nil
}

// assetFS returns the pack files the player reads and their directory.
func assetFS(cfg config.Config) (fs.FS, string) {
	f, d := cfg.Assets()
	if f == nil {
		return letters.Sample(), ""
	}
	return f, d
}
