package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/goalchaser/internal/config"
	"github.com/theirongolddev/goalchaser/internal/store"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	config.LoadEnvFile()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	dbPath := flagDB
	if dbPath == "" {
		dbPath = config.GetDBPath(cfg)
	}

	fmt.Println("  [General]")
	fmt.Printf("    Default days: %d\n", cfg.General.DefaultDays)
	fmt.Printf("    Database:     %s%s\n", dbPath, envNote(config.EnvDB))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s%s\n", config.GetTheme(cfg), envNote(config.EnvTheme))
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s%s\n", config.GetLogLevel(cfg), envNote(config.EnvLogLevel))
	if f := config.GetLogFile(cfg); f != "" {
		fmt.Printf("    File:  %s%s\n", f, envNote(config.EnvLogFile))
	} else {
		fmt.Println("    File:  not configured")
	}
	fmt.Println()

	if _, err := os.Stat(dbPath); err == nil {
		if db, err := store.Open(dbPath); err == nil {
			keys, _ := db.Keys()
			_ = db.Close()
			fmt.Printf("  Stored keys: %v\n\n", keys)
		}
	}

	fmt.Println("  Run `goalchaser setup` to reconfigure.")
	return nil
}

// envNote marks values that come from the environment.
func envNote(name string) string {
	if os.Getenv(name) != "" {
		return fmt.Sprintf("  (from $%s)", name)
	}
	return ""
}
