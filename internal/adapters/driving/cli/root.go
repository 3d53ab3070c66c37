// Package cli implements the cobra command surface for blueprince.
// Commands construct the core solver and its adapters; all puzzle
// logic lives in internal/core.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/damien/blue-prince/internal/adapters/driven/config/file"
	"github.com/damien/blue-prince/internal/core/ports/driven"
	"github.com/damien/blue-prince/internal/logger"
)

var (
	// version is set via Execute, injected at build time.
	version = "dev"

	verbose bool

	// configDir overrides the config location; empty means the
	// default ~/.blueprince. Tests point this at a temp dir.
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "blueprince",
	Short: "Solve gallery ciphers from per-position character sets",
	Long: `blueprince enumerates every word that can be formed by picking one
character from each positional character set, and filters the results
against a word list to keep only real words.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose debug output")
}

// openConfigStore opens the persistent config store. A failure is not
// fatal for solving; callers get nil and fall back to flag defaults.
func openConfigStore() driven.ConfigStore {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		logger.Warn("config store unavailable: %v", err)
		return nil
	}
	return store
}

// Execute runs the root command. v is the build version.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	return rootCmd.Execute()
}
