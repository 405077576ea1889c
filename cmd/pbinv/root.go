// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"pbinv-cli/internal/config"
	"pbinv-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// rootDir is the directory containing project folders (--root).
	rootDir string
	// dryRun plans actions without writing (--dry-run).
	dryRun bool
	// quiet suppresses per-item diagnostics (--quiet).
	quiet bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// appConfig is the loaded configuration; defaults when loading failed.
	appConfig = config.DefaultConfig()

	// rootCmd represents the base command. Running it performs the collection.
	rootCmd = &cobra.Command{
		Use:   "pbinv",
		Short: "Inventory JSON/TMDL artifacts from PBIP project exports",
		Long: TitleStyle.Render("pbinv") + SubtitleStyle.Render(" - PBIP artifact inventory collector") + `

pbinv scans a root directory of Power BI project (PBIP) exports, finds each
project's .pbip descriptor and its paired Report / SemanticModel folders,
and copies every JSON and TMDL file into a categorized inventory directory
one level up from the root:

  ../inventory/
    manifest.csv
    report/{json_files,tmdl_files}/
    semanticmodel/{json_files,tmdl_files}/

Copies are renamed <project>_<original-name>; name collisions get -1, -2,
... suffixes so nothing is ever overwritten.

` + SubtitleStyle.Render("Examples:") + `
  pbinv --root ./exports           Inventory all projects under ./exports
  pbinv --root ./exports --dry-run Show planned copies without writing
  pbinv --quiet                    Inventory the current directory, quietly`,
		RunE: runCollectCmd,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/pbinv/config.cue)")

	rootCmd.Flags().StringVar(&rootDir, "root", ".", "root directory containing project folders")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "show planned actions without copying")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress per-item diagnostics")

	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newCompletionCommand())
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig reads in the config file if set.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		// Surface config problems but keep running on defaults.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err))
		return
	}
	appConfig = cfg
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
func formatErrorForDisplay(err error) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(false)
	}
	return err.Error()
}
