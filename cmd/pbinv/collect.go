// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"os"

	"pbinv-cli/internal/config"
	"pbinv-cli/internal/inventory"
	"pbinv-cli/internal/issue"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// collectOptions carries the resolved inputs of one collection run.
type collectOptions struct {
	// Root is the directory containing project folders.
	Root string
	// DryRun plans actions without writing.
	DryRun bool
	// Verbose enables per-item diagnostics.
	Verbose bool
	// Out receives the run summary and diagnostics.
	Out io.Writer
	// ErrOut receives error cards.
	ErrOut io.Writer
}

// runCollectCmd adapts the cobra entry point to runCollect.
func runCollectCmd(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	return runCollect(collectOptions{
		Root:    rootDir,
		DryRun:  dryRun,
		Verbose: !quiet && appConfig.UI.Verbose,
		Out:     cmd.OutOrStdout(),
		ErrOut:  cmd.ErrOrStderr(),
	}, appConfig)
}

// runCollect validates the root, runs the collector and prints a summary.
// An invalid --root is the only hard failure; everything else is handled as
// skip-with-diagnostic inside the collector.
func runCollect(opts collectOptions, cfg *config.Config) error {
	info, err := os.Stat(opts.Root)
	if err != nil || !info.IsDir() {
		if rendered, rerr := issue.Get(issue.RootNotFoundId).Render(cfg.UI.ColorScheme.StylePath()); rerr == nil {
			fmt.Fprint(opts.ErrOut, rendered)
		}
		actionable := issue.NewErrorContext().
			WithOperation("validate root directory").
			WithResource(opts.Root).
			WithSuggestion("Pass an existing directory via --root").
			Wrap(fmt.Errorf("not found or not a directory")).
			Build()
		fmt.Fprintln(opts.ErrOut, ErrorStyle.Render("Error: ")+actionable.Format(false))
		return &ExitError{Code: 1, Err: actionable}
	}

	layout := inventory.NewLayout(opts.Root, cfg.InventoryDirName, cfg.ManifestName)
	collector := inventory.NewCollector(layout, opts.DryRun, runLogger(opts))

	summary, err := collector.Run(opts.Root)
	if err != nil {
		fmt.Fprintln(opts.ErrOut, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err))
		return &ExitError{Code: 1, Err: err}
	}

	printSummary(opts, layout, summary)
	return nil
}

// runLogger builds the diagnostics logger: plain lines on Out, or nothing in
// quiet mode.
func runLogger(opts collectOptions) *log.Logger {
	if !opts.Verbose {
		return nil
	}
	return log.NewWithOptions(opts.Out, log.Options{
		ReportTimestamp: false,
	})
}

// printSummary prints the end-of-run summary line(s).
func printSummary(opts collectOptions, layout inventory.Layout, summary *inventory.Summary) {
	if opts.DryRun {
		fmt.Fprintln(opts.Out, WarningStyle.Render("Dry run:")+fmt.Sprintf(
			" %d file(s) would be copied from %d of %d project(s)",
			summary.Copied, summary.Processed, summary.Projects))
		return
	}

	fmt.Fprintln(opts.Out, SuccessStyle.Render("Inventory complete:")+fmt.Sprintf(
		" %d file(s) copied from %d of %d project(s)",
		summary.Copied, summary.Processed, summary.Projects))
	fmt.Fprintln(opts.Out, SubtitleStyle.Render("Manifest: ")+PathStyle.Render(layout.ManifestPath))
}
