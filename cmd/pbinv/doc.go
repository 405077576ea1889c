// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for pbinv.
//
// This package implements the Cobra command hierarchy for the pbinv CLI:
// the root command that runs an inventory collection, configuration
// subcommands, and shell completion.
package cmd
