// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates pbinv configuration.
//
// Configuration is stored as a CUE file validated against an embedded schema
// and merged into Viper on top of built-in defaults. Flags always win over
// file values; that precedence is applied by the CLI layer.
package config
