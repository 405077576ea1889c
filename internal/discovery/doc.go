// SPDX-License-Identifier: MPL-2.0

// Package discovery locates PBIP exports on disk.
//
// It lists project folders under a scan root, selects one .pbip descriptor
// per project via a three-tier fallback search, and gathers the JSON/TMDL
// artifact files from the descriptor's Report and SemanticModel folders.
// All expected misses (no descriptor, no category folder) are modeled as
// empty results, not errors.
package discovery
