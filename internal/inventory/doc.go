// SPDX-License-Identifier: MPL-2.0

// Package inventory copies discovered PBIP artifacts into a categorized
// inventory tree and records a CSV manifest of processed projects.
//
// The inventory lives one level up from the scan root:
//
//	../inventory/
//	  manifest.csv
//	  report/{json_files,tmdl_files}/
//	  semanticmodel/{json_files,tmdl_files}/
//
// Copied files are renamed to <project-id>_<original-name> and never
// overwrite an existing destination; collisions get -1, -2, ... suffixes.
package inventory
