// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// manifestHeader is the fixed CSV header row.
var manifestHeader = []string{"project_folder", "pbip_file"}

// ManifestRow records one processed project: its folder path relative to the
// scan root and the descriptor file name it contributed.
type ManifestRow struct {
	ProjectFolder  string
	DescriptorName string
}

// WriteManifest writes the manifest CSV (header plus one row per processed
// project, in processing order), creating the parent directory if needed.
func WriteManifest(path string, rows []ManifestRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create manifest directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create manifest: %w", err)
	}

	w := csv.NewWriter(f)
	records := [][]string{manifestHeader}
	for _, row := range rows {
		records = append(records, []string{row.ProjectFolder, row.DescriptorName})
	}
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	return f.Close()
}
