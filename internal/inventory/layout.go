// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"os"
	"path/filepath"

	"pbinv-cli/internal/discovery"
)

// Layout is the fixed directory structure of one inventory run. It is
// computed once and passed to every component that writes, so no package
// state is shared.
type Layout struct {
	// BaseDir is the inventory directory, a sibling of the scan root.
	BaseDir string
	// ManifestPath is the CSV manifest inside BaseDir.
	ManifestPath string
}

// NewLayout computes the inventory layout for a scan root. The inventory
// directory sits one level up from root, next to it.
func NewLayout(root, dirName, manifestName string) Layout {
	base := filepath.Join(filepath.Dir(filepath.Clean(root)), dirName)
	return Layout{
		BaseDir:      base,
		ManifestPath: filepath.Join(base, manifestName),
	}
}

// Dir returns the leaf destination directory for a category/format pair,
// e.g. <base>/report/json_files.
func (l Layout) Dir(c discovery.Category, f discovery.Format) string {
	return filepath.Join(l.BaseDir, string(c), f.FolderName())
}

// LeafDirs returns all four leaf destination directories.
func (l Layout) LeafDirs() []string {
	var dirs []string
	for _, c := range discovery.Categories {
		for _, f := range discovery.Formats {
			dirs = append(dirs, l.Dir(c, f))
		}
	}
	return dirs
}

// EnsureDirs creates every leaf directory. Idempotent.
func (l Layout) EnsureDirs() error {
	for _, dir := range l.LeafDirs() {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}
