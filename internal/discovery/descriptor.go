// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// DescriptorExt is the file extension of PBIP descriptor files.
	DescriptorExt = ".pbip"
	// ReportSuffix is the folder-name suffix of report category roots.
	ReportSuffix = ".Report"
	// SemanticModelSuffix is the folder-name suffix of semantic-model category roots.
	SemanticModelSuffix = ".SemanticModel"
)

// Tier identifies which fallback level of the descriptor search produced a match.
type Tier int

const (
	// TierDirect matched a descriptor directly inside the project folder.
	TierDirect Tier = iota
	// TierPaired matched a nested descriptor with both Report and
	// SemanticModel sibling folders next to it.
	TierPaired
	// TierAny matched any nested descriptor, with no sibling requirement.
	TierAny
)

// String returns a human-readable tier name
func (t Tier) String() string {
	switch t {
	case TierDirect:
		return "project folder"
	case TierPaired:
		return "nested with paired folders"
	case TierAny:
		return "nested (any)"
	default:
		return "unknown"
	}
}

// Descriptor is the selected .pbip file of one project.
type Descriptor struct {
	// Path is the descriptor file path.
	Path string
	// Tier records which search tier selected it.
	Tier Tier
}

// Name returns the descriptor file name including extension.
func (d Descriptor) Name() string {
	return filepath.Base(d.Path)
}

// Stem returns the descriptor base name without the .pbip extension.
// The stem names the paired Report/SemanticModel folders.
func (d Descriptor) Stem() string {
	return strings.TrimSuffix(filepath.Base(d.Path), DescriptorExt)
}

// Dir returns the directory containing the descriptor.
func (d Descriptor) Dir() string {
	return filepath.Dir(d.Path)
}

// LocateDescriptor selects the single descriptor of a project folder.
//
// Three-tier search, first non-empty tier wins, lexicographic first within a
// tier:
//  1. .pbip files directly inside projectDir
//  2. nested .pbip files whose parent also holds <stem>.Report and
//     <stem>.SemanticModel directories
//  3. any nested .pbip file
//
// Returns false when the project holds no descriptor at all; the caller skips
// the project. Real exports keep the descriptor at tier 1; the looser tiers
// tolerate nested or partially malformed exports.
func LocateDescriptor(projectDir string) (Descriptor, bool) {
	if direct := directDescriptors(projectDir); len(direct) > 0 {
		return Descriptor{Path: direct[0], Tier: TierDirect}, true
	}

	nested := nestedDescriptors(projectDir)
	if len(nested) == 0 {
		return Descriptor{}, false
	}

	var paired []string
	for _, path := range nested {
		if hasPairedSiblings(path) {
			paired = append(paired, path)
		}
	}
	if len(paired) > 0 {
		return Descriptor{Path: paired[0], Tier: TierPaired}, true
	}

	return Descriptor{Path: nested[0], Tier: TierAny}, true
}

// directDescriptors returns sorted .pbip paths directly inside dir.
func directDescriptors(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), DescriptorExt) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(paths)
	return paths
}

// nestedDescriptors returns sorted .pbip paths anywhere under dir.
func nestedDescriptors(dir string) []string {
	var paths []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip unreadable entries
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), DescriptorExt) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return paths
	}

	sort.Strings(paths)
	return paths
}

// hasPairedSiblings reports whether both <stem>.Report and
// <stem>.SemanticModel exist as directories next to the descriptor.
func hasPairedSiblings(descriptorPath string) bool {
	parent := filepath.Dir(descriptorPath)
	stem := strings.TrimSuffix(filepath.Base(descriptorPath), DescriptorExt)

	return isDir(filepath.Join(parent, stem+ReportSuffix)) &&
		isDir(filepath.Join(parent, stem+SemanticModelSuffix))
}

// isDir reports whether path exists and is a directory.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
