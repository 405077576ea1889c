// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	// CategoryReport covers <stem>.Report folders.
	CategoryReport Category = "report"
	// CategorySemanticModel covers <stem>.SemanticModel folders.
	CategorySemanticModel Category = "semanticmodel"

	// FormatJSON covers *.json artifacts.
	FormatJSON Format = "json"
	// FormatTMDL covers *.tmdl artifacts (tabular model definitions).
	FormatTMDL Format = "tmdl"
)

// Categories lists all artifact categories in routing order.
var Categories = []Category{CategoryReport, CategorySemanticModel}

// Formats lists all artifact file formats in routing order.
var Formats = []Format{FormatJSON, FormatTMDL}

type (
	// Category is the kind of artifact root folder a file came from.
	Category string

	// Format is the artifact file format.
	Format string
)

// FolderSuffix returns the folder-name suffix identifying the category.
func (c Category) FolderSuffix() string {
	if c == CategorySemanticModel {
		return SemanticModelSuffix
	}
	return ReportSuffix
}

// Ext returns the file extension of the format, including the leading dot.
// Matching is case-sensitive.
func (f Format) Ext() string {
	return "." + string(f)
}

// FolderName returns the inventory leaf folder name for the format.
func (f Format) FolderName() string {
	return string(f) + "_files"
}

// ArtifactSet holds the candidate files of one project, keyed by category and
// format. Paths are in encounter order and are not deduplicated; overlapping
// fallback roots may contribute the same file twice, which the collision-safe
// copier absorbs downstream.
type ArtifactSet struct {
	files map[Category]map[Format][]string
}

// Files returns the candidate paths for a category/format combination.
func (s *ArtifactSet) Files(c Category, f Format) []string {
	if s == nil || s.files[c] == nil {
		return nil
	}
	return s.files[c][f]
}

// Total returns the number of candidate paths across all combinations.
func (s *ArtifactSet) Total() int {
	n := 0
	for _, c := range Categories {
		for _, f := range Formats {
			n += len(s.Files(c, f))
		}
	}
	return n
}

// GatherArtifacts enumerates all JSON/TMDL files belonging to a descriptor.
//
// For each category, the expected root is <stem><suffix> next to the
// descriptor. When that exact folder is missing, every immediate child of the
// descriptor's directory whose name ends with the category suffix is used
// instead, which may yield zero, one, or multiple roots.
func GatherArtifacts(desc Descriptor) *ArtifactSet {
	set := &ArtifactSet{files: map[Category]map[Format][]string{}}

	for _, category := range Categories {
		set.files[category] = map[Format][]string{}
		roots := categoryRoots(desc.Dir(), desc.Stem(), category)

		for _, root := range roots {
			for _, format := range Formats {
				set.files[category][format] = append(
					set.files[category][format],
					filesWithExt(root, format.Ext())...,
				)
			}
		}
	}

	return set
}

// categoryRoots resolves the artifact root folders of one category.
func categoryRoots(parent, stem string, category Category) []string {
	expected := filepath.Join(parent, stem+category.FolderSuffix())
	if isDir(expected) {
		return []string{expected}
	}

	entries, err := os.ReadDir(parent)
	if err != nil {
		return nil
	}

	var roots []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), category.FolderSuffix()) {
			roots = append(roots, filepath.Join(parent, entry.Name()))
		}
	}
	return roots
}

// filesWithExt recursively collects files under root with the given
// extension. The match is case-sensitive; unreadable entries are skipped.
func filesWithExt(root, ext string) []string {
	var paths []string

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ext) {
			paths = append(paths, path)
		}
		return nil
	})

	return paths
}
