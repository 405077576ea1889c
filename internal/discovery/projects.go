// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"os"
	"path/filepath"
	"sort"
)

// Project is one immediate subdirectory of the scan root, holding (at most)
// one PBIP export.
type Project struct {
	// Path is the project folder path.
	Path string
	// Name is the folder name relative to the root.
	Name string
}

// ListProjects returns the immediate subdirectories of root, sorted by name.
// Sorting makes manifest ordering deterministic across platforms; directory
// listing order is not otherwise guaranteed.
func ListProjects(root string) ([]Project, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var projects []Project
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		projects = append(projects, Project{
			Path: filepath.Join(root, entry.Name()),
			Name: entry.Name(),
		})
	}

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].Name < projects[j].Name
	})

	return projects, nil
}
