// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"io"
	"path/filepath"

	"pbinv-cli/internal/discovery"
	"pbinv-cli/internal/issue"

	"github.com/charmbracelet/log"
)

// Collector runs one full inventory pass over a scan root. Projects are
// processed sequentially and in isolation: a project without a descriptor is
// skipped with a diagnostic and never aborts the run.
type Collector struct {
	layout Layout
	dryRun bool
	logger *log.Logger
}

// Summary reports what one run did (or would have done, under dry-run).
type Summary struct {
	// Projects is the number of project folders found under the root.
	Projects int
	// Processed is the number of projects that contributed a manifest row.
	Processed int
	// Copied is the number of files copied (or planned).
	Copied int
	// Rows holds the manifest rows in processing order.
	Rows []ManifestRow
}

// NewCollector creates a Collector. A nil logger discards all diagnostics.
func NewCollector(layout Layout, dryRun bool, logger *log.Logger) *Collector {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Collector{layout: layout, dryRun: dryRun, logger: logger}
}

// Run scans root and copies every discovered artifact into the inventory.
// Expected per-project and per-file misses are skipped with diagnostics;
// only filesystem write failures (directory creation, copy, manifest) and an
// unreadable root return an error.
func (c *Collector) Run(root string) (*Summary, error) {
	if !c.dryRun {
		if err := c.layout.EnsureDirs(); err != nil {
			return nil, issue.WrapWithContext(err, "create inventory directories", c.layout.BaseDir)
		}
	}

	projects, err := discovery.ListProjects(root)
	if err != nil {
		return nil, issue.WrapWithContext(err, "list project folders", root)
	}

	summary := &Summary{Projects: len(projects)}
	c.logger.Info("Scanning projects", "root", root, "count", len(projects))

	for _, project := range projects {
		desc, ok := discovery.LocateDescriptor(project.Path)
		if !ok {
			c.logger.Info("Skipping project: no pbip descriptor found", "project", project.Name)
			continue
		}

		projectID := SanitizeBaseName(desc.Stem())
		summary.Rows = append(summary.Rows, ManifestRow{
			ProjectFolder:  projectRelPath(root, project, desc),
			DescriptorName: desc.Name(),
		})
		summary.Processed++

		c.logger.Info("Processing project",
			"project", project.Name, "descriptor", desc.Name(), "tier", desc.Tier.String())

		set := discovery.GatherArtifacts(desc)
		copier := &Copier{DryRun: c.dryRun, Log: c.logger}

		for _, category := range discovery.Categories {
			for _, format := range discovery.Formats {
				n, err := copier.CopyAll(
					set.Files(category, format),
					c.layout.Dir(category, format),
					projectID,
				)
				summary.Copied += n
				if err != nil {
					return summary, issue.WrapWithOperation(err, "copy artifacts")
				}
			}
		}
	}

	c.logger.Info("Writing manifest", "path", c.layout.ManifestPath, "rows", len(summary.Rows))
	if !c.dryRun {
		if err := WriteManifest(c.layout.ManifestPath, summary.Rows); err != nil {
			return summary, issue.WrapWithContext(err, "write manifest", c.layout.ManifestPath)
		}
	}

	return summary, nil
}

// projectRelPath resolves the manifest's project_folder column: the
// descriptor's directory relative to root. Falls back to the project folder
// name if the descriptor unexpectedly resolves outside the root.
func projectRelPath(root string, project discovery.Project, desc discovery.Descriptor) string {
	rel, err := filepath.Rel(root, desc.Dir())
	if err != nil || hasDotDotPrefix(rel) {
		return project.Name
	}
	return rel
}

// hasDotDotPrefix reports whether rel escapes its base directory.
func hasDotDotPrefix(rel string) bool {
	return rel == ".." || len(rel) >= 3 && rel[:3] == ".."+string(filepath.Separator)
}
