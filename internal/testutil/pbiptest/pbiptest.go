// SPDX-License-Identifier: MPL-2.0

// Package pbiptest builds throwaway PBIP export trees for tests.
package pbiptest

import (
	"os"
	"path/filepath"
	"testing"
)

// Export describes one PBIP export to materialize on disk.
type Export struct {
	// Stem is the descriptor base name (descriptor file is <Stem>.pbip).
	Stem string
	// ReportFiles maps report-folder-relative paths to file contents.
	ReportFiles map[string]string
	// SemanticModelFiles maps semantic-model-folder-relative paths to contents.
	SemanticModelFiles map[string]string
	// OmitReportFolder suppresses creation of <Stem>.Report.
	OmitReportFolder bool
	// OmitSemanticModelFolder suppresses creation of <Stem>.SemanticModel.
	OmitSemanticModelFolder bool
}

// Write materializes the export inside dir and returns the descriptor path.
func (e Export) Write(t testing.TB, dir string) string {
	t.Helper()

	mkdirAll(t, dir)
	descriptor := filepath.Join(dir, e.Stem+".pbip")
	writeFile(t, descriptor, `{"version": "1.0"}`)

	if !e.OmitReportFolder {
		reportDir := filepath.Join(dir, e.Stem+".Report")
		mkdirAll(t, reportDir)
		for rel, content := range e.ReportFiles {
			writeFile(t, filepath.Join(reportDir, rel), content)
		}
	}

	if !e.OmitSemanticModelFolder {
		semDir := filepath.Join(dir, e.Stem+".SemanticModel")
		mkdirAll(t, semDir)
		for rel, content := range e.SemanticModelFiles {
			writeFile(t, filepath.Join(semDir, rel), content)
		}
	}

	return descriptor
}

// WriteProject creates a project folder under root holding one standard
// export with a single JSON and TMDL file per category. Returns the project
// folder path.
func WriteProject(t testing.TB, root, name, stem string) string {
	t.Helper()

	projectDir := filepath.Join(root, name)
	Export{
		Stem: stem,
		ReportFiles: map[string]string{
			"pages.json": `{"pages": []}`,
			"theme.tmdl": "model Theme\n",
		},
		SemanticModelFiles: map[string]string{
			"model.json":  `{"tables": []}`,
			"tables.tmdl": "table Sales\n",
		},
	}.Write(t, projectDir)

	return projectDir
}

func mkdirAll(t testing.TB, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create directory %s: %v", dir, err)
	}
}

func writeFile(t testing.TB, path, content string) {
	t.Helper()
	mkdirAll(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}
