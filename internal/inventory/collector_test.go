// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"pbinv-cli/internal/testutil"
	"pbinv-cli/internal/testutil/pbiptest"
)

// newTestRoot returns a projects root inside a fresh parent directory, so the
// sibling inventory folder lands inside the temp dir as well.
func newTestRoot(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "projects")
	testutil.MustMkdirAll(t, root)
	return root
}

func runCollector(t *testing.T, root string, dryRun bool) (*Summary, Layout) {
	t.Helper()
	layout := NewLayout(root, "inventory", "manifest.csv")
	summary, err := NewCollector(layout, dryRun, nil).Run(root)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return summary, layout
}

func readManifest(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening manifest: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading manifest: %v", err)
	}
	return records
}

func TestRun_SingleProject(t *testing.T) {
	root := newTestRoot(t)
	pbiptest.WriteProject(t, root, "Sales", "Sales")

	summary, layout := runCollector(t, root, false)

	if summary.Projects != 1 || summary.Processed != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if summary.Copied != 4 {
		t.Errorf("Copied = %d, want 4", summary.Copied)
	}

	wantFiles := map[string]string{
		"report/json_files":        "Sales_pages.json",
		"report/tmdl_files":        "Sales_theme.tmdl",
		"semanticmodel/json_files": "Sales_model.json",
		"semanticmodel/tmdl_files": "Sales_tables.tmdl",
	}
	for leaf, name := range wantFiles {
		path := filepath.Join(layout.BaseDir, filepath.FromSlash(leaf), name)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected %s: %v", path, err)
		}
	}

	records := readManifest(t, layout.ManifestPath)
	want := [][]string{{"project_folder", "pbip_file"}, {"Sales", "Sales.pbip"}}
	if len(records) != 2 || records[1][0] != want[1][0] || records[1][1] != want[1][1] {
		t.Errorf("manifest = %v, want %v", records, want)
	}
}

func TestRun_Idempotence(t *testing.T) {
	root := newTestRoot(t)
	pbiptest.WriteProject(t, root, "Sales", "Sales")

	_, layout := runCollector(t, root, false)
	first, err := os.ReadFile(filepath.Join(layout.Dir("report", "json"), "Sales_pages.json"))
	if err != nil {
		t.Fatal(err)
	}

	// A second run never overwrites: outputs get -1 suffixes.
	runCollector(t, root, false)

	second, err := os.ReadFile(filepath.Join(layout.Dir("report", "json"), "Sales_pages-1.json"))
	if err != nil {
		t.Fatalf("second run output missing: %v", err)
	}
	if string(first) != string(second) {
		t.Error("second run copied different content")
	}

	// Original file untouched.
	again, err := os.ReadFile(filepath.Join(layout.Dir("report", "json"), "Sales_pages.json"))
	if err != nil || string(again) != string(first) {
		t.Errorf("first run output modified: %v", err)
	}
}

func TestRun_SkipsProjectWithoutDescriptor(t *testing.T) {
	root := newTestRoot(t)
	pbiptest.WriteProject(t, root, "Good", "Good")
	testutil.MustWriteFile(t, filepath.Join(root, "Empty", "readme.md"), "nothing here")

	summary, layout := runCollector(t, root, false)

	if summary.Projects != 2 {
		t.Errorf("Projects = %d, want 2", summary.Projects)
	}
	if summary.Processed != 1 {
		t.Errorf("Processed = %d, want 1", summary.Processed)
	}

	records := readManifest(t, layout.ManifestPath)
	if len(records) != 2 {
		t.Fatalf("manifest rows = %d, want header + 1", len(records))
	}
	if records[1][0] != "Good" {
		t.Errorf("manifest row = %v", records[1])
	}
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	root := newTestRoot(t)
	pbiptest.WriteProject(t, root, "Sales", "Sales")

	summary, layout := runCollector(t, root, true)

	if summary.Copied != 4 {
		t.Errorf("planned copies = %d, want 4", summary.Copied)
	}
	if _, err := os.Stat(layout.BaseDir); !os.IsNotExist(err) {
		t.Error("dry run must not create the inventory directory")
	}
}

func TestRun_DryRunPlansSameCopiesAsRealRun(t *testing.T) {
	root := newTestRoot(t)
	pbiptest.WriteProject(t, root, "A", "Alpha")
	pbiptest.WriteProject(t, root, "B", "Beta")

	dry, _ := runCollector(t, root, true)
	real, _ := runCollector(t, root, false)

	if dry.Copied != real.Copied {
		t.Errorf("dry run planned %d copies, real run performed %d", dry.Copied, real.Copied)
	}
	if dry.Processed != real.Processed {
		t.Errorf("dry Processed = %d, real Processed = %d", dry.Processed, real.Processed)
	}
}

func TestRun_NestedDescriptor_ManifestUsesDescriptorDir(t *testing.T) {
	root := newTestRoot(t)
	projectDir := filepath.Join(root, "Wrapped")
	pbiptest.Export{Stem: "Inner"}.Write(t, filepath.Join(projectDir, "export"))

	_, layout := runCollector(t, root, false)

	records := readManifest(t, layout.ManifestPath)
	if len(records) != 2 {
		t.Fatalf("manifest rows = %d", len(records))
	}
	want := filepath.Join("Wrapped", "export")
	if records[1][0] != want || records[1][1] != "Inner.pbip" {
		t.Errorf("manifest row = %v, want [%s Inner.pbip]", records[1], want)
	}
}

func TestRun_SanitizedProjectID(t *testing.T) {
	root := newTestRoot(t)
	projectDir := filepath.Join(root, "Odd")
	pbiptest.Export{
		Stem:        "My Report",
		ReportFiles: map[string]string{"pages.json": "{}"},
	}.Write(t, projectDir)

	_, layout := runCollector(t, root, false)

	path := filepath.Join(layout.Dir("report", "json"), "My_Report_pages.json")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected sanitized destination %s: %v", path, err)
	}
}

func TestRun_ProjectOrderIsSorted(t *testing.T) {
	root := newTestRoot(t)
	pbiptest.WriteProject(t, root, "zeta", "Z")
	pbiptest.WriteProject(t, root, "alpha", "A")
	pbiptest.WriteProject(t, root, "mid", "M")

	_, layout := runCollector(t, root, false)

	records := readManifest(t, layout.ManifestPath)
	got := []string{records[1][0], records[2][0], records[3][0]}
	want := []string{"alpha", "mid", "zeta"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("manifest order = %v, want %v", got, want)
			break
		}
	}
}

func TestRun_EmptyRootStillCreatesLayout(t *testing.T) {
	root := newTestRoot(t)

	summary, layout := runCollector(t, root, false)

	if summary.Projects != 0 {
		t.Errorf("Projects = %d, want 0", summary.Projects)
	}
	for _, dir := range layout.LeafDirs() {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Errorf("leaf %q missing: %v", dir, err)
		}
	}

	records := readManifest(t, layout.ManifestPath)
	if len(records) != 1 {
		t.Errorf("manifest should contain only the header, got %v", records)
	}
}

func TestRun_MissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "projects")
	layout := NewLayout(root, "inventory", "manifest.csv")

	if _, err := NewCollector(layout, true, nil).Run(root); err == nil {
		t.Error("Run() should fail for an unreadable root")
	}
}
