// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"path/filepath"
	"testing"

	"pbinv-cli/internal/testutil"
	"pbinv-cli/internal/testutil/pbiptest"
)

func TestFormat_Accessors(t *testing.T) {
	if got := FormatJSON.Ext(); got != ".json" {
		t.Errorf("FormatJSON.Ext() = %q", got)
	}
	if got := FormatTMDL.FolderName(); got != "tmdl_files" {
		t.Errorf("FormatTMDL.FolderName() = %q", got)
	}
	if got := CategoryReport.FolderSuffix(); got != ".Report" {
		t.Errorf("CategoryReport.FolderSuffix() = %q", got)
	}
	if got := CategorySemanticModel.FolderSuffix(); got != ".SemanticModel" {
		t.Errorf("CategorySemanticModel.FolderSuffix() = %q", got)
	}
}

func TestGatherArtifacts_ExactRoots(t *testing.T) {
	project := t.TempDir()
	pbiptest.Export{
		Stem: "Sales",
		ReportFiles: map[string]string{
			"pages.json":           `{}`,
			"visuals/visual.json":  `{}`,
			"theme.tmdl":           "x",
			"ignored.txt":          "x",
			"nested/deep/aux.tmdl": "x",
		},
		SemanticModelFiles: map[string]string{
			"model.json": `{}`,
			"sales.tmdl": "x",
		},
	}.Write(t, project)

	set := GatherArtifacts(Descriptor{Path: filepath.Join(project, "Sales.pbip")})

	if got := len(set.Files(CategoryReport, FormatJSON)); got != 2 {
		t.Errorf("report json count = %d, want 2", got)
	}
	if got := len(set.Files(CategoryReport, FormatTMDL)); got != 2 {
		t.Errorf("report tmdl count = %d, want 2", got)
	}
	if got := len(set.Files(CategorySemanticModel, FormatJSON)); got != 1 {
		t.Errorf("semanticmodel json count = %d, want 1", got)
	}
	if got := len(set.Files(CategorySemanticModel, FormatTMDL)); got != 1 {
		t.Errorf("semanticmodel tmdl count = %d, want 1", got)
	}
	if got := set.Total(); got != 6 {
		t.Errorf("Total() = %d, want 6", got)
	}
}

func TestGatherArtifacts_PatternFallback(t *testing.T) {
	project := t.TempDir()

	// Descriptor stem does not match any folder, so every *.Report child is a
	// root; both contribute files.
	testutil.MustWriteFile(t, filepath.Join(project, "Mismatch.pbip"), "{}")
	testutil.MustWriteFile(t, filepath.Join(project, "One.Report", "a.json"), "{}")
	testutil.MustWriteFile(t, filepath.Join(project, "Two.Report", "b.json"), "{}")
	testutil.MustWriteFile(t, filepath.Join(project, "Other.SemanticModel", "m.tmdl"), "x")

	set := GatherArtifacts(Descriptor{Path: filepath.Join(project, "Mismatch.pbip")})

	if got := len(set.Files(CategoryReport, FormatJSON)); got != 2 {
		t.Errorf("fallback report json count = %d, want 2", got)
	}
	if got := len(set.Files(CategorySemanticModel, FormatTMDL)); got != 1 {
		t.Errorf("fallback semanticmodel tmdl count = %d, want 1", got)
	}
}

func TestGatherArtifacts_ExactRootExcludesPattern(t *testing.T) {
	project := t.TempDir()

	// When the exact-named folder exists, pattern-matched folders are ignored.
	testutil.MustWriteFile(t, filepath.Join(project, "Sales.pbip"), "{}")
	testutil.MustWriteFile(t, filepath.Join(project, "Sales.Report", "a.json"), "{}")
	testutil.MustWriteFile(t, filepath.Join(project, "Extra.Report", "b.json"), "{}")

	set := GatherArtifacts(Descriptor{Path: filepath.Join(project, "Sales.pbip")})

	files := set.Files(CategoryReport, FormatJSON)
	if len(files) != 1 {
		t.Fatalf("report json count = %d, want 1", len(files))
	}
	if filepath.Base(files[0]) != "a.json" {
		t.Errorf("unexpected file %q", files[0])
	}
}

func TestGatherArtifacts_CaseSensitiveExtension(t *testing.T) {
	project := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(project, "Sales.pbip"), "{}")
	testutil.MustWriteFile(t, filepath.Join(project, "Sales.Report", "upper.JSON"), "{}")
	testutil.MustWriteFile(t, filepath.Join(project, "Sales.Report", "lower.json"), "{}")
	testutil.MustMkdirAll(t, filepath.Join(project, "Sales.SemanticModel"))

	set := GatherArtifacts(Descriptor{Path: filepath.Join(project, "Sales.pbip")})

	files := set.Files(CategoryReport, FormatJSON)
	if len(files) != 1 || filepath.Base(files[0]) != "lower.json" {
		t.Errorf("case-sensitive match failed: %v", files)
	}
}

func TestGatherArtifacts_NoRoots(t *testing.T) {
	project := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(project, "Bare.pbip"), "{}")

	set := GatherArtifacts(Descriptor{Path: filepath.Join(project, "Bare.pbip")})

	if got := set.Total(); got != 0 {
		t.Errorf("Total() = %d, want 0", got)
	}
}

func TestArtifactSet_NilSafe(t *testing.T) {
	var set *ArtifactSet
	if got := set.Files(CategoryReport, FormatJSON); got != nil {
		t.Errorf("nil set Files() = %v, want nil", got)
	}
}
