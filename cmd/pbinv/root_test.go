// SPDX-License-Identifier: MPL-2.0

package cmd

import "testing"

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version takes priority", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "v1.2.3"
		Commit = "abc1234"
		BuildDate = "2026-08-15T10:00:00Z"

		got := getVersionString()
		want := "v1.2.3 (commit: abc1234, built: 2026-08-15T10:00:00Z)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("fallback to dev", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "dev"
		Commit = "unknown"
		BuildDate = "unknown"

		got := getVersionString()
		want := "dev (built from source)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})
}

func TestRootFlags(t *testing.T) {
	for _, name := range []string{"root", "dry-run", "quiet"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("rootCmd missing --%s flag", name)
		}
	}

	if rootCmd.PersistentFlags().Lookup("config") == nil {
		t.Error("rootCmd missing persistent --config flag")
	}

	if got := rootCmd.Flags().Lookup("root").DefValue; got != "." {
		t.Errorf("--root default = %q, want %q", got, ".")
	}
}

func TestRootSubcommands(t *testing.T) {
	want := map[string]bool{"config": false, "completion": false}
	for _, sub := range rootCmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("rootCmd missing %q subcommand", name)
		}
	}
}
