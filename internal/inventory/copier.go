// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Copier copies candidate files into a destination directory, renaming each
// copy to embed its project identifier and never overwriting an existing
// destination.
type Copier struct {
	// DryRun makes CopyAll log planned copies without touching disk.
	DryRun bool
	// Log receives per-file diagnostics at info level.
	Log *log.Logger
}

// CopyAll processes files in encountered order and returns the number of
// copies performed (or planned, under DryRun). Missing and non-regular
// sources are skipped with a diagnostic. Filesystem errors during the copy
// itself are returned; they are not expected outcomes.
func (c *Copier) CopyAll(files []string, destDir, projectID string) (int, error) {
	copied := 0
	for _, src := range files {
		info, err := os.Stat(src)
		if err != nil {
			c.Log.Info("Skip (missing)", "src", src)
			continue
		}
		if !info.Mode().IsRegular() {
			c.Log.Info("Skip (not a regular file)", "src", src)
			continue
		}

		dst := nextAvailablePath(filepath.Join(destDir, destName(projectID, src)))
		c.Log.Info("Copy", "src", src, "dst", dst)

		if !c.DryRun {
			if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
				return copied, fmt.Errorf("failed to create destination directory: %w", err)
			}
			if err := copyFile(src, dst, info); err != nil {
				return copied, err
			}
		}
		copied++
	}
	return copied, nil
}

// destName builds <projectID>_<stem><ext>, preserving the source extension.
func destName(projectID, src string) string {
	base := filepath.Base(src)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return projectID + "_" + stem + ext
}

// nextAvailablePath returns target if unused, otherwise the first
// <stem>-N<ext> sibling that does not exist yet. Guarantees copies never
// silently overwrite files from this run or previous ones.
func nextAvailablePath(target string) string {
	if _, err := os.Stat(target); os.IsNotExist(err) {
		return target
	}

	ext := filepath.Ext(target)
	stem := strings.TrimSuffix(target, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d%s", stem, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// copyFile copies bytes and metadata (permissions, modification time) from
// src to dst. dst must not exist; the collision check has already run.
func copyFile(src, dst string, info os.FileInfo) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close destination %s: %w", dst, err)
	}

	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
