// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"strings"
	"unicode"
)

// FallbackBaseName names projects whose descriptor stem sanitizes to nothing.
const FallbackBaseName = "pbip"

// reservedPathChars are the Windows-reserved path characters. They are
// replaced even on POSIX so inventories stay portable across platforms.
const reservedPathChars = `<>:"/\|?*`

// SanitizeBaseName converts a descriptor stem into a filesystem-safe
// identifier used as the copied-file prefix. Reserved path characters,
// control characters and whitespace become underscores; trailing dots,
// underscores and hyphens are stripped. Never returns an empty string.
func SanitizeBaseName(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		switch {
		case strings.ContainsRune(reservedPathChars, r), r < 32, unicode.IsSpace(r):
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}

	cleaned := strings.TrimRight(b.String(), "._-")
	if cleaned == "" {
		return FallbackBaseName
	}
	return cleaned
}
