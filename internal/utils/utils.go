package utils

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var spaceRegexp = regexp.MustCompile(`\s+`)
var unsafeRegexp = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// SanitizeText collapses runs of whitespace, trims and caps the length.
// Form fields go through this before validation, so "   " counts as empty.
func SanitizeText(s string, maxLen int) string {
	s = strings.TrimSpace(spaceRegexp.ReplaceAllString(s, " "))
	if len(s) > maxLen {
		s = s[:maxLen]
	}
	return s
}

// AllowedImageFile checks the evidence upload allowlist.
func AllowedImageFile(filename string) bool {
	return allowedImageExts[strings.ToLower(filepath.Ext(filename))]
}

// SecureFilename strips path components and anything outside a safe
// character set, so client-supplied names can't escape the target dir.
func SecureFilename(name string) string {
	name = filepath.Base(name)
	name = unsafeRegexp.ReplaceAllString(name, "_")
	return strings.Trim(name, "._")
}

// UploadFilename returns a collision-resistant name for a stored upload.
func UploadFilename(now time.Time, original string) string {
	return fmt.Sprintf("%d_%s", now.UnixMilli(), SecureFilename(original))
}
