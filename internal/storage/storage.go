// Package storage keeps uploaded profile pictures, either in a local
// directory or in an S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Store saves and removes uploaded objects keyed by a sanitized filename.
type Store interface {
	Save(ctx context.Context, name string, r io.Reader, size int64) (string, error)
	Remove(ctx context.Context, key string) error
}

// ErrEmptyName is returned when a filename sanitizes to nothing.
var ErrEmptyName = errors.New("filename is empty after sanitizing")

var (
	unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
	whitespaceRun       = regexp.MustCompile(`\s+`)
)

// SanitizeFilename reduces an uploaded filename to a safe ASCII basename:
// accents are stripped, path separators become spaces, whitespace runs
// become "_", anything outside [A-Za-z0-9_.-] is dropped and leading or
// trailing dots and underscores are trimmed.
func SanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(name) {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	s := b.String()
	s = strings.NewReplacer("/", " ", "\\", " ").Replace(s)
	s = strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafeFilenameChars.ReplaceAllString(s, "")
	return strings.Trim(s, "._")
}
