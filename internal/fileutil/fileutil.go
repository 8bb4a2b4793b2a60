// Package fileutil reads and writes the text files the pipelines operate on.
//
// Subtitle files in the wild are not reliably UTF-8; ReadText falls back to
// Latin-1 when the raw bytes fail UTF-8 validation, mirroring the common
// encoding mix of downloaded SRT files. Output writing is plain and
// non-atomic: a failed run may leave a partial file behind, and callers are
// expected to re-run after fixing the underlying condition.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ReadText reads the whole file and returns its content as UTF-8 text.
// Files that are not valid UTF-8 are decoded as Latin-1, which accepts every
// byte sequence, so a readable file never fails decoding.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decode %s as latin-1: %w", path, err)
	}
	return string(decoded), nil
}

// WriteText writes content to path with 0o644 permissions. No atomic-write
// guarantee is made; partial output may remain after a write failure.
func WriteText(path string, content []byte) error {
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// DeriveOutputPath builds the default output path for an input file by
// inserting suffix before the extension. When ext is non-empty it replaces
// the input's extension, otherwise the input extension is kept:
//
//	DeriveOutputPath("ep01.srt", "_clean", ".txt") -> "ep01_clean.txt"
//	DeriveOutputPath("notes.md", "_clean", "")     -> "notes_clean.md"
func DeriveOutputPath(input, suffix, ext string) string {
	inputExt := filepath.Ext(input)
	base := strings.TrimSuffix(input, inputExt)
	if ext == "" {
		ext = inputExt
	}
	return base + suffix + ext
}
