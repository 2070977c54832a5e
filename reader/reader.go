// Package reader loads vocabulary documents with encoding fallback.
// Exported TTL files in the wild arrive as UTF-8, UTF-8 with BOM, cp1252 or
// Latin-1; the cleaner is agnostic to which, it just needs text.
package reader

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadFile reads a document, trying UTF-8 first and falling back to cp1252
// and Latin-1. Returns the decoded text and the name of the encoding that
// succeeded.
func ReadFile(path string) (content, encodingName string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read file: %w", err)
	}
	return Decode(data)
}

// Decode converts raw document bytes to text using the same fallback chain
// as ReadFile.
func Decode(data []byte) (content, encodingName string, err error) {
	if bytes.HasPrefix(data, utf8BOM) {
		trimmed := bytes.TrimPrefix(data, utf8BOM)
		if utf8.Valid(trimmed) {
			return string(trimmed), "utf-8-sig", nil
		}
	}
	if utf8.Valid(data) {
		return string(data), "utf-8", nil
	}

	// cp1252 leaves 0x81, 0x8D, 0x8F, 0x90 and 0x9D unassigned; the charmap
	// decoder substitutes for them instead of failing, so treat their
	// presence as a cp1252 miss and let latin1 take the document.
	if !hasCP1252Holes(data) {
		if decoded, err := charmap.Windows1252.NewDecoder().Bytes(data); err == nil {
			return string(decoded), "cp1252", nil
		}
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", "", fmt.Errorf("decode document: %w", err)
	}
	return string(decoded), "latin1", nil
}

func hasCP1252Holes(data []byte) bool {
	for _, b := range data {
		switch b {
		case 0x81, 0x8D, 0x8F, 0x90, 0x9D:
			return true
		}
	}
	return false
}
