// Package asset converts binary site assets (favicon, web fonts) into
// embeddable data-URIs.
package asset

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupported is returned for extensions outside the embeddable set.
var ErrUnsupported = errors.New("unsupported asset type")

// mimeTypes maps recognized binary-asset extensions to their media type.
var mimeTypes = map[string]string{
	".ico":   "image/x-icon",
	".ttf":   "font/ttf",
	".woff2": "font/woff2",
}

// MIMEType returns the media type for a file extension (leading dot,
// case-insensitive) and whether the extension is a recognized binary
// asset.
func MIMEType(ext string) (string, bool) {
	mime, ok := mimeTypes[strings.ToLower(ext)]
	return mime, ok
}

// IsEmbeddable reports whether path has a recognized binary-asset
// extension.
func IsEmbeddable(path string) bool {
	_, ok := MIMEType(filepath.Ext(path))
	return ok
}

// Encode reads the file at path and returns it as a base64 data-URI
// tagged with the media type for its extension. Returns ErrUnsupported
// for unrecognized extensions and the underlying error for read
// failures; in both cases the file on disk is untouched.
func Encode(path string) (string, error) {
	mime, ok := MIMEType(filepath.Ext(path))
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupported, filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading asset: %w", err)
	}

	return EncodeBytes(mime, data), nil
}

// EncodeBytes builds a data-URI from a media type and raw bytes.
func EncodeBytes(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
