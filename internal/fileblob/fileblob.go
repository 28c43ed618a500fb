// Package fileblob converts files to the inline data-URI form records store
// them in. There is no separate blob store and no size limit; a large
// attachment grows the storage file without bound, which matches the
// original and is documented as a known limitation.
package fileblob

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var mimeByExt = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// Encode reads a file and returns its data-URI representation plus the bare
// filename to store alongside it.
func Encode(path string) (uri, filename string, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	mime, ok := mimeByExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		mime = "application/octet-stream"
	}

	uri = "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw)
	return uri, filepath.Base(path), nil
}

// Decode turns a stored data URI back into raw bytes, e.g. for exporting a
// template to disk.
func Decode(uri string) ([]byte, error) {
	idx := strings.Index(uri, ";base64,")
	if !strings.HasPrefix(uri, "data:") || idx < 0 {
		return nil, fmt.Errorf("not a base64 data URI")
	}
	raw, err := base64.StdEncoding.DecodeString(uri[idx+len(";base64,"):])
	if err != nil {
		return nil, fmt.Errorf("failed to decode data URI: %w", err)
	}
	return raw, nil
}

// Export writes a stored data URI to the given path.
func Export(uri, path string) error {
	raw, err := Decode(uri)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0600)
}
