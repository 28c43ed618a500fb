package fileblob

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "manual.pdf")
	content := []byte("%PDF-1.4 fake content")
	if err := os.WriteFile(src, content, 0600); err != nil {
		t.Fatal(err)
	}

	uri, name, err := Encode(src)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if name != "manual.pdf" {
		t.Errorf("filename = %q, want manual.pdf", name)
	}
	if !strings.HasPrefix(uri, "data:application/pdf;base64,") {
		t.Errorf("uri prefix = %q", uri[:min(len(uri), 40)])
	}

	raw, err := Decode(uri)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(raw, content) {
		t.Error("decoded bytes differ from source")
	}
}

func TestEncodeUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "blob.bin")
	if err := os.WriteFile(src, []byte{0x01, 0x02}, 0600); err != nil {
		t.Fatal(err)
	}

	uri, _, err := Encode(src)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(uri, "data:application/octet-stream;base64,") {
		t.Errorf("unknown extension should fall back to octet-stream, got %q", uri[:40])
	}
}

func TestDecodeRejectsNonDataURI(t *testing.T) {
	for _, bad := range []string{"", "hello", "data:image/png,notbase64", "https://example.com/a.png"} {
		if _, err := Decode(bad); err == nil {
			t.Errorf("Decode(%q) should fail", bad)
		}
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "foto.png")
	content := []byte("pretend png")
	if err := os.WriteFile(src, content, 0600); err != nil {
		t.Fatal(err)
	}

	uri, _, err := Encode(src)
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "exported.png")
	if err := Export(uri, out); err != nil {
		t.Fatalf("Export: %v", err)
	}
	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(raw, content) {
		t.Error("exported bytes differ from source")
	}
}
