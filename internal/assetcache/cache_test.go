package assetcache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGet_ReadsAndCaches(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icon.png")
	if err := os.WriteFile(path, []byte("png-bytes"), 0o644); err != nil {
		t.Fatalf("write asset: %v", err)
	}

	c := New(dir)
	data, ok := c.Get("icon.png")
	if !ok || string(data) != "png-bytes" {
		t.Fatalf("expected asset hit, got ok=%v data=%q", ok, data)
	}

	// cached after the first read
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove asset: %v", err)
	}
	if _, ok := c.Get("icon.png"); !ok {
		t.Fatalf("expected cached asset after file removal")
	}
}

func TestGet_MissingFile(t *testing.T) {
	c := New(t.TempDir())
	if _, ok := c.Get("nope.png"); ok {
		t.Fatalf("expected miss for unknown asset")
	}
}

func TestGet_RejectsPathNames(t *testing.T) {
	c := New(t.TempDir())
	for _, name := range []string{"", "sub/icon.png", "../escape.png"} {
		if _, ok := c.Get(name); ok {
			t.Fatalf("expected miss for path-like name %q", name)
		}
	}
}

func TestPut_Seeds(t *testing.T) {
	c := New(t.TempDir())
	c.Put("seeded.png", []byte("bytes"))

	data, ok := c.Get("seeded.png")
	if !ok || string(data) != "bytes" {
		t.Fatalf("expected seeded asset, got ok=%v data=%q", ok, data)
	}
}
