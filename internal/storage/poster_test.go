package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPosterStoreSave(t *testing.T) {
	dir := t.TempDir()
	s := NewPosterStore(dir, "/static/posters/")

	url, err := s.Save(7, "poster.JPG", strings.NewReader("jpeg-bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if url != "/static/posters/movie_7.jpg" {
		t.Errorf("url = %q", url)
	}
	data, err := os.ReadFile(filepath.Join(dir, "movie_7.jpg"))
	if err != nil {
		t.Fatalf("read saved poster: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Errorf("saved content = %q", data)
	}

	// Re-uploading under a new extension must not leave the old file.
	if _, err := s.Save(7, "poster.png", strings.NewReader("png-bytes")); err != nil {
		t.Fatalf("Save replacement: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "movie_7.jpg")); !os.IsNotExist(err) {
		t.Error("stale jpg poster still on disk")
	}
	if _, err := os.Stat(filepath.Join(dir, "movie_7.png")); err != nil {
		t.Errorf("replacement poster missing: %v", err)
	}
}

func TestPosterStoreRejectsBadExtension(t *testing.T) {
	s := NewPosterStore(t.TempDir(), "/static/posters")
	for _, name := range []string{"poster.gif", "poster.exe", "poster", "poster.jpg.sh"} {
		if _, err := s.Save(1, name, strings.NewReader("x")); err == nil {
			t.Errorf("Save(%q) accepted a disallowed extension", name)
		}
	}
}

func TestPosterStoreRemove(t *testing.T) {
	dir := t.TempDir()
	s := NewPosterStore(dir, "/static/posters")

	if _, err := s.Save(3, "a.webp", strings.NewReader("x")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Remove(3); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "movie_3.webp")); !os.IsNotExist(err) {
		t.Error("poster still on disk after Remove")
	}
	// Removing a movie with no poster is a no-op.
	if err := s.Remove(99); err != nil {
		t.Errorf("Remove of absent poster: %v", err)
	}
}
