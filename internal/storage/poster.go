// Package storage persists uploaded poster images on local disk and maps
// them to URLs served from the static file route.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// PosterStore writes poster uploads under a base directory. Files are
// named by movie ID so re-uploading replaces the old poster in place.
type PosterStore struct {
	Dir     string // filesystem directory, created on first save
	BaseURL string // URL prefix the router serves Dir under, e.g. "/static/posters"
}

func NewPosterStore(dir, baseURL string) *PosterStore {
	return &PosterStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}
}

var allowedExt = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

// Save stores the poster for a movie and returns the public URL. The
// extension is taken from the uploaded filename and must be an image
// type; anything else is rejected before touching the disk.
func (s *PosterStore) Save(movieID uint64, filename string, src io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExt[ext]; !ok {
		return "", fmt.Errorf("unsupported poster format %q", ext)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create poster dir: %w", err)
	}

	name := fmt.Sprintf("movie_%d%s", movieID, ext)
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create poster file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write poster file: %w", err)
	}
	// A replaced poster may leave a stale file under another extension.
	for other := range allowedExt {
		if other == ext {
			continue
		}
		_ = os.Remove(filepath.Join(s.Dir, fmt.Sprintf("movie_%d%s", movieID, other)))
	}
	return s.BaseURL + "/" + name, nil
}

// Remove deletes any stored poster for the movie. Missing files are not
// an error.
func (s *PosterStore) Remove(movieID uint64) error {
	for ext := range allowedExt {
		path := filepath.Join(s.Dir, fmt.Sprintf("movie_%d%s", movieID, ext))
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
