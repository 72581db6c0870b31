// Package assets supplies occlusion imagery (patches, backgrounds) to the
// patch-overlay transforms. It scans configured directories for image files,
// decodes them lazily with a thread-safe cache, and serves randomly cropped
// or resized buffers of a requested size.
package assets

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
)

// imageExts are the file extensions the directory scan accepts.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Store is a directory-backed asset source. Decoded images are cached by
// path; the cache is safe for concurrent use. Random selection goes through
// the store's generator, which callers can pin for determinism.
type Store struct {
	mu     sync.RWMutex
	images map[string]image.Image

	paths []string
	rng   *rand.Rand
}

// Option configures a Store.
type Option func(*Store)

// WithRand supplies an explicit random generator for asset selection and
// cropping.
func WithRand(r *rand.Rand) Option {
	return func(s *Store) { s.rng = r }
}

// NewStore scans the given directories for image files and builds a store
// over them. Directories that cannot be read produce an error; an empty
// result set is allowed and simply makes Random always report false.
func NewStore(dirs []string, opts ...Option) (*Store, error) {
	s := &Store{images: make(map[string]image.Image)}
	for _, opt := range opts {
		opt(s)
	}

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset directory: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
				s.paths = append(s.paths, filepath.Join(dir, e.Name()))
			}
		}
	}
	sort.Strings(s.paths)
	return s, nil
}

// List returns the scanned asset paths.
func (s *Store) List() []string {
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

// Load retrieves an asset from the cache or decodes it from disk.
func (s *Store) Load(path string) (image.Image, error) {
	s.mu.RLock()
	if img, ok := s.images[path]; ok {
		s.mu.RUnlock()
		return img, nil
	}
	s.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open asset: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode asset: %w", err)
	}

	s.mu.Lock()
	s.images[path] = img
	s.mu.Unlock()

	return img, nil
}

// Clear empties the decode cache. Subsequent loads read from disk again.
func (s *Store) Clear() {
	s.mu.Lock()
	s.images = make(map[string]image.Image)
	s.mu.Unlock()
}

// Random picks a random asset and returns a width x height buffer from it:
// a random sub-crop when the asset is larger, a Lanczos resize when it is
// not. It reports false when the store is empty or the selected asset fails
// to decode; callers treat that as "no asset this time".
func (s *Store) Random(width, height int) (image.Image, bool) {
	if len(s.paths) == 0 || width <= 0 || height <= 0 {
		return nil, false
	}

	path := s.paths[s.intn(len(s.paths))]
	img, err := s.Load(path)
	if err != nil {
		return nil, false
	}

	b := img.Bounds()
	if b.Dy() <= height || b.Dx() <= width {
		return imaging.Resize(img, width, height, imaging.Lanczos), true
	}

	x1 := s.intn(b.Dx()-width+1)
	y1 := s.intn(b.Dy()-height+1)
	crop := image.Rect(b.Min.X+x1, b.Min.Y+y1, b.Min.X+x1+width, b.Min.Y+y1+height)
	return imaging.Crop(img, crop), true
}

func (s *Store) intn(n int) int {
	if s.rng != nil {
		return s.rng.IntN(n)
	}
	return rand.IntN(n)
}
