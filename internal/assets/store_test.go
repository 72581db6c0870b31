package assets

import (
	"image"
	"image/color"
	"image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, dir, name string, w, h int, c color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", name, err)
	}
	return path
}

func testStore(t *testing.T, dir string) *Store {
	t.Helper()
	s, err := NewStore([]string{dir}, WithRand(rand.New(rand.NewPCG(3, 5))))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func TestNewStore_FiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "a.png", 8, 8, color.NRGBA{255, 0, 0, 255})
	writePNG(t, dir, "b.PNG", 8, 8, color.NRGBA{0, 255, 0, 255})
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s := testStore(t, dir)
	if got := s.List(); len(got) != 2 {
		t.Errorf("paths: got %d (%v), want 2", len(got), got)
	}
}

func TestNewStore_UnreadableDirectory(t *testing.T) {
	if _, err := NewStore([]string{filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Error("unreadable directory must fail")
	}
}

func TestStore_LoadCachesDecodes(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "a.png", 8, 8, color.NRGBA{10, 20, 30, 255})
	s := testStore(t, dir)

	first, err := s.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	// A cached decode survives the file disappearing.
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	second, err := s.Load(path)
	if err != nil {
		t.Fatalf("cached load: %v", err)
	}
	if first != second {
		t.Error("second load must come from the cache")
	}

	s.Clear()
	if _, err := s.Load(path); err == nil {
		t.Error("load after Clear must hit the missing file")
	}
}

func TestStore_RandomResizesSmallAssets(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "small.png", 6, 6, color.NRGBA{200, 100, 50, 255})
	s := testStore(t, dir)

	img, ok := s.Random(20, 30)
	if !ok {
		t.Fatal("expected an asset")
	}
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 20 || h != 30 {
		t.Errorf("got %dx%d, want 20x30", w, h)
	}
}

func TestStore_RandomCropsLargeAssets(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "big.png", 64, 64, color.NRGBA{5, 5, 5, 255})
	s := testStore(t, dir)

	img, ok := s.Random(10, 12)
	if !ok {
		t.Fatal("expected an asset")
	}
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 10 || h != 12 {
		t.Errorf("got %dx%d, want 10x12", w, h)
	}
}

func TestStore_RandomEmptyStore(t *testing.T) {
	s := testStore(t, t.TempDir())
	if _, ok := s.Random(10, 10); ok {
		t.Error("empty store must report false")
	}
}

func TestStore_RandomCorruptAsset(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s := testStore(t, dir)
	if _, ok := s.Random(10, 10); ok {
		t.Error("undecodable asset must report false")
	}
}

func TestStore_RandomInvalidSize(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "a.png", 8, 8, color.NRGBA{1, 2, 3, 255})
	s := testStore(t, dir)

	if _, ok := s.Random(0, 10); ok {
		t.Error("zero width must report false")
	}
}
