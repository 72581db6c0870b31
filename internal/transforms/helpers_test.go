package transforms

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/landmark-augment/internal/geometry"
)

// patternImage builds a w x h gradient image so geometric mistakes show up
// as pixel differences instead of by accident comparing equal flat colors.
func patternImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / max(w-1, 1)),
				G: uint8(y * 255 / max(h-1, 1)),
				B: uint8((x + y) % 256),
				A: 255,
			})
		}
	}
	return img
}

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// pts builds a landmark slice from x, y coordinate pairs.
func pts(coords ...float64) []geometry.Point {
	if len(coords)%2 != 0 {
		panic("pts: odd coordinate count")
	}
	out := make([]geometry.Point, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		out = append(out, geometry.Point{X: coords[i], Y: coords[i+1]})
	}
	return out
}

// testRand returns a deterministic generator so sampled transforms are
// reproducible across runs.
func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func samePoints(t *testing.T, got, want []geometry.Point, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("point count: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.Abs(got[i].X-want[i].X) > eps || math.Abs(got[i].Y-want[i].Y) > eps {
			t.Errorf("point %d: got (%v,%v), want (%v,%v)", i, got[i].X, got[i].Y, want[i].X, want[i].Y)
		}
	}
}

// samePixels reports whether two images have identical pixel data.
func samePixels(a, b image.Image) bool {
	na, nb := imaging.Clone(a), imaging.Clone(b)
	if na.Bounds() != nb.Bounds() {
		return false
	}
	for i := range na.Pix {
		if na.Pix[i] != nb.Pix[i] {
			return false
		}
	}
	return true
}

func dims(img image.Image) (int, int) {
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func clonedNRGBA(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}
