package transforms

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// fakeSource hands out solid-color patches of the requested size.
type fakeSource struct {
	fill color.NRGBA
}

func (s fakeSource) Random(width, height int) (image.Image, bool) {
	return solidImage(width, height, s.fill), true
}

// emptySource never has an asset to offer.
type emptySource struct{}

func (emptySource) Random(int, int) (image.Image, bool) { return nil, false }

func TestRandomPatches_PastesAsset(t *testing.T) {
	img := solidImage(100, 100, color.NRGBA{255, 255, 255, 255})
	lms := pts(10, 10, 90, 90)
	red := color.NRGBA{255, 0, 0, 255}

	patches, err := NewRandomPatches(fakeSource{fill: red}, 0.5, 0.5, 1, WithRand(testRand()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, got, err := patches.Apply(img, lms)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	samePoints(t, got, lms, 0)
	if !patches.Applied() {
		t.Error("patches must report applied")
	}

	outN := clonedNRGBA(out)
	found := false
	for y := 0; y < 100 && !found; y++ {
		for x := 0; x < 100; x++ {
			if outN.NRGBAAt(x, y) == red {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no patch pixels found in the output")
	}
}

func TestRandomPatches_EmptySourceIsNoOp(t *testing.T) {
	img := patternImage(60, 60)
	lms := pts(10, 10, 50, 50)

	patches, err := NewRandomPatches(emptySource{}, 0.5, 0.5, 1, WithRand(testRand()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, _, err := patches.Apply(img, lms)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if !samePixels(out, img) {
		t.Error("empty source must leave the image untouched")
	}
	if !patches.Applied() {
		t.Error("the gate fired, so the step still counts as applied")
	}
}

func TestRandomPatchesAlpha_Blends(t *testing.T) {
	img := solidImage(100, 100, color.NRGBA{255, 255, 255, 255})
	blue := color.NRGBA{0, 0, 255, 255}

	patches, err := NewRandomPatchesAlpha(fakeSource{fill: blue}, 0.5, 0.5, 0.5, 1, WithRand(testRand()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, _, err := patches.Apply(img, pts(10, 10, 90, 90))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	// Blended pixels are neither pure white nor pure blue.
	outN := clonedNRGBA(out)
	blended := false
	for y := 0; y < 100 && !blended; y++ {
		for x := 0; x < 100; x++ {
			c := outN.NRGBAAt(x, y)
			if c.R < 250 && c.R > 5 {
				blended = true
				break
			}
		}
	}
	if !blended {
		t.Error("no alpha-blended pixels found in the output")
	}
}

func TestRandomBackground_Blends(t *testing.T) {
	img := solidImage(50, 50, color.NRGBA{255, 255, 255, 255})
	red := color.NRGBA{255, 0, 0, 255}

	background, err := NewRandomBackground(fakeSource{fill: red}, 0.5, 1, WithRand(testRand()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, got, err := background.Apply(img, pts(10, 10, 40, 40))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	samePoints(t, got, pts(10, 10, 40, 40), 0)
	c := clonedNRGBA(out).NRGBAAt(25, 25)
	if c.R != 255 {
		t.Errorf("red channel: got %d, want 255 from both layers", c.R)
	}
	if c.G > 240 {
		t.Errorf("green channel: got %d, want visibly dimmed by the red overlay", c.G)
	}
	if !background.Applied() {
		t.Error("background must report applied")
	}
}

func TestNewRandomPatches_Invalid(t *testing.T) {
	if _, err := NewRandomPatches(nil, 0.5, 0.5, 0.5); !errors.Is(err, ErrConfig) {
		t.Errorf("nil source: got %v, want ErrConfig", err)
	}
	if _, err := NewRandomPatches(emptySource{}, 0.05, 0.5, 0.5); !errors.Is(err, ErrConfig) {
		t.Errorf("patch ratio: got %v, want ErrConfig", err)
	}
	if _, err := NewRandomBackground(emptySource{}, 0.9, 0.5); !errors.Is(err, ErrConfig) {
		t.Errorf("background alpha: got %v, want ErrConfig", err)
	}
	if _, err := NewRandomPatchesAlpha(emptySource{}, 0.5, 0.5, 1.5, 0.5); !errors.Is(err, ErrConfig) {
		t.Errorf("patch alpha: got %v, want ErrConfig", err)
	}
}
