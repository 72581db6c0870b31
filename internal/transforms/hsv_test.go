package transforms

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func TestRandomHSV_ValueShiftOnGray(t *testing.T) {
	// A pure value shift on a neutral gray: hue and saturation are zero, so
	// the result is the gray brightened by the sampled delta.
	img := solidImage(20, 20, color.NRGBA{128, 128, 128, 255})
	lms := pts(5, 5, 15, 15)

	hsv, err := NewRandomHSV(Range{}, Range{}, Range{Lo: 50, Hi: 50}, 1, WithRand(testRand()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, got, err := hsv.Apply(img, lms)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	samePoints(t, got, lms, 0)
	c := clonedNRGBA(out).NRGBAAt(10, 10)
	for _, ch := range []uint8{c.R, c.G, c.B} {
		if math.Abs(float64(ch)-178) > 1.5 {
			t.Errorf("channel %d, want about 178 (128 + 50)", ch)
		}
	}
	if !hsv.Applied() {
		t.Error("hsv must report applied")
	}
}

func TestRandomHSV_ClampsAtWhite(t *testing.T) {
	img := solidImage(10, 10, color.NRGBA{250, 250, 250, 255})

	hsv, err := NewRandomHSV(Range{}, Range{}, Range{Lo: 100, Hi: 100}, 1, WithRand(testRand()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, _, err := hsv.Apply(img, pts(5, 5))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	c := clonedNRGBA(out).NRGBAAt(5, 5)
	if c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("got %v, want clamped white", c)
	}
}

func TestRandomHSV_PreservesAlpha(t *testing.T) {
	img := solidImage(10, 10, color.NRGBA{100, 150, 200, 255})

	hsv, err := NewRandomHSV(Sym(10), Sym(20), Sym(20), 1, WithRand(testRand()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, _, err := hsv.Apply(img, pts(5, 5))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if a := clonedNRGBA(out).NRGBAAt(5, 5).A; a != 255 {
		t.Errorf("alpha: got %d, want 255", a)
	}
}

func TestNewRandomHSV_InvalidProbability(t *testing.T) {
	if _, err := NewRandomHSV(Sym(10), Sym(10), Sym(10), 1.1); !errors.Is(err, ErrConfig) {
		t.Errorf("got %v, want ErrConfig", err)
	}
}
