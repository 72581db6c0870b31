package transforms

import (
	"errors"
	"math"
	"testing"
)

func TestRandomShear_FixedFactor(t *testing.T) {
	img := patternImage(100, 100)
	lms := pts(10, 10, 90, 90, 50, 50)

	shear, err := NewRandomShear(Range{Lo: 0.2, Hi: 0.2}, 1, WithRand(testRand()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, got, err := shear.Apply(img, lms)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if w, h := dims(out); w != 100 || h != 100 {
		t.Errorf("output: got %dx%d, want the original 100x100", w, h)
	}
	if len(got) != len(lms) {
		t.Errorf("count: got %d, want %d", len(got), len(lms))
	}
	for i, p := range got {
		if p.X < 0 || p.X > 100 || p.Y < 0 || p.Y > 100 {
			t.Errorf("point %d %v outside canvas", i, p)
		}
	}

	// Sheared width 120 rescaled back to 100.
	if math.Abs(shear.ScaleX-100.0/120.0) > 1e-9 || shear.ScaleY != 1 {
		t.Errorf("recorded scale: got (%v,%v), want (%v,1)", shear.ScaleX, shear.ScaleY, 100.0/120.0)
	}
	if !shear.Applied() {
		t.Error("shear must report applied")
	}
}

func TestRandomShear_NegativeFactorViaFlips(t *testing.T) {
	img := patternImage(100, 100)
	lms := pts(20, 20, 80, 80)

	shear, err := NewRandomShear(Range{Lo: -0.2, Hi: -0.2}, 1, WithRand(testRand()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, got, err := shear.Apply(img, lms)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if w, h := dims(out); w != 100 || h != 100 {
		t.Errorf("output: got %dx%d, want 100x100", w, h)
	}
	if len(got) != len(lms) {
		t.Errorf("count: got %d, want %d", len(got), len(lms))
	}
	if !shear.Applied() {
		t.Error("shear must report applied")
	}
}

func TestRandomShear_Skip(t *testing.T) {
	img := patternImage(40, 40)
	lms := pts(10, 10, 30, 30)

	shear, err := NewRandomShear(Sym(0.3), 0, WithRand(testRand()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, got, err := shear.Apply(img, lms)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if shear.Applied() {
		t.Error("zero probability shear must not apply")
	}
	samePoints(t, got, lms, 0)
	if !samePixels(out, img) {
		t.Error("skipped shear must leave the image untouched")
	}
}

func TestNewRandomShear_InvalidProbability(t *testing.T) {
	if _, err := NewRandomShear(Sym(0.3), -1); !errors.Is(err, ErrConfig) {
		t.Errorf("got %v, want ErrConfig", err)
	}
}
