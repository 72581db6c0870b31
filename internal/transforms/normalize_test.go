package transforms

import (
	"errors"
	"math"
	"testing"

	"github.com/ironsheep/landmark-augment/internal/tensor"
)

func TestNormalize_RemapsValues(t *testing.T) {
	img := patternImage(20, 20)
	lms := pts(5, 5, 15, 15)

	norm, err := NewNormalize(127.5, 128)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, got, err := norm.Apply(img, lms)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	samePoints(t, got, lms, 0)
	if !norm.Applied() {
		t.Error("normalize must report applied")
	}

	f, ok := out.(*tensor.FloatImage)
	if !ok {
		t.Fatalf("output type: got %T, want *tensor.FloatImage", out)
	}
	for _, v := range f.Pix {
		if v < -1.0 || v > 1.0 {
			t.Fatalf("normalized value %v outside [-1, 1]", v)
		}
	}
}

func TestNormalize_UnNormalizeRoundTrip(t *testing.T) {
	img := patternImage(20, 20)
	lms := pts(5, 5)

	norm, err := NewNormalize(127.5, 128)
	if err != nil {
		t.Fatalf("new normalize: %v", err)
	}
	unnorm, err := NewUnNormalize(127.5, 128)
	if err != nil {
		t.Fatalf("new unnormalize: %v", err)
	}

	mid, _, err := norm.Apply(img, lms)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	back, _, err := unnorm.Apply(mid, lms)
	if err != nil {
		t.Fatalf("unnormalize: %v", err)
	}

	orig := tensor.Float(img)
	restored, ok := back.(*tensor.FloatImage)
	if !ok {
		t.Fatalf("output type: got %T, want *tensor.FloatImage", back)
	}
	for i := range orig.Pix {
		if math.Abs(float64(orig.Pix[i]-restored.Pix[i])) > 1e-3 {
			t.Fatalf("value %d: got %v, want %v", i, restored.Pix[i], orig.Pix[i])
		}
	}

	// Through 8-bit conversion the round trip is pixel exact.
	if !samePixels(back, img) {
		t.Error("round trip must restore the original pixels")
	}
}

func TestNewNormalize_ZeroStd(t *testing.T) {
	if _, err := NewNormalize(127.5, 0); !errors.Is(err, ErrConfig) {
		t.Errorf("normalize: got %v, want ErrConfig", err)
	}
	if _, err := NewUnNormalize(127.5, 0); !errors.Is(err, ErrConfig) {
		t.Errorf("unnormalize: got %v, want ErrConfig", err)
	}
}
