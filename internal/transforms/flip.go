package transforms

import (
	"image"
	"math/rand/v2"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/landmark-augment/internal/geometry"
)

// flipHorizontal mirrors the image columns and every x coordinate about the
// vertical center: x' = x + 2*(cx - x). Applying it twice restores the
// original pair exactly.
func flipHorizontal(src *image.NRGBA, lms []geometry.Point) (*image.NRGBA, []geometry.Point) {
	cx := float64(src.Bounds().Dx()) / 2
	out := imaging.FlipH(src)
	pts := clonePoints(lms)
	for i := range pts {
		pts[i].X += 2 * (cx - pts[i].X)
	}
	return out, pts
}

// HorizontalFlip always mirrors the image and landmarks about the vertical
// center.
type HorizontalFlip struct {
	Record
}

// NewHorizontalFlip builds an unconditional horizontal flip.
func NewHorizontalFlip() *HorizontalFlip {
	return &HorizontalFlip{Record: newRecord()}
}

func (t *HorizontalFlip) Name() string { return "HorizontalFlip" }

func (t *HorizontalFlip) Apply(img image.Image, lms []geometry.Point) (image.Image, []geometry.Point, error) {
	out, pts := flipHorizontal(imaging.Clone(img), lms)
	t.applied = true
	return out, pts, nil
}

// RandomHorizontalFlip mirrors the image and landmarks with the configured
// probability.
type RandomHorizontalFlip struct {
	Record

	prob float64
	rng  *rand.Rand
}

// NewRandomHorizontalFlip builds a probability-gated horizontal flip.
func NewRandomHorizontalFlip(prob float64, opts ...Option) (*RandomHorizontalFlip, error) {
	if !validProb(prob) {
		return nil, configErr("flip: probability %v out of [0, 1]", prob)
	}
	o := applyOptions(opts)
	return &RandomHorizontalFlip{Record: newRecord(), prob: prob, rng: o.rng}, nil
}

func (t *RandomHorizontalFlip) Name() string { return "RandomHorizontalFlip" }

func (t *RandomHorizontalFlip) Apply(img image.Image, lms []geometry.Point) (image.Image, []geometry.Point, error) {
	if !fires(t.rng, t.prob) {
		t.ClearAffine()
		return img, clonePoints(lms), nil
	}
	out, pts := flipHorizontal(imaging.Clone(img), lms)
	t.applied = true
	return out, pts, nil
}
