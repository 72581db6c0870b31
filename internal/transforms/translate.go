package transforms

import (
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/landmark-augment/internal/geometry"
)

// RandomTranslate shifts the image content by a sampled fraction of each
// dimension into a black canvas of the original size, clipping the landmark
// box to the canvas. With diff the axes sample independently; otherwise the
// horizontal sample drives both.
//
// The shift is deliberately not written into the affine record's translate
// components; affine replay of this transform is an identity. This mirrors
// the behavior downstream consumers already depend on.
type RandomTranslate struct {
	Record

	translate Range
	prob      float64
	diff      bool
	rng       *rand.Rand
}

// NewRandomTranslate builds a RandomTranslate sampling shift fractions from
// translate, which must lie strictly inside (-1, 1).
func NewRandomTranslate(translate Range, prob float64, diff bool, opts ...Option) (*RandomTranslate, error) {
	if !validProb(prob) {
		return nil, configErr("translate: probability %v out of [0, 1]", prob)
	}
	translate = translate.normalized()
	if translate.Lo <= -1 || translate.Lo >= 1 || translate.Hi <= -1 || translate.Hi >= 1 {
		return nil, configErr("translate: fractions (%v, %v) out of (-1, 1)", translate.Lo, translate.Hi)
	}
	o := applyOptions(opts)
	return &RandomTranslate{Record: newRecord(), translate: translate, prob: prob, diff: diff, rng: o.rng}, nil
}

func (t *RandomTranslate) Name() string { return "RandomTranslate" }

func (t *RandomTranslate) Apply(img image.Image, lms []geometry.Point) (image.Image, []geometry.Point, error) {
	if !fires(t.rng, t.prob) {
		t.ClearAffine()
		return img, clonePoints(lms), nil
	}

	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	n := len(lms)

	fx := uniform(t.rng, t.translate.Lo, t.translate.Hi)
	fy := fx
	if t.diff {
		fy = uniform(t.rng, t.translate.Lo, t.translate.Hi)
	}
	dx := int(fx * float64(w))
	dy := int(fy * float64(h))

	canvas := imaging.New(w, h, color.NRGBA{0, 0, 0, 255})
	out := imaging.Paste(canvas, src, image.Pt(dx, dy))

	box := geometry.ProjectToBox(lms).Shifted(float64(dx), float64(dy))
	box = geometry.ClipBox(box, float64(w), float64(h), minRetainedArea)

	pts := geometry.ReprojectToPoints(box, float64(w), float64(h), n)
	if len(pts) != n {
		return nil, nil, countMismatch(t.Name(), n, len(pts))
	}

	t.applied = true
	return out, pts, nil
}
