package transforms

import (
	"image"
	"math/rand/v2"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/landmark-augment/internal/geometry"
)

// AssetSource supplies occlusion imagery for the patch and background
// transforms. Random returns a width x height buffer, or false when no asset
// is available or the selected asset failed to decode — callers treat that
// as a no-op for the current invocation.
type AssetSource interface {
	Random(width, height int) (image.Image, bool)
}

// RandomPatches pastes a randomly sized patch from an asset source at a
// random position, simulating the subject being occluded by an object.
// Landmarks pass through unchanged.
type RandomPatches struct {
	Record

	source     AssetSource
	patchRatio float64
	transRatio float64
	prob       float64
	rng        *rand.Rand
}

// NewRandomPatches builds a RandomPatches backed by source. patchRatio must
// lie in (0.1, 1) and transRatio in (0, 1).
func NewRandomPatches(source AssetSource, patchRatio, transRatio, prob float64, opts ...Option) (*RandomPatches, error) {
	if source == nil {
		return nil, configErr("patches: nil asset source")
	}
	if !validProb(prob) {
		return nil, configErr("patches: probability %v out of [0, 1]", prob)
	}
	if patchRatio <= 0.1 || patchRatio >= 1 {
		return nil, configErr("patches: patch ratio %v out of (0.1, 1)", patchRatio)
	}
	if transRatio <= 0 || transRatio >= 1 {
		return nil, configErr("patches: trans ratio %v out of (0, 1)", transRatio)
	}
	o := applyOptions(opts)
	return &RandomPatches{
		Record:     newRecord(),
		source:     source,
		patchRatio: patchRatio,
		transRatio: transRatio,
		prob:       prob,
		rng:        o.rng,
	}, nil
}

func (t *RandomPatches) Name() string { return "RandomPatches" }

func (t *RandomPatches) Apply(img image.Image, lms []geometry.Point) (image.Image, []geometry.Point, error) {
	if !fires(t.rng, t.prob) {
		t.ClearAffine()
		return img, clonePoints(lms), nil
	}

	out := imaging.Clone(img)
	if patch, at, ok := samplePatch(t.rng, t.source, out, t.patchRatio, t.transRatio); ok {
		out = imaging.Paste(out, patch, at)
	}

	t.applied = true
	return out, clonePoints(lms), nil
}

// RandomPatchesAlpha is RandomPatches with the patch alpha-blended over the
// image instead of pasted opaquely. The blend weight is sampled up to the
// configured maximum.
type RandomPatchesAlpha struct {
	Record

	source     AssetSource
	patchRatio float64
	transRatio float64
	maxAlpha   float64
	prob       float64
	rng        *rand.Rand
}

// NewRandomPatchesAlpha builds a RandomPatchesAlpha. maxAlpha bounds the
// sampled blend weight and must lie in [0, 1].
func NewRandomPatchesAlpha(source AssetSource, patchRatio, transRatio, maxAlpha, prob float64, opts ...Option) (*RandomPatchesAlpha, error) {
	if source == nil {
		return nil, configErr("patches: nil asset source")
	}
	if !validProb(prob) {
		return nil, configErr("patches: probability %v out of [0, 1]", prob)
	}
	if patchRatio <= 0.1 || patchRatio >= 1 {
		return nil, configErr("patches: patch ratio %v out of (0.1, 1)", patchRatio)
	}
	if transRatio <= 0 || transRatio >= 1 {
		return nil, configErr("patches: trans ratio %v out of (0, 1)", transRatio)
	}
	if maxAlpha < 0 || maxAlpha > 1 {
		return nil, configErr("patches: alpha %v out of [0, 1]", maxAlpha)
	}
	o := applyOptions(opts)
	return &RandomPatchesAlpha{
		Record:     newRecord(),
		source:     source,
		patchRatio: patchRatio,
		transRatio: transRatio,
		maxAlpha:   maxAlpha,
		prob:       prob,
		rng:        o.rng,
	}, nil
}

func (t *RandomPatchesAlpha) Name() string { return "RandomPatchesAlpha" }

func (t *RandomPatchesAlpha) Apply(img image.Image, lms []geometry.Point) (image.Image, []geometry.Point, error) {
	if !fires(t.rng, t.prob) {
		t.ClearAffine()
		return img, clonePoints(lms), nil
	}

	out := imaging.Clone(img)
	if patch, at, ok := samplePatch(t.rng, t.source, out, t.patchRatio, t.transRatio); ok {
		alpha := uniform(t.rng, 0.1, t.maxAlpha)
		out = imaging.Overlay(out, patch, at, alpha)
	}

	t.applied = true
	return out, clonePoints(lms), nil
}

// RandomBackground alpha-blends a full-frame asset beneath the subject with
// a weight sampled up to the configured maximum. Landmarks pass through
// unchanged.
type RandomBackground struct {
	Record

	source   AssetSource
	maxAlpha float64
	prob     float64
	rng      *rand.Rand
}

// NewRandomBackground builds a RandomBackground. maxAlpha must lie in
// (0.1, 0.5]: stronger blends would drown the subject.
func NewRandomBackground(source AssetSource, maxAlpha, prob float64, opts ...Option) (*RandomBackground, error) {
	if source == nil {
		return nil, configErr("background: nil asset source")
	}
	if !validProb(prob) {
		return nil, configErr("background: probability %v out of [0, 1]", prob)
	}
	if maxAlpha <= 0.1 || maxAlpha > 0.5 {
		return nil, configErr("background: alpha %v out of (0.1, 0.5]", maxAlpha)
	}
	o := applyOptions(opts)
	return &RandomBackground{Record: newRecord(), source: source, maxAlpha: maxAlpha, prob: prob, rng: o.rng}, nil
}

func (t *RandomBackground) Name() string { return "RandomBackground" }

func (t *RandomBackground) Apply(img image.Image, lms []geometry.Point) (image.Image, []geometry.Point, error) {
	if !fires(t.rng, t.prob) {
		t.ClearAffine()
		return img, clonePoints(lms), nil
	}

	out := imaging.Clone(img)
	w, h := out.Bounds().Dx(), out.Bounds().Dy()
	if bg, ok := t.source.Random(w, h); ok {
		alpha := uniform(t.rng, 0.1, t.maxAlpha)
		out = imaging.Overlay(out, bg, image.Point{}, alpha)
	}

	t.applied = true
	return out, clonePoints(lms), nil
}

// samplePatch draws occlusion-rectangle dimensions, asks the source for a
// matching patch, and picks a random position fully inside the image. ok is
// false when the source has nothing to offer.
func samplePatch(rng *rand.Rand, source AssetSource, img *image.NRGBA, maxRatio, transRatio float64) (image.Image, image.Point, bool) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	pw, ph := occlusionRect(rng, w, h, maxRatio, transRatio)

	patch, ok := source.Random(pw, ph)
	if !ok {
		return nil, image.Point{}, false
	}

	x0 := intn(rng, w-pw+1)
	y0 := intn(rng, h-ph+1)
	return patch, image.Pt(x0, y0), true
}
