package transforms

import (
	"image"
	"math"
	"math/rand/v2"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/landmark-augment/internal/geometry"
)

// RandomShear applies a horizontal shear to the image and the landmark box
// with a factor sampled from the configured range, then rescales back to the
// original width. Negative factors are realized by flipping before and after
// a positive shear, so the warp itself always runs left-to-right.
type RandomShear struct {
	Record

	shear Range
	prob  float64
	rng   *rand.Rand
}

// NewRandomShear builds a RandomShear sampling factors from shear.
func NewRandomShear(shear Range, prob float64, opts ...Option) (*RandomShear, error) {
	if !validProb(prob) {
		return nil, configErr("shear: probability %v out of [0, 1]", prob)
	}
	return &RandomShear{Record: newRecord(), shear: shear.normalized(), prob: prob, rng: applyOptions(opts).rng}, nil
}

func (t *RandomShear) Name() string { return "RandomShear" }

func (t *RandomShear) Apply(img image.Image, lms []geometry.Point) (image.Image, []geometry.Point, error) {
	if !fires(t.rng, t.prob) {
		t.ClearAffine()
		return img, clonePoints(lms), nil
	}

	factor := uniform(t.rng, t.shear.Lo, t.shear.Hi)
	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	n := len(lms)

	pts := clonePoints(lms)
	if factor < 0 {
		src, pts = flipHorizontal(src, pts)
	}
	a := math.Abs(factor)

	// Shift the box x coordinates by their corner y scaled with the factor,
	// matching the column displacement of the sheared canvas.
	box := geometry.ProjectToBox(pts)
	box.XMin += math.Trunc(box.YMin * a)
	box.XMax += math.Trunc(box.YMax * a)

	sheared := geometry.ShearCanvas(src, a)
	sw, sh := sheared.Bounds().Dx(), sheared.Bounds().Dy()

	pts = geometry.ReprojectToPoints(box, float64(sw), float64(sh), n)
	if len(pts) != n {
		return nil, nil, countMismatch(t.Name(), n, len(pts))
	}
	if factor < 0 {
		sheared, pts = flipHorizontal(sheared, pts)
	}

	box = geometry.ProjectToBox(pts)
	out := imaging.Resize(sheared, w, h, imaging.Lanczos)

	fx := float64(sw) / float64(w)
	box = box.Scaled(1/fx, 1)

	pts = geometry.ReprojectToPoints(box, float64(w), float64(h), n)
	if len(pts) != n {
		return nil, nil, countMismatch(t.Name(), n, len(pts))
	}

	t.ScaleX, t.ScaleY = 1/fx, 1
	t.applied = true
	return out, pts, nil
}
