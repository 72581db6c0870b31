package transforms

import (
	"image"
	"math"
	"math/rand/v2"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/landmark-augment/internal/geometry"
)

// rotateRescale is the rotation core shared by RandomRotate and Align: rotate
// the canvas (expanding it), rotate the landmark box corners with the same
// matrix, resize the expanded canvas back to the original dimensions, scale
// the box to match, and clip it to the canvas.
//
// It returns the new image, the reconstructed landmarks, and the inverse
// rescale factors recorded as the transform's scale.
func rotateRescale(name string, src *image.NRGBA, lms []geometry.Point, angle float64) (*image.NRGBA, []geometry.Point, float64, float64, error) {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	cx, cy := float64(w/2), float64(h/2)
	n := len(lms)

	rotated := geometry.RotateCanvas(src, angle)

	box := geometry.ProjectToBox(lms)
	corners := box.Corners()
	rc := geometry.RotatePoints(corners[:], angle, cx, cy, w, h)

	// The rotated top-left and bottom-right corners become the new box.
	box = geometry.Box{
		XMin: rc[0].X, YMin: rc[0].Y,
		XMax: rc[3].X, YMax: rc[3].Y,
		Meta: box.Meta,
	}

	fx := float64(rotated.Bounds().Dx()) / float64(w)
	fy := float64(rotated.Bounds().Dy()) / float64(h)

	out := imaging.Resize(rotated, w, h, imaging.Lanczos)
	box = box.Scaled(1/fx, 1/fy)
	box = geometry.ClipBox(box, float64(w), float64(h), minRetainedArea)

	pts := geometry.ReprojectToPoints(box, float64(w), float64(h), n)
	if len(pts) != n {
		return nil, nil, 0, 0, countMismatch(name, n, len(pts))
	}
	return out, pts, 1 / fx, 1 / fy, nil
}

// minRetainedArea is the fraction of a landmark box that must survive
// clipping before the box counts as degenerate.
const minRetainedArea = 0.0025

// RandomRotate rotates the image and landmarks by an angle sampled from a
// fixed pool with the configured probability. The pool is built once at
// construction: with bins the range is split into evenly spaced integer
// angles; without, it is a fixed set of continuous uniform samples.
type RandomRotate struct {
	Record

	angles []float64
	prob   float64
	rng    *rand.Rand
}

// NewRandomRotate builds a RandomRotate sampling from angle (degrees). Pass
// bins <= 0 for continuous sampling.
func NewRandomRotate(angle Range, prob float64, bins int, opts ...Option) (*RandomRotate, error) {
	if !validProb(prob) {
		return nil, configErr("rotate: probability %v out of [0, 1]", prob)
	}
	angle = angle.normalized()
	span := math.Abs(angle.Hi - angle.Lo)
	if span < 1 {
		return nil, configErr("rotate: angle range (%v, %v) narrower than one degree", angle.Lo, angle.Hi)
	}

	o := applyOptions(opts)
	var angles []float64
	if bins > 0 {
		step := int(span)/bins + 1
		for a := int(angle.Lo); a < int(angle.Hi); a += step {
			angles = append(angles, float64(a))
		}
	} else {
		for i := 0; i < int(span); i++ {
			angles = append(angles, uniform(o.rng, angle.Lo, angle.Hi))
		}
	}
	if len(angles) == 0 {
		return nil, configErr("rotate: empty angle pool for range (%v, %v), bins %d", angle.Lo, angle.Hi, bins)
	}

	return &RandomRotate{Record: newRecord(), angles: angles, prob: prob, rng: o.rng}, nil
}

func (t *RandomRotate) Name() string { return "RandomRotate" }

// Apply rotates with the configured probability, recording the sampled angle
// and the inverse rescale factors.
func (t *RandomRotate) Apply(img image.Image, lms []geometry.Point) (image.Image, []geometry.Point, error) {
	if !fires(t.rng, t.prob) {
		t.ClearAffine()
		return img, clonePoints(lms), nil
	}

	angle := t.angles[intn(t.rng, len(t.angles))]
	src := imaging.Clone(img)

	out, pts, sx, sy, err := rotateRescale(t.Name(), src, lms, angle)
	if err != nil {
		return nil, nil, err
	}

	t.Rotate = angle
	t.ScaleX, t.ScaleY = sx, sy
	t.applied = true
	return out, pts, nil
}
