package transforms

import (
	"image"
	"math/rand/v2"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/landmark-augment/internal/geometry"
)

// RandomCenterCrop crops a randomly sized, roughly centered window from the
// image. The window is always widened to fully contain the current landmark
// bounding box; if any landmark would still fall outside the crop, the call
// is rejected and counts as a skip.
type RandomCenterCrop struct {
	Record

	widthRange  Range
	heightRange Range
	prob        float64
	rng         *rand.Rand
}

// NewRandomCenterCrop builds a RandomCenterCrop keeping widthRange /
// heightRange fractions of each axis. Both ranges must lie in (0, 1].
func NewRandomCenterCrop(widthRange, heightRange Range, prob float64, opts ...Option) (*RandomCenterCrop, error) {
	if !validProb(prob) {
		return nil, configErr("center crop: probability %v out of [0, 1]", prob)
	}
	widthRange = widthRange.normalized()
	heightRange = heightRange.normalized()
	for _, r := range []Range{widthRange, heightRange} {
		if r.Lo <= 0 || r.Hi > 1 {
			return nil, configErr("center crop: keep ratios (%v, %v) out of (0, 1]", r.Lo, r.Hi)
		}
	}
	o := applyOptions(opts)
	return &RandomCenterCrop{
		Record:      newRecord(),
		widthRange:  widthRange,
		heightRange: heightRange,
		prob:        prob,
		rng:         o.rng,
	}, nil
}

func (t *RandomCenterCrop) Name() string { return "RandomCenterCrop" }

func (t *RandomCenterCrop) Apply(img image.Image, lms []geometry.Point) (image.Image, []geometry.Point, error) {
	if !fires(t.rng, t.prob) {
		t.ClearAffine()
		return img, clonePoints(lms), nil
	}

	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	cx, cy := w/2, h/2
	box := geometry.ProjectToBox(lms)

	heightRatio := uniform(t.rng, t.heightRange.Lo, t.heightRange.Hi)
	widthRatio := uniform(t.rng, t.widthRange.Lo, t.widthRange.Hi)
	// The split around the center is itself random, so the crop can sit
	// wide-left/narrow-right and wide-top/narrow-bottom.
	topRatio := uniform(t.rng, 0.4, 0.6)
	leftRatio := uniform(t.rng, 0.4, 0.6)

	cropH := min(int(heightRatio*float64(h)+1), h)
	cropW := min(int(widthRatio*float64(w)+1), w)

	leftOffset := float64(cropW) * leftRatio
	rightOffset := float64(cropW) - leftOffset
	topOffset := float64(cropH) * topRatio
	bottomOffset := float64(cropH) - topOffset

	x1 := max(0, int(float64(cx)-leftOffset+1))
	x2 := min(w, int(float64(cx)+rightOffset))
	y1 := max(0, int(float64(cy)-topOffset+1))
	y2 := min(h, int(float64(cy)+bottomOffset))

	// Force the window to contain the landmark box.
	x1 = max(min(x1, int(box.XMin)), 0)
	x2 = min(max(x2, int(box.XMax)+1), w)
	y1 = max(min(y1, int(box.YMin)), 0)
	y2 = min(max(y2, int(box.YMax)+1), h)

	cropW = x2 - x1
	cropH = y2 - y1

	pts := clonePoints(lms)
	for i := range pts {
		pts[i].X -= float64(x1)
		pts[i].Y -= float64(y1)
	}

	shifted := geometry.ProjectToBox(pts)
	if shifted.XMin < 0 || shifted.XMax > float64(cropW) ||
		shifted.YMin < 0 || shifted.YMax > float64(cropH) {
		t.ClearAffine()
		return img, clonePoints(lms), nil
	}

	out := imaging.Crop(src, image.Rect(x1, y1, x2, y2))

	t.applied = true
	return out, pts, nil
}
