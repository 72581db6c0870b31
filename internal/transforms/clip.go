package transforms

import (
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/landmark-augment/internal/geometry"
)

// Clip crops the image to the tight landmark bounding box extended by
// proportional padding, shifting the landmarks into the crop's coordinate
// frame. With a non-nil resize the crop is then chained through it, and the
// resize's recorded scale becomes this transform's scale.
type Clip struct {
	Record

	widthPad  float64
	heightPad float64
	resize    *Resize
}

// NewClip builds a Clip with the given padding ratios. resize may be nil to
// skip the chained resize.
func NewClip(widthPad, heightPad float64, resize *Resize) (*Clip, error) {
	if widthPad < 0 || heightPad < 0 {
		return nil, configErr("clip: padding ratios must be non-negative, got (%v, %v)", widthPad, heightPad)
	}
	return &Clip{Record: newRecord(), widthPad: widthPad, heightPad: heightPad, resize: resize}, nil
}

func (t *Clip) Name() string { return "Clip" }

// Apply crops around the landmarks. The crop window always contains every
// landmark: padding is clamped to the canvas, never the points.
func (t *Clip) Apply(img image.Image, lms []geometry.Point) (image.Image, []geometry.Point, error) {
	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	box := geometry.ProjectToBox(lms)

	lw := math.Abs(box.Width())
	lh := math.Abs(box.Height())

	left := max(int(box.XMin)-int(lw*t.widthPad), 0)
	right := min(int(box.XMax)+int(lw*t.widthPad), w)
	top := max(int(box.YMin)-int(lh*t.heightPad), 0)
	bottom := min(int(box.YMax)+int(lh*t.heightPad), h)

	out := image.Image(imaging.Crop(src, image.Rect(left, top, right, bottom)))
	pts := clonePoints(lms)
	for i := range pts {
		pts[i].X -= float64(left)
		pts[i].Y -= float64(top)
	}

	if t.resize != nil {
		var err error
		out, pts, err = t.resize.Apply(out, pts)
		if err != nil {
			return nil, nil, err
		}
		t.ScaleX = t.resize.ScaleX
		t.ScaleY = t.resize.ScaleY
	}

	t.applied = true
	return out, pts, nil
}
