package transforms

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/landmark-augment/internal/geometry"
)

// Resize scales an image and its landmarks to a fixed target size.
//
// With keepAspect the image is letterboxed: scaled by the limiting axis ratio
// and pasted centered onto a gray canvas of the target size, with the
// landmark box shifted by the symmetric padding. Without it the image is
// stretched independently per axis.
type Resize struct {
	Record

	width      int
	height     int
	keepAspect bool
}

// NewResize builds a Resize targeting a width x height output.
func NewResize(width, height int, keepAspect bool) (*Resize, error) {
	if width <= 0 || height <= 0 {
		return nil, configErr("resize: size must be positive, got %dx%d", width, height)
	}
	return &Resize{Record: newRecord(), width: width, height: height, keepAspect: keepAspect}, nil
}

func (t *Resize) Name() string { return "Resize" }

// Apply resizes the image and mirrors the scaling onto the landmark set via
// its enclosing box.
func (t *Resize) Apply(img image.Image, lms []geometry.Point) (image.Image, []geometry.Point, error) {
	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	n := len(lms)
	box := geometry.ProjectToBox(lms)

	var out *image.NRGBA
	if t.keepAspect {
		scale := math.Min(float64(t.height)/float64(h), float64(t.width)/float64(w))
		scaled := imaging.Resize(src, int(float64(w)*scale), int(float64(h)*scale), imaging.Lanczos)
		canvas := imaging.New(t.width, t.height, color.NRGBA{128, 128, 128, 255})
		out = imaging.PasteCenter(canvas, scaled)

		padX := math.Floor((float64(t.width) - float64(w)*scale) / 2)
		padY := math.Floor((float64(t.height) - float64(h)*scale) / 2)
		box = box.Scaled(scale, scale).Shifted(padX, padY)
		t.ScaleX, t.ScaleY = scale, scale
	} else {
		sx := float64(t.width) / float64(w)
		sy := float64(t.height) / float64(h)
		out = imaging.Resize(src, t.width, t.height, imaging.Lanczos)
		box = box.Scaled(sx, sy)
		t.ScaleX, t.ScaleY = sx, sy
	}

	pts := geometry.ReprojectToPoints(box, float64(t.width), float64(t.height), n)
	if len(pts) != n {
		return nil, nil, countMismatch(t.Name(), n, len(pts))
	}

	t.applied = true
	return out, pts, nil
}
