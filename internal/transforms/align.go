package transforms

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/landmark-augment/internal/geometry"
)

// Align rotates the image so the line between two designated eye landmarks
// becomes horizontal, then rescales back to the original canvas size. It is
// the deterministic sibling of RandomRotate, sharing the same rotation core.
type Align struct {
	Record

	leftEye  int
	rightEye int
}

// NewAlign builds an Align from the landmark indexes of the left and right
// eye centers.
func NewAlign(leftEye, rightEye int) (*Align, error) {
	if leftEye < 0 || rightEye < 0 || leftEye == rightEye {
		return nil, configErr("align: need two distinct non-negative eye indexes, got (%d, %d)", leftEye, rightEye)
	}
	return &Align{Record: newRecord(), leftEye: leftEye, rightEye: rightEye}, nil
}

func (t *Align) Name() string { return "Align" }

// Apply horizontalizes the eye line. The eye indexes must address the given
// landmark set; short sets fail the step, which the pipeline isolates.
func (t *Align) Apply(img image.Image, lms []geometry.Point) (image.Image, []geometry.Point, error) {
	if t.leftEye >= len(lms) || t.rightEye >= len(lms) {
		return nil, nil, fmt.Errorf("align: eye indexes (%d, %d) out of range for %d landmarks",
			t.leftEye, t.rightEye, len(lms))
	}

	left := lms[t.leftEye]
	right := lms[t.rightEye]
	angle := math.Atan2(right.Y-left.Y, right.X-left.X) * 180 / math.Pi

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
