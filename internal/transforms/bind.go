package transforms

import (
	"image"

	"github.com/ironsheep/landmark-augment/internal/geometry"
)

// ImageFunc is an image-only operation from outside the landmark-aware
// transform set, for example a filter from a third-party imaging library.
type ImageFunc func(image.Image) (image.Image, error)

// Bound adapts an ImageFunc to the Transform contract: the function mutates
// the image, the landmarks pass through unchanged, and the step always
// reports applied.
type Bound struct {
	Record

	name string
	fn   ImageFunc
}

// Bind wraps an image-only function as a Transform.
func Bind(name string, fn ImageFunc) (*Bound, error) {
	if fn == nil {
		return nil, configErr("bind: nil function")
	}
	if name == "" {
		name = "Bound"
	}
	return &Bound{Record: newRecord(), name: name, fn: fn}, nil
}

func (t *Bound) Name() string { return t.name }

func (t *Bound) Apply(img image.Image, lms []geometry.Point) (image.Image, []geometry.Point, error) {
	out, err := t.fn(img)
	if err != nil {
		return nil, nil, err
	}
	t.applied = true
	return out, clonePoints(lms), nil
}
