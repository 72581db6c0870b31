package pipeline

import (
	"errors"
	"image"

	"github.com/ironsheep/landmark-augment/internal/geometry"
	"github.com/ironsheep/landmark-augment/internal/tensor"
)

// ErrTypeMismatch reports that the image and landmark arguments arrived in
// different buffer representations, or in one the pipeline does not know.
var ErrTypeMismatch = errors.New("pipeline: image and landmarks must share one supported representation")

// ApplyAny is the representation-agnostic entry point. It accepts the pair
// either in image form (image.Image with []geometry.Point) or in tensor form
// (*tensor.CHW with *tensor.Points), converts tensor input to the image
// domain around the run, and returns the result in the representation it
// received. Mixed representations are rejected with ErrTypeMismatch.
func (c *Compose) ApplyAny(img any, lms any) (any, any, error) {
	switch im := img.(type) {
	case image.Image:
		pts, ok := lms.([]geometry.Point)
		if !ok {
			return nil, nil, ErrTypeMismatch
		}
		outImg, outPts := c.Apply(im, pts)
		return outImg, outPts, nil

	case *tensor.CHW:
		pt, ok := lms.(*tensor.Points)
		if !ok {
			return nil, nil, ErrTypeMismatch
		}
		outImg, outPts := c.Apply(im.Image(), pt.Points())
		return tensor.FromImage(outImg), tensor.FromPoints(outPts), nil

	default:
		return nil, nil, ErrTypeMismatch
	}
}
