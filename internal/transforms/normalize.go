package transforms

import (
	"image"

	"github.com/ironsheep/landmark-augment/internal/geometry"
	"github.com/ironsheep/landmark-augment/internal/tensor"
)

// Normalize remaps every pixel value to (v - mean) / std and returns the
// result as a float-valued image, so the remap is exactly invertible by
// UnNormalize. It always applies and leaves landmarks untouched. Place it at
// the tail of a pipeline: geometric transforms quantize float images back to
// 8 bits.
type Normalize struct {
	Record

	mean float32
	std  float32
}

// NewNormalize builds a Normalize with the given mean and (non-zero)
// standard deviation.
func NewNormalize(mean, std float32) (*Normalize, error) {
	if std == 0 {
		return nil, configErr("normalize: std must be non-zero")
	}
	return &Normalize{Record: newRecord(), mean: mean, std: std}, nil
}

func (t *Normalize) Name() string { return "Normalize" }

func (t *Normalize) Apply(img image.Image, lms []geometry.Point) (image.Image, []geometry.Point, error) {
	out := tensor.Float(img).Remap(func(v float32) float32 {
		return (v - t.mean) / t.std
	})
	t.applied = true
	return out, clonePoints(lms), nil
}

// UnNormalize inverts Normalize: every pixel value becomes v*std + mean.
// Applied to the float image a Normalize produced, it restores the original
// values within floating-point tolerance.
type UnNormalize struct {
	Record

	mean float32
	std  float32
}

// NewUnNormalize builds the inverse of a Normalize with the same mean and
// std.
func NewUnNormalize(mean, std float32) (*UnNormalize, error) {
	if std == 0 {
		return nil, configErr("unnormalize: std must be non-zero")
	}
	return &UnNormalize{Record: newRecord(), mean: mean, std: std}, nil
}

func (t *UnNormalize) Name() string { return "UnNormalize" }

func (t *UnNormalize) Apply(img image.Image, lms []geometry.Point) (image.Image, []geometry.Point, error) {
	out := tensor.Float(img).Remap(func(v float32) float32 {
		return v*t.std + t.mean
	})
	t.applied = true
	return out, clonePoints(lms), nil
}
