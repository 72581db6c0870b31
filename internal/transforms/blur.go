package transforms

import (
	"image"
	"math/rand/v2"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/landmark-augment/internal/geometry"
)

// RandomBlur applies a Gaussian blur with a kernel size sampled from the odd
// values of the configured range and a sigma sampled from the sigma range.
// A zero sigma falls back to the kernel-derived default
// 0.3*((k-1)*0.5 - 1) + 0.8. Landmarks pass through unchanged.
type RandomBlur struct {
	Record

	kernels []int
	sigmas  []float64
	prob    float64
	rng     *rand.Rand
}

// NewRandomBlur builds a RandomBlur. kernelLo/kernelHi bound the kernel
// sizes considered; only odd values inside the range are kept.
func NewRandomBlur(kernelLo, kernelHi int, sigmas []float64, prob float64, opts ...Option) (*RandomBlur, error) {
	if !validProb(prob) {
		return nil, configErr("blur: probability %v out of [0, 1]", prob)
	}
	var kernels []int
	for k := kernelLo; k <= kernelHi; k++ {
		if k%2 != 0 {
			kernels = append(kernels, k)
		}
	}
	if len(kernels) == 0 {
		return nil, configErr("blur: no odd kernel sizes in [%d, %d]", kernelLo, kernelHi)
	}
	if len(sigmas) == 0 {
		sigmas = []float64{0, 1, 2, 3, 4}
	}
	o := applyOptions(opts)
	return &RandomBlur{Record: newRecord(), kernels: kernels, sigmas: sigmas, prob: prob, rng: o.rng}, nil
}

func (t *RandomBlur) Name() string { return "RandomBlur" }

func (t *RandomBlur) Apply(img image.Image, lms []geometry.Point) (image.Image, []geometry.Point, error) {
	if !fires(t.rng, t.prob) {
		t.ClearAffine()
		return img, clonePoints(lms), nil
	}

	kernel := t.kernels[intn(t.rng, len(t.kernels))]
	sigma := t.sigmas[intn(t.rng, len(t.sigmas))]
	if sigma <= 0 {
		sigma = 0.3*(float64(kernel-1)*0.5-1) + 0.8
	}

	blurred := blur.Gaussian(imaging.Clone(img), sigma)
	out := imaging.Clone(blurred)

	t.applied = true
	return out, clonePoints(lms), nil
}
