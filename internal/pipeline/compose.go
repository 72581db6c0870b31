package pipeline

import (
	"fmt"
	"image"
	"io"

	"github.com/charmbracelet/log"

	"github.com/ironsheep/landmark-augment/internal/geometry"
	"github.com/ironsheep/landmark-augment/internal/transforms"
)

// Compose holds an ordered list of transforms and runs them as one
// best-effort augmentation pipeline.
type Compose struct {
	steps  []transforms.Transform
	flags  []bool
	logger *log.Logger
}

// Option configures a Compose.
type Option func(*Compose)

// WithLogger routes per-step failure reports to the given logger. The
// default discards them.
func WithLogger(l *log.Logger) Option {
	return func(c *Compose) { c.logger = l }
}

// New builds a Compose over steps, which must all be non-nil.
func New(steps []transforms.Transform, opts ...Option) (*Compose, error) {
	for i, t := range steps {
		if t == nil {
			return nil, fmt.Errorf("pipeline: step %d is nil", i)
		}
	}
	c := &Compose{
		steps:  steps,
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Apply runs every transform in order over the pair, rebuilding the flag
// sequence as it goes. A failing step is logged, skipped, and recorded with
// a false flag; the pipeline continues with the pre-failure pair. Apply
// never aborts as a whole.
func (c *Compose) Apply(img image.Image, lms []geometry.Point) (image.Image, []geometry.Point) {
	c.flags = c.flags[:0]
	for _, t := range c.steps {
		out, pts, err := t.Apply(img, lms)
		if err != nil {
			c.logger.Warn("transform failed, skipping step", "transform", t.Name(), "err", err)
			c.flags = append(c.flags, false)
			continue
		}
		img, lms = out, pts
		c.flags = append(c.flags, t.Applied())
	}
	return img, lms
}

// Replay re-invokes the steps that fired during the last Apply, in order, on
// a second image/landmark pair, with the same per-step failure isolation.
// Call it only after Apply; the flag sequence is what couples the two runs.
func (c *Compose) Replay(img image.Image, lms []geometry.Point) (image.Image, []geometry.Point) {
	for i, t := range c.steps {
		if i >= len(c.flags) || !c.flags[i] {
			continue
		}
		out, pts, err := t.Apply(img, lms)
		if err != nil {
			c.logger.Warn("transform failed during replay, skipping step", "transform", t.Name(), "err", err)
			continue
		}
		img, lms = out, pts
	}
	return img, lms
}

// ReplayAffine applies the affine-only records of the steps that fired
// during the last Apply to a raw coordinate set. Use it when a second
// coordinate set (for example a face bounding box) must track the sampled
// geometric decisions without re-running pixel work.
func (c *Compose) ReplayAffine(lms []geometry.Point, opts transforms.AffineOptions) []geometry.Point {
	for i, t := range c.steps {
		if i >= len(c.flags) || !c.flags[i] {
			continue
		}
		lms = t.ApplyAffine(lms, opts)
	}
	return lms
}

// Flags returns a copy of the flag sequence recorded by the last Apply.
func (c *Compose) Flags() []bool {
	out := make([]bool, len(c.flags))
	copy(out, c.flags)
	return out
}

// ClearAffine resets every child's affine record and drops the flag
// sequence.
func (c *Compose) ClearAffine() {
	for _, t := range c.steps {
		t.ClearAffine()
	}
	c.flags = c.flags[:0]
}
