package transforms

import (
	"image"
	"slices"

	"github.com/ironsheep/landmark-augment/internal/geometry"
)

// Transform is the unit of work composed by the pipeline: it takes an image
// and its landmark set, returns the transformed pair, and keeps an affine
// summary of what it did so the same linear effect can be replayed onto an
// arbitrary external point set.
type Transform interface {
	// Name identifies the transform in logs and errors.
	Name() string

	// Apply transforms the image and its landmarks together. The inputs are
	// never mutated. Geometric transforms return exactly len(lms) landmarks
	// or an error wrapping ErrLandmarkCount.
	Apply(img image.Image, lms []geometry.Point) (image.Image, []geometry.Point, error)

	// Applied reports whether the most recent Apply actually fired (a
	// probability-gated transform that declined reports false).
	Applied() bool

	// ApplyAffine applies only the recorded linear part of the transform's
	// effect to a caller-supplied point set and returns the result. The
	// input slice is not mutated.
	ApplyAffine(lms []geometry.Point, opts AffineOptions) []geometry.Point

	// ClearAffine resets the affine record to identity and the applied
	// state to false without touching any image or point buffers.
	ClearAffine()
}

// AffineOptions selects which recorded affine components ApplyAffine honors.
type AffineOptions struct {
	Scale     bool
	Translate bool
	Rotate    bool
}

// DefaultAffineOptions replays scale and translate but not rotation,
// matching the components the records actually compose.
func DefaultAffineOptions() AffineOptions {
	return AffineOptions{Scale: true, Translate: true}
}

// Record is the per-transform affine bookkeeping shared by every transform
// implementation. It holds the net rotation, scale, and translation the last
// Apply call used, plus the applied flag.
//
// The record is reset to identity (rotation 0, scale 1, translate 0, not
// applied) at construction, whenever a transform's probability gate declines
// to fire, and on ClearAffine.
//
// Rotation is recorded for inspection but ApplyAffine does not compose it:
// only scale and translate are replayable. This is a known limitation kept
// deliberately, not a hidden gap — composing rotation here would change the
// replay semantics downstream callers rely on.
type Record struct {
	Rotate  float64
	ScaleX  float64
	ScaleY  float64
	TransX  float64
	TransY  float64
	applied bool
}

// newRecord returns an identity record.
func newRecord() Record {
	return Record{ScaleX: 1, ScaleY: 1}
}

// Applied reports whether the owning transform fired on its last Apply.
func (r *Record) Applied() bool { return r.applied }

// ClearAffine resets the record to identity and marks the transform as not
// applied.
func (r *Record) ClearAffine() {
	*r = newRecord()
}

// ApplyAffine applies the recorded linear components to a copy of the given
// point set: the recorded translation is subtracted first, then the recorded
// scale is multiplied in. The Rotate option is accepted but composes nothing.
func (r *Record) ApplyAffine(lms []geometry.Point, opts AffineOptions) []geometry.Point {
	out := slices.Clone(lms)
	for i := range out {
		if opts.Translate {
			out[i].X -= r.TransX
			out[i].Y -= r.TransY
		}
		if opts.Scale {
			out[i].X *= r.ScaleX
			out[i].Y *= r.ScaleY
		}
	}
	// opts.Rotate: rotation replay is intentionally not implemented.
	return out
}

// clonePoints returns an independent copy of a landmark slice.
func clonePoints(lms []geometry.Point) []geometry.Point {
	return slices.Clone(lms)
}
