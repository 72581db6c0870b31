// Package transforms implements the landmark-synchronized transform set.
//
// Every transform couples an image mutation with the matching landmark
// mutation: any spatial change applied to the image is mirrored exactly in
// the landmark coordinates. Transforms satisfy the Transform interface and
// are composed by the pipeline package.
//
// # Contract
//
// Apply never mutates its inputs. Geometric transforms clone the image on
// entry (imaging.Clone) and return a new landmark slice; photometric
// transforms return the landmarks unchanged in count, order, and value.
// Every geometric transform guarantees that the output landmark count equals
// the input count, and returns an error wrapping ErrLandmarkCount when the
// geometry collapses instead of silently dropping points.
//
// # Randomness
//
// Randomized transforms fire with a configured probability. A transform that
// declines to fire clears its affine record, reports Applied() == false, and
// returns its inputs unchanged. Randomness defaults to the process-wide
// math/rand/v2 generator; pass WithRand to make a transform deterministic.
//
// # Affine records
//
// Each transform records the net scale and translate it applied, so the same
// linear effect can be replayed onto an unrelated coordinate set (for
// example, a face bounding box) via ApplyAffine. Rotation angles are recorded
// but not composed by ApplyAffine; see Record.
package transforms
