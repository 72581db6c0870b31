// Package pipeline composes landmark-synchronized transforms and replays
// their decisions onto secondary data streams.
//
// A Compose runs its transforms in order over an (image, landmarks) pair,
// recording per step whether the transform actually fired. Composition is
// best-effort: a failing step is logged and skipped, the pipeline continues
// with the state from before that step, and the step contributes a false
// flag. The recorded flag sequence then drives Replay (mirror the same
// enabled/disabled pattern onto a second image/landmark pair) and
// ReplayAffine (mirror only the recorded linear effects onto a raw
// coordinate set, such as an externally computed bounding box).
//
// A Compose and its transforms hold per-run mutable state (flags, affine
// records). Use one Compose per goroutine, or serialize each Apply with the
// Replay calls that depend on it.
package pipeline
