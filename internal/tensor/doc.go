// Package tensor holds the buffer representations used at the
// type-adaptation boundary of the pipeline.
//
// The core works on standard image.Image values with interleaved 8-bit
// channels (H x W x C). Model-facing callers instead hand planar float32
// tensors (C x H x W) and flat landmark tensors across the boundary; this
// package converts between the two representations.
//
// FloatImage is the third citizen: an H x W x C float32 image implementing
// image.Image, which lets the normalize transforms remap pixel values
// losslessly while staying inside the image-domain pipeline.
package tensor
