// Package fract generates escape-time fractal and random-noise images.
//
// # Overview
//
// fract is a small pixel-generation engine with two independent, pure
// generators that fill a dense RGB buffer of shape (size, size, 3):
//
//   - [GenerateMandelbrot] renders the Mandelbrot set with a linear color ramp.
//   - [GenerateNoise] fills every channel with an independent uniform byte
//     and serves as a throughput baseline.
//
// # Quick Start
//
//	import "github.com/fractkit/fract"
//
//	buf, err := fract.GenerateMandelbrot(1024)
//	if err != nil {
//		return err
//	}
//	// buf implements image.Image
//	_ = png.Encode(w, buf)
//
// # Strategies
//
// Both generators accept the same [Strategy] values. Every strategy returns
// the same shape and, for the Mandelbrot set, byte-identical output:
//
//   - [Sequential]: one loop on the calling goroutine (the baseline).
//   - [Rows]: contiguous row bands, one goroutine per band.
//   - [Locked]: interleaved rows with a mutex around each pixel write.
//     Kept for comparison; it is slower, not more correct.
//   - [Tiles]: 64x64 tiles on a work-stealing worker pool.
//   - [Flat]: fixed-size chunks of the flat row-major pixel index.
//
// # Coordinate Mapping
//
// Pixel (i, j) is row i, column j. The row index maps to the real axis and
// the column index to the imaginary axis:
//
//	x = XMin + (XMax-XMin)*i/size
//	y = YMin + (YMax-YMin)*j/size
//
// # Errors
//
// The only error kind is [ErrInvalidArgument], returned for a non-positive
// size or an invalid option. Use errors.Is to test for it.
//
// # Ownership
//
// Every call allocates a fresh [Buffer] and keeps no reference to it. No
// state is shared between calls.
package fract

// Version is the current version of the library. Commands print it with
// -version and the server sends it in its Server header.
const Version = "0.2.0"
