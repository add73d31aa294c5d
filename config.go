package fract

import "math"

// Window is the rectangle of the complex plane mapped onto the image.
type Window struct {
	XMin, XMax float64
	YMin, YMax float64
}

// DefaultWindow frames the whole Mandelbrot set.
var DefaultWindow = Window{XMin: -2.0, XMax: 1.0, YMin: -1.5, YMax: 1.5}

// Evaluator defaults.
const (
	// DefaultMaxIter is both the iteration cap and the gradient
	// denominator. Changing one without the other changes the image.
	DefaultMaxIter = 255

	// DefaultBailout is the escape radius.
	DefaultBailout = 2.0
)

// Config is the immutable parameter set of the fractal evaluator.
type Config struct {
	Window  Window
	Ramp    Ramp
	MaxIter int
	Bailout float64
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Window:  DefaultWindow,
		Ramp:    DefaultRamp,
		MaxIter: DefaultMaxIter,
		Bailout: DefaultBailout,
	}
}

// Validate reports whether the config can drive the evaluator.
func (c Config) Validate() error {
	w := c.Window
	for _, v := range []float64{w.XMin, w.XMax, w.YMin, w.YMax, c.Bailout, c.Ramp.Brightness} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalidf("config has non-finite value %v", v)
		}
	}
	switch {
	case w.XMin >= w.XMax:
		return invalidf("window XMin %v must be below XMax %v", w.XMin, w.XMax)
	case w.YMin >= w.YMax:
		return invalidf("window YMin %v must be below YMax %v", w.YMin, w.YMax)
	case c.MaxIter < 1:
		return invalidf("max iterations must be positive, got %d", c.MaxIter)
	case c.Bailout <= 0:
		return invalidf("bailout radius must be positive, got %v", c.Bailout)
	case c.Ramp.Brightness < 0:
		return invalidf("brightness must not be negative, got %v", c.Ramp.Brightness)
	}
	return nil
}

// Point returns the complex-plane point for pixel (row, col) of a
// size x size image. Rows map to the real axis, columns to the imaginary.
func (w Window) Point(row, col, size int) complex128 {
	x := w.XMin + (w.XMax-w.XMin)*float64(row)/float64(size)
	y := w.YMin + (w.YMax-w.YMin)*float64(col)/float64(size)
	return complex(x, y)
}
