package fract

import (
	"math/cmplx"
	"math/rand/v2"
)

// GenerateMandelbrot renders the Mandelbrot set into a size x size buffer.
//
// Pixel (i, j) is mapped to c = x + yi with
//
//	x = XMin + (XMax-XMin)*i/size
//	y = YMin + (YMax-YMin)*j/size
//
// and z <- z*z + c is iterated from z = 0 while the count is below MaxIter
// and |z| <= Bailout. Points that exhaust MaxIter are black; the others get
// Ramp.Shade(count, MaxIter).
//
// The result depends only on size and the configuration: every strategy
// returns byte-identical output.
//
// Returns an error wrapping ErrInvalidArgument if size <= 0 or an option is
// invalid.
func GenerateMandelbrot(size int, opts ...Option) (*Buffer, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err := o.config.Validate(); err != nil {
		return nil, err
	}

	cfg := o.config
	k := func(p int, _ *rand.Rand) RGB {
		return cfg.shade(p/size, p%size, size)
	}

	return render("mandelbrot", size, o, false, k), nil
}

// Escape returns the number of iterations of z <- z*z + c, starting at
// z = 0, performed before |z| exceeds bailout, capped at maxIter.
// A result of maxIter means c is treated as inside the set.
func Escape(c complex128, maxIter int, bailout float64) int {
	var z complex128
	count := 0
	for count < maxIter && cmplx.Abs(z) <= bailout {
		z = z*z + c
		count++
	}
	return count
}

// shade returns the color of pixel (row, col) of a size x size image.
func (c Config) shade(row, col, size int) RGB {
	n := Escape(c.Window.Point(row, col, size), c.MaxIter, c.Bailout)
	if n == c.MaxIter {
		return Black
	}
	return c.Ramp.Shade(n, c.MaxIter)
}
