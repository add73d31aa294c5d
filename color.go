package fract

import "image/color"

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// Color converts RGB to the standard color.Color interface.
func (c RGB) Color() color.Color {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Black is the color of points inside the set.
var Black = RGB{}

// Ramp is a linear gradient from Start to End scaled by Brightness.
type Ramp struct {
	Start      RGB
	End        RGB
	Brightness float64
}

// Color ramps.
var (
	// DefaultRamp runs from dark teal to cyan at double brightness.
	DefaultRamp = Ramp{
		Start:      RGB{R: 0, G: 64, B: 64},
		End:        RGB{R: 0, G: 255, B: 255},
		Brightness: 2.0,
	}

	// MagentaRamp runs from dark purple to magenta at double brightness.
	MagentaRamp = Ramp{
		Start:      RGB{R: 64, G: 0, B: 64},
		End:        RGB{R: 255, G: 0, B: 255},
		Brightness: 2.0,
	}
)

// Gradient returns End - Start per channel. Components may be negative.
func (r Ramp) Gradient() [Channels]float64 {
	return [Channels]float64{
		float64(r.End.R) - float64(r.Start.R),
		float64(r.End.G) - float64(r.Start.G),
		float64(r.End.B) - float64(r.Start.B),
	}
}

// Value returns the unclamped channel values for an escape count:
//
//	(count/maxIter*gradient[k] + start[k]) * brightness
func (r Ramp) Value(count, maxIter int) [Channels]float64 {
	g := r.Gradient()
	start := [Channels]float64{float64(r.Start.R), float64(r.Start.G), float64(r.Start.B)}
	t := float64(count) / float64(maxIter)

	var v [Channels]float64
	for k := range v {
		v[k] = (t*g[k] + start[k]) * r.Brightness
	}
	return v
}

// Shade returns the color for an escape count. Values outside [0, 255] are
// saturated before truncation.
func (r Ramp) Shade(count, maxIter int) RGB {
	v := r.Value(count, maxIter)
	return RGB{
		R: uint8(clamp255(v[0])),
		G: uint8(clamp255(v[1])),
		B: uint8(clamp255(v[2])),
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
