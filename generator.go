package fract

import (
	"strconv"
	"strings"
)

// Generator names one of the engine's image generators.
type Generator int

const (
	// Mandelbrot selects GenerateMandelbrot.
	Mandelbrot Generator = iota

	// Noise selects GenerateNoise.
	Noise
)

// Generators lists every generator in declaration order.
var Generators = []Generator{Mandelbrot, Noise}

var generatorNames = [...]string{
	Mandelbrot: "mandelbrot",
	Noise:      "noise",
}

// String returns the generator's name.
func (g Generator) String() string {
	if g < 0 || int(g) >= len(generatorNames) {
		return "Generator(" + strconv.Itoa(int(g)) + ")"
	}
	return generatorNames[g]
}

// ParseGenerator returns the generator with the given name (case-insensitive).
func ParseGenerator(name string) (Generator, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for g, n := range generatorNames {
		if n == name {
			return Generator(g), nil
		}
	}
	return 0, invalidf("unknown generator %q", name)
}

// Generate runs the generator.
func (g Generator) Generate(size int, opts ...Option) (*Buffer, error) {
	switch g {
	case Mandelbrot:
		return GenerateMandelbrot(size, opts...)
	case Noise:
		return GenerateNoise(size, opts...)
	default:
		return nil, invalidf("unknown generator %v", g)
	}
}
