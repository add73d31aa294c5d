package fract

import "math/rand/v2"

// GenerateNoise fills a size x size buffer with independent bytes drawn
// uniformly from [0, 255].
//
// Output is non-deterministic unless WithSeed is given. Window, ramp and
// iteration options are accepted and ignored, invalid values included.
//
// Returns an error wrapping ErrInvalidArgument if size <= 0 or an option is
// invalid.
func GenerateNoise(size int, opts ...Option) (*Buffer, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	draw := o.draw
	k := func(_ int, rng *rand.Rand) RGB {
		return RGB{R: draw(rng), G: draw(rng), B: draw(rng)}
	}

	return render("noise", size, o, true, k), nil
}

func uniformByte(rng *rand.Rand) uint8 {
	return uint8(rng.UintN(256))
}
