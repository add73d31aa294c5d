package fract

import "math/rand/v2"

// Option configures a generation call.
//
// Example:
//
//	// Default: sequential, default window and ramp
//	buf, err := fract.GenerateMandelbrot(512)
//
//	// Tiled on 8 workers with the magenta ramp
//	buf, err := fract.GenerateMandelbrot(512,
//		fract.WithStrategy(fract.Tiles),
//		fract.WithWorkers(8),
//		fract.WithRamp(fract.MagentaRamp))
type Option func(*options)

// DefaultWorkers is the worker count of the parallel strategies when
// WithWorkers is not given.
const DefaultWorkers = 4

// options holds the resolved settings of one call.
type options struct {
	config   Config
	strategy Strategy
	workers  int
	seed     uint64
	seeded   bool

	// draw produces one noise channel. Tests replace it to observe writes.
	draw func(rng *rand.Rand) uint8
}

func defaultOptions() options {
	return options{
		config:   DefaultConfig(),
		strategy: Sequential,
		workers:  DefaultWorkers,
		draw:     uniformByte,
	}
}

// resolve applies opts over the defaults and validates the strategy. The
// evaluator configuration is validated by the generators that use it.
func resolve(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if !o.strategy.valid() {
		return o, invalidf("unknown strategy %v", o.strategy)
	}
	return o, nil
}

// WithConfig replaces the whole evaluator configuration.
func WithConfig(c Config) Option {
	return func(o *options) {
		o.config = c
	}
}

// WithWindow sets the complex-plane window.
func WithWindow(w Window) Option {
	return func(o *options) {
		o.config.Window = w
	}
}

// WithRamp sets the color ramp.
func WithRamp(r Ramp) Option {
	return func(o *options) {
		o.config.Ramp = r
	}
}

// WithMaxIter sets the iteration cap, which is also the gradient
// denominator.
func WithMaxIter(n int) Option {
	return func(o *options) {
		o.config.MaxIter = n
	}
}

// WithStrategy selects the execution strategy.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithWorkers sets the number of goroutines used by the parallel
// strategies. Zero or negative means GOMAXPROCS. Sequential ignores it.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithSeed makes noise reproducible. Output is identical for the same
// size, strategy, worker count and seed; it differs across strategies
// because each partition draws from its own stream.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}
