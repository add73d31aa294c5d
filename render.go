package fract

import (
	"math/rand/v2"
	"runtime"
	"sync"

	"github.com/fractkit/fract/internal/parallel"
)

// flatChunk is the number of pixels per job of the Flat strategy.
const flatChunk = 4096

// kernel computes the color of flat pixel index p. rng is the stream of the
// partition p belongs to, nil for deterministic kernels.
type kernel func(p int, rng *rand.Rand) RGB

// render allocates a size x size buffer and fills every pixel with k,
// spreading the work according to o.strategy. It returns only after every
// worker has finished.
func render(generator string, size int, o options, random bool, k kernel) *Buffer {
	buf := NewBuffer(size, size)

	workers := o.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	regions := partition(o.strategy, size, workers)

	Logger().Debug("fract: generate",
		"generator", generator,
		"size", size,
		"strategy", o.strategy.String(),
		"workers", workers,
		"partitions", len(regions))

	f := filler{buf: buf, size: size, opts: o, random: random, kernel: k}

	switch o.strategy {
	case Sequential:
		f.fill(0, regions[0], nil)

	case Rows, Locked:
		var mu *sync.Mutex
		if o.strategy == Locked {
			mu = new(sync.Mutex)
		}
		var wg sync.WaitGroup
		wg.Add(len(regions))
		for i, r := range regions {
			go func() {
				defer wg.Done()
				f.fill(i, r, mu)
			}()
		}
		wg.Wait()

	case Tiles, Flat:
		pool := parallel.NewPool(poolSize(workers, len(regions)))
		pool.Run(len(regions), func(i int) {
			f.fill(i, regions[i], nil)
		})
		pool.Close()
	}

	return buf
}

// poolSize returns the number of pool goroutines for jobs regions. Workers
// beyond the job count would only sit idle.
func poolSize(workers, jobs int) int {
	return max(min(workers, jobs), 1)
}

// partition splits a size x size grid into disjoint regions for s.
func partition(s Strategy, size, workers int) []parallel.Region {
	var regions []parallel.Region
	switch s {
	case Rows:
		for _, b := range parallel.RowBands(size, size, workers) {
			regions = append(regions, b)
		}
	case Locked:
		for _, r := range parallel.Interleave(size, workers) {
			regions = append(regions, r)
		}
	case Tiles:
		for _, t := range parallel.Tiles(size, size, parallel.TileWidth, parallel.TileHeight) {
			regions = append(regions, t)
		}
	case Flat:
		for _, c := range parallel.Chunks(size*size, flatChunk) {
			regions = append(regions, c)
		}
	default:
		regions = append(regions, parallel.Span{Start: 0, End: size * size})
	}
	return regions
}

// filler writes kernel output into disjoint regions of one buffer.
type filler struct {
	buf    *Buffer
	size   int
	opts   options
	random bool
	kernel kernel
}

// fill computes every pixel of region r. When mu is non-nil each pixel
// write is made while holding it.
func (f filler) fill(index int, r parallel.Region, mu *sync.Mutex) {
	rng := f.stream(index)
	data := f.buf.data

	r.Each(f.size, func(p int) {
		c := f.kernel(p, rng)
		i := p * Channels
		if mu != nil {
			mu.Lock()
		}
		data[i+0] = c.R
		data[i+1] = c.G
		data[i+2] = c.B
		if mu != nil {
			mu.Unlock()
		}
	})
}

// stream returns the random stream of partition index, or nil for
// deterministic kernels. Seeded calls derive it from (seed, index);
// unseeded calls draw fresh state.
func (f filler) stream(index int) *rand.Rand {
	if !f.random {
		return nil
	}
	if f.opts.seeded {
		return rand.New(rand.NewPCG(f.opts.seed, uint64(index)))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
