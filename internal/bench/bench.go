// Package bench times the engine's generators.
//
// It only calls the public generator functions and measures wall-clock
// duration around each call; it owns no generation logic.
package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fractkit/fract"
)

// Case is one generator/strategy combination to time.
type Case struct {
	Generator fract.Generator
	Strategy  fract.Strategy
}

// String returns "generator/strategy".
func (c Case) String() string {
	return c.Generator.String() + "/" + c.Strategy.String()
}

// Cases returns the cross product of generators and strategies.
func Cases(gens []fract.Generator, strategies []fract.Strategy) []Case {
	cases := make([]Case, 0, len(gens)*len(strategies))
	for _, g := range gens {
		for _, s := range strategies {
			cases = append(cases, Case{Generator: g, Strategy: s})
		}
	}
	return cases
}

// Result holds the timings of one case.
type Result struct {
	Case    Case
	Size    int
	Workers int
	Runs    []time.Duration
}

// Min returns the fastest run.
func (r Result) Min() time.Duration {
	if len(r.Runs) == 0 {
		return 0
	}
	m := r.Runs[0]
	for _, d := range r.Runs[1:] {
		m = min(m, d)
	}
	return m
}

// Mean returns the average run.
func (r Result) Mean() time.Duration {
	if len(r.Runs) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range r.Runs {
		total += d
	}
	return total / time.Duration(len(r.Runs))
}

// Throughput returns megapixels per second of the fastest run.
func (r Result) Throughput() float64 {
	best := r.Min()
	if best <= 0 {
		return 0
	}
	return float64(r.Size*r.Size) / best.Seconds() / 1e6
}

// Options configures Run.
type Options struct {
	Size    int
	Runs    int
	Workers int

	// Last, when set, receives the buffer of the final run of each case.
	Last func(Case, *fract.Buffer)

	// now is replaced in tests.
	now func() time.Time
}

// Run times every case opts.Runs times. It stops at the first generator
// error.
func Run(cases []Case, opts Options) ([]Result, error) {
	if opts.Runs <= 0 {
		opts.Runs = 1
	}
	now := opts.now
	if now == nil {
		now = time.Now
	}
	log := fract.Logger()

	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		res := Result{Case: c, Size: opts.Size, Workers: opts.Workers}

		var buf *fract.Buffer
		for range opts.Runs {
			start := now()
			b, err := c.Generator.Generate(opts.Size,
				fract.WithStrategy(c.Strategy),
				fract.WithWorkers(opts.Workers))
			elapsed := now().Sub(start)
			if err != nil {
				return results, fmt.Errorf("bench: %s: %w", c, err)
			}
			res.Runs = append(res.Runs, elapsed)
			buf = b
		}

		log.Info("bench: case done", "case", c.String(), "size", opts.Size, "min", res.Min())
		if opts.Last != nil {
			opts.Last(c, buf)
		}
		results = append(results, res)
	}
	return results, nil
}

// Report writes a table of results to w. Numbers are grouped for the given
// language tag.
func Report(w io.Writer, results []Result, tag language.Tag) error {
	p := message.NewPrinter(tag)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "CASE\tPIXELS\tRUNS\tMIN\tMEAN\tMPX/S")
	for _, r := range results {
		p.Fprintf(tw, "%s\t%d\t%d\t%v\t%v\t%.2f\n",
			r.Case, r.Size*r.Size, len(r.Runs),
			r.Min().Round(time.Microsecond), r.Mean().Round(time.Microsecond),
			r.Throughput())
	}
	return tw.Flush()
}
