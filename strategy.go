package fract

import (
	"strconv"
	"strings"
)

// Strategy selects how a generator spreads pixels over goroutines.
// All strategies honor the same output contract; they differ only in speed.
type Strategy int

const (
	// Sequential fills the buffer in one loop on the calling goroutine.
	Sequential Strategy = iota

	// Rows gives each worker one contiguous band of rows.
	Rows

	// Locked gives worker t the rows t, t+n, t+2n, ... and guards every
	// pixel write with a single shared mutex.
	Locked

	// Tiles splits the image into 64x64 tiles executed on a
	// work-stealing pool.
	Tiles

	// Flat splits the flat row-major pixel index into fixed-size chunks
	// executed on a work-stealing pool.
	Flat
)

// Strategies lists every strategy in declaration order.
var Strategies = []Strategy{Sequential, Rows, Locked, Tiles, Flat}

var strategyNames = [...]string{
	Sequential: "sequential",
	Rows:       "rows",
	Locked:     "locked",
	Tiles:      "tiles",
	Flat:       "flat",
}

// String returns the strategy's name.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return "Strategy(" + strconv.Itoa(int(s)) + ")"
	}
	return strategyNames[s]
}

func (s Strategy) valid() bool {
	return s >= 0 && int(s) < len(strategyNames)
}

// ParseStrategy returns the strategy with the given name (case-insensitive).
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range strategyNames {
		if n == name {
			return Strategy(s), nil
		}
	}
	return 0, invalidf("unknown strategy %q", name)
}
