package fract

import (
	"image/color"
	"math"
	"testing"
)

// Verify at compile time that RGB converts to color.Color.
var _ color.Color = RGB{}.Color()

func TestRamp_Gradient(t *testing.T) {
	if got, want := DefaultRamp.Gradient(), [Channels]float64{0, 191, 191}; got != want {
		t.Errorf("DefaultRamp.Gradient() = %v, want %v", got, want)
	}

	r := Ramp{Start: RGB{R: 200}, End: RGB{R: 50}, Brightness: 1}
	if got := r.Gradient()[0]; got != -150 {
		t.Errorf("descending Gradient()[0] = %v, want -150", got)
	}
}

func TestRamp_Value(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  [Channels]float64
	}{
		{"zero count", 0, [Channels]float64{0, 128, 128}},
		{"one", 1, [Channels]float64{0, (1.0/255*191 + 64) * 2, (1.0/255*191 + 64) * 2}},
		{"full", 255, [Channels]float64{0, 510, 510}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultRamp.Value(tt.count, 255)
			for k := range got {
				if math.Abs(got[k]-tt.want[k]) > 1e-9 {
					t.Errorf("Value(%d)[%d] = %v, want %v", tt.count, k, got[k], tt.want[k])
				}
			}
		})
	}
}

func TestRamp_ValueMonotonic(t *testing.T) {
	for _, ramp := range []Ramp{DefaultRamp, MagentaRamp} {
		prev := ramp.Value(0, DefaultMaxIter)
		for count := 1; count < DefaultMaxIter; count++ {
			cur := ramp.Value(count, DefaultMaxIter)
			for k := range cur {
				if cur[k] < prev[k] {
					t.Fatalf("Value(%d)[%d] = %v < Value(%d)[%d] = %v", count, k, cur[k], count-1, k, prev[k])
				}
			}
			prev = cur
		}
	}
}

func TestRamp_ShadeSaturates(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  RGB
	}{
		{"zero count", 0, RGB{R: 0, G: 128, B: 128}},
		{"one", 1, RGB{R: 0, G: 129, B: 129}},
		{"mid saturates", 200, RGB{R: 0, G: 255, B: 255}},
		{"near cap saturates", 254, RGB{R: 0, G: 255, B: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultRamp.Shade(tt.count, DefaultMaxIter); got != tt.want {
				t.Errorf("Shade(%d) = %v, want %v", tt.count, got, tt.want)
			}
		})
	}
}

func TestRamp_ShadeClampsNegative(t *testing.T) {
	r := Ramp{Start: RGB{R: 10}, End: RGB{R: 0}, Brightness: 1}
	// A count past the cap drives the descending channel below zero.
	if got := r.Shade(600, 255); got.R != 0 {
		t.Errorf("Shade().R = %d, want 0", got.R)
	}
}

func TestShadeNonDecreasingAcrossCounts(t *testing.T) {
	prev := DefaultRamp.Shade(0, DefaultMaxIter)
	for count := 1; count < DefaultMaxIter; count++ {
		cur := DefaultRamp.Shade(count, DefaultMaxIter)
		if cur.G < prev.G || cur.B < prev.B {
			t.Fatalf("Shade(%d) = %v decreased from %v", count, cur, prev)
		}
		prev = cur
	}
}

func TestClamp255(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-5, 0},
		{0, 0},
		{127.7, 127.7},
		{255, 255},
		{508, 255},
	}
	for _, tt := range tests {
		if got := clamp255(tt.in); got != tt.want {
			t.Errorf("clamp255(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
