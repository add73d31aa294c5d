package fract

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()

	if c.Window != (Window{XMin: -2.0, XMax: 1.0, YMin: -1.5, YMax: 1.5}) {
		t.Errorf("Window = %+v, want (-2, 1, -1.5, 1.5)", c.Window)
	}
	if c.Ramp != DefaultRamp {
		t.Errorf("Ramp = %+v, want DefaultRamp", c.Ramp)
	}
	if c.MaxIter != 255 {
		t.Errorf("MaxIter = %d, want 255", c.MaxIter)
	}
	if c.Bailout != 2.0 {
		t.Errorf("Bailout = %v, want 2", c.Bailout)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty window", func(c *Config) { c.Window.XMax = c.Window.XMin }},
		{"inverted y", func(c *Config) { c.Window.YMin, c.Window.YMax = 1, -1 }},
		{"nan bound", func(c *Config) { c.Window.XMin = math.NaN() }},
		{"infinite bound", func(c *Config) { c.Window.YMax = math.Inf(1) }},
		{"zero max iter", func(c *Config) { c.MaxIter = 0 }},
		{"negative bailout", func(c *Config) { c.Bailout = -2 }},
		{"negative brightness", func(c *Config) { c.Ramp.Brightness = -0.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Validate() = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestWindow_Point(t *testing.T) {
	tests := []struct {
		row, col, size int
		want           complex128
	}{
		{0, 0, 4, complex(-2, -1.5)},
		{2, 2, 4, complex(-0.5, 0)},
		{3, 1, 4, complex(0.25, -0.75)},
		{4, 3, 6, 0},
	}

	for _, tt := range tests {
		if got := DefaultWindow.Point(tt.row, tt.col, tt.size); got != tt.want {
			t.Errorf("Point(%d, %d, %d) = %v, want %v", tt.row, tt.col, tt.size, got, tt.want)
		}
	}
}
