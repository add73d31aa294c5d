package fract

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want Strategy
	}{
		{"sequential", Sequential},
		{"rows", Rows},
		{"LOCKED", Locked},
		{" tiles ", Tiles},
		{"flat", Flat},
	}

	for _, tt := range tests {
		got, err := ParseStrategy(tt.in)
		if err != nil {
			t.Errorf("ParseStrategy(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStrategy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseStrategy("rayon"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseStrategy(rayon) error = %v, want ErrInvalidArgument", err)
	}
}

func TestStrategy_StringRoundTrip(t *testing.T) {
	for _, s := range Strategies {
		got, err := ParseStrategy(s.String())
		if err != nil || got != s {
			t.Errorf("ParseStrategy(%q) = %v, %v; want %v", s.String(), got, err, s)
		}
	}
	if got := Strategy(99).String(); got != "Strategy(99)" {
		t.Errorf("Strategy(99).String() = %q", got)
	}
}

func TestParseGenerator(t *testing.T) {
	for _, g := range Generators {
		got, err := ParseGenerator(g.String())
		if err != nil || got != g {
			t.Errorf("ParseGenerator(%q) = %v, %v; want %v", g.String(), got, err, g)
		}
	}
	if _, err := ParseGenerator("julia"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseGenerator(julia) error = %v, want ErrInvalidArgument", err)
	}
}

func TestGenerator_Generate(t *testing.T) {
	want, err := GenerateMandelbrot(16)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Mandelbrot.Generate(16)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got.Data(), want.Data()) {
		t.Error("Mandelbrot.Generate differs from GenerateMandelbrot")
	}

	noise, err := Noise.Generate(8, WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}
	direct, err := GenerateNoise(8, WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(noise.Data(), direct.Data()) {
		t.Error("Noise.Generate differs from GenerateNoise")
	}

	if _, err := Generator(5).Generate(8); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Generator(5).Generate error = %v, want ErrInvalidArgument", err)
	}
	if _, err := Noise.Generate(0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Noise.Generate(0) error = %v, want ErrInvalidArgument", err)
	}
}
