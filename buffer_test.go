package fract

import (
	"image"
	"image/color"
	"testing"
)

// Verify at compile time that Buffer implements image.Image.
var _ image.Image = (*Buffer)(nil)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer(5, 3)

	if b.Width() != 5 || b.Height() != 3 {
		t.Errorf("size = %dx%d, want 5x3", b.Width(), b.Height())
	}
	if len(b.Data()) != 5*3*Channels {
		t.Errorf("len(Data()) = %d, want %d", len(b.Data()), 5*3*Channels)
	}
	for i, v := range b.Data() {
		if v != 0 {
			t.Fatalf("Data()[%d] = %d, want 0", i, v)
		}
	}
}

func TestNewBuffer_NegativeDimensions(t *testing.T) {
	b := NewBuffer(-1, 4)
	if b.Width() != 0 || len(b.Data()) != 0 {
		t.Errorf("NewBuffer(-1, 4) = %dx%d with %d bytes, want empty", b.Width(), b.Height(), len(b.Data()))
	}
}

func TestBuffer_RowMajorLayout(t *testing.T) {
	b := NewBuffer(4, 2)
	b.SetPixel(1, 2, RGB{R: 10, G: 20, B: 30})

	// Row 1, column 2 of a 4-wide buffer starts at (1*4+2)*3 = 18.
	if got := b.Offset(1, 2); got != 18 {
		t.Fatalf("Offset(1, 2) = %d, want 18", got)
	}
	d := b.Data()
	if d[18] != 10 || d[19] != 20 || d[20] != 30 {
		t.Errorf("Data()[18:21] = %v, want [10 20 30]", d[18:21])
	}
	if got := b.Channel(1, 2, 1); got != 20 {
		t.Errorf("Channel(1, 2, 1) = %d, want 20", got)
	}
}

func TestBuffer_OutOfBounds(t *testing.T) {
	b := NewBuffer(2, 2)

	tests := []struct {
		name     string
		row, col int
	}{
		{"negative row", -1, 0},
		{"negative col", 0, -1},
		{"row past end", 2, 0},
		{"col past end", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b.SetPixel(tt.row, tt.col, RGB{R: 1})
			if got := b.Offset(tt.row, tt.col); got != -1 {
				t.Errorf("Offset() = %d, want -1", got)
			}
			if got := b.Pixel(tt.row, tt.col); got != Black {
				t.Errorf("Pixel() = %v, want black", got)
			}
		})
	}
	if got := b.Channel(0, 0, 3); got != 0 {
		t.Errorf("Channel(0, 0, 3) = %d, want 0", got)
	}

	for i, v := range b.Data() {
		if v != 0 {
			t.Fatalf("out-of-bounds write changed Data()[%d]", i)
		}
	}
}

func TestBuffer_Row(t *testing.T) {
	b := NewBuffer(3, 2)
	b.SetPixel(1, 0, RGB{R: 7, G: 8, B: 9})

	row := b.Row(1)
	if len(row) != 9 {
		t.Fatalf("len(Row(1)) = %d, want 9", len(row))
	}
	if row[0] != 7 || row[1] != 8 || row[2] != 9 {
		t.Errorf("Row(1)[:3] = %v, want [7 8 9]", row[:3])
	}
	if b.Row(2) != nil || b.Row(-1) != nil {
		t.Error("Row() out of range should be nil")
	}
}

func TestBuffer_ImageInterface(t *testing.T) {
	b := NewBuffer(3, 2)
	b.SetPixel(1, 2, RGB{R: 200, G: 100, B: 50})

	if got, want := b.Bounds(), image.Rect(0, 0, 3, 2); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}

	// x is the column, y is the row.
	got := color.RGBAModel.Convert(b.At(2, 1)).(color.RGBA)
	want := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	if got != want {
		t.Errorf("At(2, 1) = %v, want %v", got, want)
	}
}

func TestBuffer_ToRGBA(t *testing.T) {
	b := NewBuffer(2, 2)
	b.SetPixel(0, 1, RGB{R: 1, G: 2, B: 3})

	img := b.ToRGBA()
	if got := img.RGBAAt(1, 0); got != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("RGBAAt(1, 0) = %v, want {1 2 3 255}", got)
	}
	if got := img.RGBAAt(0, 0); got.A != 255 {
		t.Errorf("alpha = %d, want 255", got.A)
	}
}
