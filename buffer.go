package fract

import (
	"image"
	"image/color"
)

// Channels is the number of 8-bit channels per pixel (R, G, B).
const Channels = 3

// Buffer is a dense row-major image of shape (height, width, 3).
//
// The pixel at row r, column c occupies Data()[(r*width+c)*3 : +3].
// Buffer implements image.Image with x as the column and y as the row, so
// it can be passed to any standard encoder.
type Buffer struct {
	width  int
	height int
	data   []uint8
}

// NewBuffer allocates a zeroed buffer. Non-positive dimensions yield an
// empty buffer.
func NewBuffer(width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	return &Buffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*Channels),
	}
}

// Width returns the number of columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Buffer) Height() int {
	return b.height
}

// Shape returns (height, width, channels).
func (b *Buffer) Shape() (rows, cols, channels int) {
	return b.height, b.width, Channels
}

// Data returns the backing slice. It is not a copy.
func (b *Buffer) Data() []uint8 {
	return b.data
}

// Offset returns the index in Data of the first channel of pixel (row, col),
// or -1 when the pixel is out of bounds.
func (b *Buffer) Offset(row, col int) int {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return -1
	}
	return (row*b.width + col) * Channels
}

// Pixel returns the color at (row, col). Out-of-bounds pixels read as black.
func (b *Buffer) Pixel(row, col int) RGB {
	i := b.Offset(row, col)
	if i < 0 {
		return RGB{}
	}
	return RGB{R: b.data[i], G: b.data[i+1], B: b.data[i+2]}
}

// SetPixel sets the color at (row, col). Out-of-bounds writes are ignored.
func (b *Buffer) SetPixel(row, col int, c RGB) {
	i := b.Offset(row, col)
	if i < 0 {
		return
	}
	b.data[i+0] = c.R
	b.data[i+1] = c.G
	b.data[i+2] = c.B
}

// Channel returns channel ch (0 = R, 1 = G, 2 = B) of pixel (row, col).
func (b *Buffer) Channel(row, col, ch int) uint8 {
	i := b.Offset(row, col)
	if i < 0 || ch < 0 || ch >= Channels {
		return 0
	}
	return b.data[i+ch]
}

// Row returns the bytes of one row, aliasing the buffer.
func (b *Buffer) Row(row int) []uint8 {
	if row < 0 || row >= b.height {
		return nil
	}
	stride := b.width * Channels
	return b.data[row*stride : (row+1)*stride]
}

// ToRGBA converts the buffer to an opaque image.RGBA.
func (b *Buffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for p, q := 0, 0; p < len(b.data); p, q = p+Channels, q+4 {
		img.Pix[q+0] = b.data[p+0]
		img.Pix[q+1] = b.data[p+1]
		img.Pix[q+2] = b.data[p+2]
		img.Pix[q+3] = 0xff
	}
	return img
}

// At implements the image.Image interface.
func (b *Buffer) At(x, y int) color.Color {
	return b.Pixel(y, x).Color()
}

// Bounds implements the image.Image interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return color.RGBAModel
}
