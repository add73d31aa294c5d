// Package preview renders images as colored text for terminal display.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// upperHalf draws the top pixel in the foreground color and the bottom pixel
// in the background color of one terminal cell.
const upperHalf = "▀"

// Downscale resamples img to w x h with bilinear filtering.
// Non-positive dimensions return an empty image.
func Downscale(img image.Image, w, h int) *image.RGBA {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Fit returns the largest (cols, rows) cell grid that keeps img's aspect
// ratio inside maxCols x maxRows cells, where each cell shows two pixels
// stacked vertically.
func Fit(img image.Image, maxCols, maxRows int) (cols, rows int) {
	b := img.Bounds()
	if b.Empty() || maxCols <= 0 || maxRows <= 0 {
		return 0, 0
	}

	cols = maxCols
	pixRows := cols * b.Dy() / b.Dx()
	if pixRows > maxRows*2 {
		pixRows = maxRows * 2
		cols = max(pixRows*b.Dx()/b.Dy(), 1)
	}
	rows = max((pixRows+1)/2, 1)
	return cols, rows
}

// HalfBlocks renders img in cols x rows terminal cells. Each line holds two
// image rows using the upper-half block.
func HalfBlocks(img image.Image, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	small := Downscale(img, cols, rows*2)

	var sb strings.Builder
	for r := range rows {
		for c := range cols {
			top := small.RGBAAt(c, 2*r)
			bottom := small.RGBAAt(c, 2*r+1)
			cell := lipgloss.NewStyle().
				Foreground(hex(top)).
				Background(hex(bottom)).
				Render(upperHalf)
			sb.WriteString(cell)
		}
		if r < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
