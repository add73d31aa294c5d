// Package parallel partitions a pixel grid into disjoint regions and runs
// work over them concurrently.
//
// Pixels are addressed by their flat row-major index p = row*cols + col.
// Every partition function returns regions that together cover each pixel
// of the grid exactly once, so workers writing only inside their own region
// never need a lock.
package parallel

// Tile size used by the tiled strategy.
const (
	TileWidth  = 64
	TileHeight = 64
)

// Region is a set of pixels of a row-major grid.
type Region interface {
	// Each calls fn with the flat index of every pixel in the region,
	// in increasing order. cols is the grid width.
	Each(cols int, fn func(p int))

	// Len returns the number of pixels in the region for a grid of the
	// given width.
	Len(cols int) int
}

// Span is the half-open flat index range [Start, End).
type Span struct {
	Start, End int
}

// Each implements Region.
func (s Span) Each(_ int, fn func(p int)) {
	for p := s.Start; p < s.End; p++ {
		fn(p)
	}
}

// Len implements Region.
func (s Span) Len(int) int {
	return max(s.End-s.Start, 0)
}

// Rect is the block of rows [Row0, Row1) and columns [Col0, Col1).
type Rect struct {
	Row0, Row1 int
	Col0, Col1 int
}

// Each implements Region.
func (r Rect) Each(cols int, fn func(p int)) {
	for row := r.Row0; row < r.Row1; row++ {
		base := row * cols
		for col := r.Col0; col < r.Col1; col++ {
			fn(base + col)
		}
	}
}

// Len implements Region.
func (r Rect) Len(int) int {
	return max(r.Row1-r.Row0, 0) * max(r.Col1-r.Col0, 0)
}

// Strided is every full row Offset, Offset+Step, ... below Rows.
type Strided struct {
	Offset, Step, Rows int
}

// Each implements Region.
func (s Strided) Each(cols int, fn func(p int)) {
	if s.Step <= 0 {
		return
	}
	for row := s.Offset; row < s.Rows; row += s.Step {
		base := row * cols
		for col := range cols {
			fn(base + col)
		}
	}
}

// Len implements Region.
func (s Strided) Len(cols int) int {
	if s.Step <= 0 || s.Offset >= s.Rows {
		return 0
	}
	return ((s.Rows-s.Offset+s.Step-1)/s.Step) * cols
}

// RowBands splits a rows x cols grid into at most parts contiguous bands of
// whole rows. Band heights differ by at most one; the first rows%parts bands
// take the extra row. Parts larger than rows yield one band per row.
func RowBands(rows, cols, parts int) []Span {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	parts = min(max(parts, 1), rows)

	bands := make([]Span, 0, parts)
	base, extra := rows/parts, rows%parts
	row := 0
	for i := range parts {
		h := base
		if i < extra {
			h++
		}
		bands = append(bands, Span{Start: row * cols, End: (row + h) * cols})
		row += h
	}
	return bands
}

// Chunks splits [0, total) into consecutive spans of chunk indices; the last
// span holds the remainder.
func Chunks(total, chunk int) []Span {
	if total <= 0 {
		return nil
	}
	if chunk <= 0 {
		chunk = total
	}

	spans := make([]Span, 0, (total+chunk-1)/chunk)
	for start := 0; start < total; start += chunk {
		spans = append(spans, Span{Start: start, End: min(start+chunk, total)})
	}
	return spans
}

// Tiles splits a rows x cols grid into tileH x tileW blocks in row-major
// tile order. Tiles on the bottom and right edges are smaller when the grid
// is not evenly divisible.
func Tiles(rows, cols, tileW, tileH int) []Rect {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	if tileW <= 0 {
		tileW = TileWidth
	}
	if tileH <= 0 {
		tileH = TileHeight
	}

	tilesX := (cols + tileW - 1) / tileW
	tilesY := (rows + tileH - 1) / tileH

	rects := make([]Rect, 0, tilesX*tilesY)
	for ty := range tilesY {
		for tx := range tilesX {
			rects = append(rects, Rect{
				Row0: ty * tileH,
				Row1: min((ty+1)*tileH, rows),
				Col0: tx * tileW,
				Col1: min((tx+1)*tileW, cols),
			})
		}
	}
	return rects
}

// Interleave assigns row r to part r%parts. Parts larger than rows are
// reduced so that no part is empty.
func Interleave(rows, parts int) []Strided {
	if rows <= 0 {
		return nil
	}
	parts = min(max(parts, 1), rows)

	out := make([]Strided, parts)
	for i := range parts {
		out[i] = Strided{Offset: i, Step: parts, Rows: rows}
	}
	return out
}
