// Package tilemesh merges a level's solid grid cells into axis-aligned
// rectangles for the collision space. It has no engine dependencies.
//
// Rows are walked top-to-bottom (y grows downward). A run of solid cells in a
// row is a plate; a plate with the same column range as a plate in the row
// above extends that plate's rectangle downward, otherwise it starts a new
// one. This is a greedy merge, not an optimal rectangulation.
package tilemesh

// Cell is the integer grid coordinate of a tile.
type Cell struct {
	X, Y int
}

// CellSet is a set of solid cells.
type CellSet map[Cell]struct{}

// NewCellSet builds a set from the given cells.
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

func (s CellSet) Add(c Cell) {
	s[c] = struct{}{}
}

func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Rect is an inclusive cell range. Top is the first row, Bottom the last.
type Rect struct {
	Left, Right int
	Top, Bottom int
}

// Width in cells.
func (r Rect) Width() int {
	return r.Right - r.Left + 1
}

// Height in cells.
func (r Rect) Height() int {
	return r.Bottom - r.Top + 1
}

func (r Rect) Contains(c Cell) bool {
	return c.X >= r.Left && c.X <= r.Right && c.Y >= r.Top && c.Y <= r.Bottom
}

// Cells lists every cell covered by r, row by row.
func (r Rect) Cells() []Cell {
	out := make([]Cell, 0, r.Width()*r.Height())
	for y := r.Top; y <= r.Bottom; y++ {
		for x := r.Left; x <= r.Right; x++ {
			out = append(out, Cell{X: x, Y: y})
		}
	}
	return out
}

// Overlaps reports whether r and o share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left <= o.Right && o.Left <= r.Right && r.Top <= o.Bottom && o.Top <= r.Bottom
}

// Collider is a rectangle in world units, described by its center and half
// extents.
type Collider struct {
	CenterX, CenterY float64
	HalfW, HalfH     float64
}

// X returns the left edge.
func (c Collider) X() float64 { return c.CenterX - c.HalfW }

// Y returns the top edge.
func (c Collider) Y() float64 { return c.CenterY - c.HalfH }

func (c Collider) W() float64 { return c.HalfW * 2 }

func (c Collider) H() float64 { return c.HalfH * 2 }

// Collider converts r to world space. originX/originY is the world position
// of cell (0, 0)'s top-left corner.
func (r Rect) Collider(cellSize, originX, originY float64) Collider {
	return Collider{
		CenterX: originX + float64(r.Left+r.Right+1)*cellSize/2,
		CenterY: originY + float64(r.Top+r.Bottom+1)*cellSize/2,
		HalfW:   float64(r.Width()) * cellSize / 2,
		HalfH:   float64(r.Height()) * cellSize / 2,
	}
}

type plate struct {
	left, right int
}

// Build merges cells into rectangles. Only cells inside width x height are
// considered. The result is deterministic for a given cell set: rectangles are
// emitted in the order their plates appear, row by row.
func Build(cells CellSet, width, height int) []Rect {
	if width <= 0 || height <= 0 || len(cells) == 0 {
		return nil
	}

	var rects []Rect
	open := make(map[plate]*Rect)
	var prev []plate

	for y := 0; y <= height; y++ {
		// Row `height` is an empty sentinel so every open rectangle is closed.
		var row []plate
		if y < height {
			row = scanRow(cells, y, width)
		}

		current := make(map[plate]struct{}, len(row))
		for _, p := range row {
			current[p] = struct{}{}
		}

		for _, p := range prev {
			if _, ok := current[p]; ok {
				continue
			}
			if r, ok := open[p]; ok {
				rects = append(rects, *r)
				delete(open, p)
			}
		}

		for _, p := range row {
			if r, ok := open[p]; ok {
				r.Bottom = y
				continue
			}
			open[p] = &Rect{Left: p.left, Right: p.right, Top: y, Bottom: y}
		}

		prev = row
	}

	return rects
}

// scanRow collects the plates of row y. Column `width` acts as a non-solid
// sentinel so a plate touching the right edge is closed.
func scanRow(cells CellSet, y, width int) []plate {
	var row []plate
	start := -1
	for x := 0; x <= width; x++ {
		solid := x < width && cells.Has(Cell{X: x, Y: y})
		switch {
		case solid && start < 0:
			start = x
		case !solid && start >= 0:
			row = append(row, plate{left: start, right: x - 1})
			start = -1
		}
	}
	return row
}

// Colliders builds the rectangles for cells and converts them to world space.
func Colliders(cells CellSet, width, height int, cellSize, originX, originY float64) []Collider {
	rects := Build(cells, width, height)
	out := make([]Collider, 0, len(rects))
	for _, r := range rects {
		out = append(out, r.Collider(cellSize, originX, originY))
	}
	return out
}
