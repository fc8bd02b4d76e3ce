package model

import (
	"encoding/json"
	"fmt"
)

// Rectangle is an axis-aligned, half-open region of the grid: a cell c is
// inside iff topLeft.X <= c.X < bottomRight.X and likewise for Y.
//
// This realizes the Geometry component of the simulation: rectangle algebra
// (overlap, intersection, subtraction, padded expansion) used to derive
// patch areas, padded areas, and padding-channel intersections.
type Rectangle struct {
	TopLeft     XY
	BottomRight XY
	Size        XY
}

type rectangleJSON struct {
	TopLeft XY `json:"topLeft"`
	Size    XY `json:"size"`
}

// NewRectangle constructs a rectangle from its top-left corner and size.
// Panics if size is not strictly positive in both axes.
func NewRectangle(topLeft, size XY) Rectangle {
	if size.X <= 0 || size.Y <= 0 {
		panic(fmt.Sprintf("rectangle size must be positive, got %v", size))
	}
	return Rectangle{
		TopLeft:     topLeft,
		Size:        size,
		BottomRight: topLeft.Add(size),
	}
}

func (r Rectangle) MarshalJSON() ([]byte, error) {
	return json.Marshal(rectangleJSON{TopLeft: r.TopLeft, Size: r.Size})
}

func (r *Rectangle) UnmarshalJSON(data []byte) error {
	var raw rectangleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = NewRectangle(raw.TopLeft, raw.Size)
	return nil
}

// Overlaps reports whether the two rectangles share any cell.
func Overlaps(a, b Rectangle) bool {
	return !(a.BottomRight.X <= b.TopLeft.X ||
		b.BottomRight.X <= a.TopLeft.X ||
		a.TopLeft.Y >= b.BottomRight.Y ||
		b.TopLeft.Y >= a.BottomRight.Y)
}

// Contains reports whether cell lies inside the rectangle.
func Contains(r Rectangle, cell XY) bool {
	return r.TopLeft.X <= cell.X && cell.X < r.BottomRight.X &&
		r.TopLeft.Y <= cell.Y && cell.Y < r.BottomRight.Y
}

// Intersect returns the intersection of two overlapping rectangles. The
// caller must check Overlaps first; Intersect panics otherwise, since an
// empty intersection cannot be represented by Rectangle's positive-size
// invariant.
func Intersect(a, b Rectangle) Rectangle {
	if !Overlaps(a, b) {
		panic("rectangles must overlap to be intersected")
	}
	topLeft := XY{
		X: max(a.TopLeft.X, b.TopLeft.X),
		Y: max(a.TopLeft.Y, b.TopLeft.Y),
	}
	bottomRight := XY{
		X: min(a.BottomRight.X, b.BottomRight.X),
		Y: min(a.BottomRight.Y, b.BottomRight.Y),
	}
	return NewRectangle(topLeft, bottomRight.Sub(topLeft))
}

// Padded expands area by padding cells in every direction, then clips the
// result to grid.
func Padded(area Rectangle, padding int, grid Rectangle) Rectangle {
	topLeft := area.TopLeft.AddScalar(-padding)
	size := area.Size.AddScalar(2 * padding)
	expanded := NewRectangle(topLeft, size)
	return Intersect(expanded, grid)
}

// RectangleMinus returns up to 4 rectangles covering big \ small, in the
// fixed order top, left, bottom, right, omitting any that would be empty.
// The precondition is that small lies entirely within big (big ∩ small ==
// small); the test suite depends on the emission order.
func RectangleMinus(big, small Rectangle) []Rectangle {
	var out []Rectangle

	// Top: full width of big, above small.
	if small.TopLeft.Y > big.TopLeft.Y {
		out = append(out, NewRectangle(
			XY{X: big.TopLeft.X, Y: big.TopLeft.Y},
			XY{X: big.Size.X, Y: small.TopLeft.Y - big.TopLeft.Y},
		))
	}
	// Left: full height of big, left of small.
	if small.TopLeft.X > big.TopLeft.X {
		out = append(out, NewRectangle(
			XY{X: big.TopLeft.X, Y: big.TopLeft.Y},
			XY{X: small.TopLeft.X - big.TopLeft.X, Y: big.Size.Y},
		))
	}
	// Bottom: full width of big, below small.
	if small.BottomRight.Y < big.BottomRight.Y {
		out = append(out, NewRectangle(
			XY{X: big.TopLeft.X, Y: small.BottomRight.Y},
			XY{X: big.Size.X, Y: big.BottomRight.Y - small.BottomRight.Y},
		))
	}
	// Right: full height of big, right of small.
	if small.BottomRight.X < big.BottomRight.X {
		out = append(out, NewRectangle(
			XY{X: small.BottomRight.X, Y: big.TopLeft.Y},
			XY{X: big.BottomRight.X - small.BottomRight.X, Y: big.Size.Y},
		))
	}
	return out
}

// Cells returns every cell of the rectangle in row-major order.
func (r Rectangle) Cells() []XY {
	cells := make([]XY, 0, r.Size.X*r.Size.Y)
	for y := r.TopLeft.Y; y < r.BottomRight.Y; y++ {
		for x := r.TopLeft.X; x < r.BottomRight.X; x++ {
			cells = append(cells, XY{X: x, Y: y})
		}
	}
	return cells
}

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle(%s, %s)", r.TopLeft, r.Size)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
