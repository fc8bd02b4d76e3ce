package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func Test_Overlaps(t *testing.T) {
	a := NewRectangle(XY{X: 0, Y: 0}, XY{X: 5, Y: 5})
	b := NewRectangle(XY{X: 4, Y: 4}, XY{X: 5, Y: 5})
	c := NewRectangle(XY{X: 5, Y: 0}, XY{X: 5, Y: 5})

	if !Overlaps(a, b) {
		t.Errorf("expected %v and %v to overlap", a, b)
	}
	if Overlaps(a, c) {
		t.Errorf("expected %v and %v (adjacent, half-open) not to overlap", a, c)
	}
}

func Test_Contains(t *testing.T) {
	r := NewRectangle(XY{X: 2, Y: 2}, XY{X: 3, Y: 3})
	tests := []struct {
		cell XY
		want bool
	}{
		{XY{X: 2, Y: 2}, true},
		{XY{X: 4, Y: 4}, true},
		{XY{X: 5, Y: 4}, false}, // bottom-right is exclusive
		{XY{X: 1, Y: 2}, false},
	}
	for _, tt := range tests {
		if got := Contains(r, tt.cell); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", r, tt.cell, got, tt.want)
		}
	}
}

func Test_Intersect(t *testing.T) {
	a := NewRectangle(XY{X: 0, Y: 0}, XY{X: 10, Y: 10})
	b := NewRectangle(XY{X: 5, Y: 5}, XY{X: 10, Y: 10})

	got := Intersect(a, b)
	want := NewRectangle(XY{X: 5, Y: 5}, XY{X: 5, Y: 5})
	if got != want {
		t.Errorf("Intersect(%v, %v) = %v, want %v", a, b, got, want)
	}
}

func Test_Intersect_PanicsWhenDisjoint(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Intersect to panic on disjoint rectangles")
		}
	}()
	a := NewRectangle(XY{X: 0, Y: 0}, XY{X: 2, Y: 2})
	b := NewRectangle(XY{X: 10, Y: 10}, XY{X: 2, Y: 2})
	Intersect(a, b)
}

func Test_Padded_ClipsToGrid(t *testing.T) {
	grid := NewRectangle(XY{X: 0, Y: 0}, XY{X: 10, Y: 10})
	area := NewRectangle(XY{X: 0, Y: 0}, XY{X: 2, Y: 2})

	got := Padded(area, 3, grid)
	want := NewRectangle(XY{X: 0, Y: 0}, XY{X: 5, Y: 5})
	if got != want {
		t.Errorf("Padded(%v, 3, %v) = %v, want %v", area, grid, got, want)
	}
}

// Test_RectangleMinus_WorkedExample pins down the exact index order (top,
// left, bottom, right) and the exact rectangles for the worked example.
func Test_RectangleMinus_WorkedExample(t *testing.T) {
	big := NewRectangle(XY{X: 0, Y: 0}, XY{X: 7, Y: 5})
	small := NewRectangle(XY{X: 1, Y: 1}, XY{X: 3, Y: 2})

	got := RectangleMinus(big, small)
	want := []Rectangle{
		NewRectangle(XY{X: 0, Y: 0}, XY{X: 7, Y: 1}), // top
		NewRectangle(XY{X: 0, Y: 0}, XY{X: 1, Y: 5}), // left
		NewRectangle(XY{X: 0, Y: 3}, XY{X: 7, Y: 2}), // bottom
		NewRectangle(XY{X: 4, Y: 0}, XY{X: 3, Y: 5}), // right
	}

	if len(got) != len(want) {
		t.Fatalf("got %d pieces, want %d: %v", len(got), len(want), got)
	}
	names := []string{"top", "left", "bottom", "right"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s piece (index %d) = %v, want %v", names[i], i, got[i], want[i])
		}
	}
}

// Test_RectangleMinus_AllFourSides checks the general covering property: the
// four strips are full-width/full-height, so they overlap each other at
// big's corners (as the worked example above shows), but together they must
// still cover every cell of big outside small, and never touch small itself.
func Test_RectangleMinus_AllFourSides(t *testing.T) {
	big := NewRectangle(XY{X: 0, Y: 0}, XY{X: 10, Y: 10})
	small := NewRectangle(XY{X: 3, Y: 3}, XY{X: 2, Y: 2})

	got := RectangleMinus(big, small)
	if len(got) != 4 {
		t.Fatalf("expected 4 pieces, got %d: %v", len(got), got)
	}

	covered := make(map[XY]bool)
	for _, piece := range got {
		for _, c := range piece.Cells() {
			covered[c] = true
		}
	}
	for _, c := range big.Cells() {
		if Contains(small, c) {
			if covered[c] {
				t.Errorf("cell %v inside small was covered by a RectangleMinus piece", c)
			}
			continue
		}
		if !covered[c] {
			t.Errorf("cell %v not covered by any RectangleMinus piece", c)
		}
	}
}

func Test_RectangleMinus_OmitsEmptySides(t *testing.T) {
	// small touches big's top edge and left edge, so top/left pieces would
	// be empty and must be omitted.
	big := NewRectangle(XY{X: 0, Y: 0}, XY{X: 10, Y: 10})
	small := NewRectangle(XY{X: 0, Y: 0}, XY{X: 4, Y: 4})

	got := RectangleMinus(big, small)
	if len(got) != 2 {
		t.Fatalf("expected 2 pieces (bottom, right), got %d: %v", len(got), got)
	}
}

func Test_Rectangle_JSONRoundTrip(t *testing.T) {
	r := NewRectangle(XY{X: 3, Y: 4}, XY{X: 5, Y: 6})

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got Rectangle
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, r) {
		t.Errorf("round trip = %v, want %v", got, r)
	}
}

func Test_NewRectangle_PanicsOnNonPositiveSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected NewRectangle to panic on non-positive size")
		}
	}()
	NewRectangle(XY{X: 0, Y: 0}, XY{X: 0, Y: 5})
}
