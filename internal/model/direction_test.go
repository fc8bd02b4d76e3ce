package model

import (
	"encoding/json"
	"testing"
)

func Test_Direction_VectorRoundTrip(t *testing.T) {
	for d := North; d <= SouthWest; d++ {
		v := d.Vector()
		if got := DirectionFromVector(v); got != d {
			t.Errorf("DirectionFromVector(%v.Vector()) = %v, want %v", d, got, d)
		}
	}
}

func Test_Direction_JSONRoundTrip(t *testing.T) {
	for d := North; d <= NoDirection; d++ {
		data, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", d, err)
		}
		var got Direction
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal(%s): %v", data, err)
		}
		if got != d {
			t.Errorf("round trip = %v, want %v", got, d)
		}
	}
}

func Test_DirectionFromVector_PanicsOnNonUnitVector(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected DirectionFromVector to panic on a non-unit vector")
		}
	}()
	DirectionFromVector(XY{X: 3, Y: 3})
}

func Test_DirectionFromIndex(t *testing.T) {
	if got := DirectionFromIndex(0); got != North {
		t.Errorf("DirectionFromIndex(0) = %v, want North", got)
	}
	if got := DirectionFromIndex(8); got != NoDirection {
		t.Errorf("DirectionFromIndex(8) = %v, want NoDirection", got)
	}
	if got := DirectionFromIndex(-1); got != NoDirection {
		t.Errorf("DirectionFromIndex(-1) = %v, want NoDirection", got)
	}
}
