package pong

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// fixedRand returns its values in order, cycling when exhausted.
type fixedRand struct {
	vals []float64
	i    int
}

func (r *fixedRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func TestRectIntersects(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{5, 5, 10, 10}, true},
		{"contained", Rect{2, 2, 2, 2}, true},
		{"shared edge", Rect{10, 0, 5, 5}, true},
		{"apart horizontally", Rect{11, 0, 5, 5}, false},
		{"apart vertically", Rect{0, 11, 5, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.other.Intersects(a); got != tt.want {
				t.Errorf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContainsAndCenter(t *testing.T) {
	r := Rect{10, 20, 30, 40}
	if !r.Contains(10, 20) || !r.Contains(40, 60) {
		t.Error("edges should be inside")
	}
	if r.Contains(41, 30) {
		t.Error("point right of rect should be outside")
	}
	c := r.Center()
	assertNear(t, "center.X", c.X, 25)
	assertNear(t, "center.Y", c.Y, 40)
}

func TestRangeRandom(t *testing.T) {
	r := Range{2, 6}
	assertNear(t, "low", r.Random(&fixedRand{vals: []float64{0}}), 2)
	assertNear(t, "mid", r.Random(&fixedRand{vals: []float64{0.5}}), 4)
	assertNear(t, "degenerate", Range{3, 3}.Random(&fixedRand{vals: []float64{0.9}}), 3)
}

func TestClamp(t *testing.T) {
	assertNear(t, "below", clamp(-1, 0, 5), 0)
	assertNear(t, "above", clamp(9, 0, 5), 5)
	assertNear(t, "inside", clamp(3, 0, 5), 3)
}
