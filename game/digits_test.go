package game

import (
	"math/bits"
	"testing"

	"github.com/phanxgames/pong"
)

func TestDigitSegmentCounts(t *testing.T) {
	want := [10]int{6, 2, 5, 5, 4, 5, 6, 3, 7, 6}
	for d, mask := range digitSegments {
		if got := bits.OnesCount8(mask); got != want[d] {
			t.Errorf("digit %d lights %d segments, want %d", d, got, want[d])
		}
	}
}

func TestAppendNumberRectsSingleDigit(t *testing.T) {
	rects := appendNumberRects(nil, 1, 100, 50, 1)
	if len(rects) != 2 {
		t.Fatalf("rects = %d, want 2", len(rects))
	}
	// Digit 1 lights the two right-hand segments.
	want := pong.Rect{X: 100 - digitWidth/2 + 35, Y: 55, Width: 5, Height: 25}
	if rects[0] != want {
		t.Errorf("rect = %+v, want %+v", rects[0], want)
	}
}

func TestAppendNumberRectsMultiDigit(t *testing.T) {
	rects := appendNumberRects(nil, 88, 200, 0, 1)
	if len(rects) != 14 {
		t.Fatalf("rects = %d, want 14", len(rects))
	}
	minX, maxX := rects[0].X, rects[0].X+rects[0].Width
	for _, r := range rects {
		minX = min(minX, r.X)
		maxX = max(maxX, r.X+r.Width)
	}
	if mid := (minX + maxX) / 2; mid < 199 || mid > 201 {
		t.Errorf("number centered at %v, want 200", mid)
	}
}

func TestAppendNumberRectsScalesAboutCenter(t *testing.T) {
	base := appendNumberRects(nil, 8, 100, 50, 1)
	big := appendNumberRects(nil, 8, 100, 50, 2)
	// The middle bar of an 8 stays centered on the digit.
	assertNear(t, "middle bar center X", big[6].X+big[6].Width/2, base[6].X+base[6].Width/2)
	assertNear(t, "middle bar width", big[6].Width, 2*base[6].Width)
}

func TestAppendNumberRectsNegative(t *testing.T) {
	if got := len(appendNumberRects(nil, -3, 0, 0, 1)); got != 6 {
		t.Errorf("negative score should draw 0, got %d rects", got)
	}
}
