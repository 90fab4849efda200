package game

import (
	"strconv"

	"github.com/phanxgames/pong"
)

// Seven-segment geometry at scale 1, relative to the digit's top-left.
const (
	digitWidth   = 40
	digitHeight  = 60
	digitSpacing = 12
)

// segmentRects lists the segments in the order top, top-right,
// bottom-right, bottom, bottom-left, top-left, middle.
var segmentRects = [7]pong.Rect{
	{X: 5, Y: 0, Width: 30, Height: 5},
	{X: 35, Y: 5, Width: 5, Height: 25},
	{X: 35, Y: 30, Width: 5, Height: 25},
	{X: 5, Y: 55, Width: 30, Height: 5},
	{X: 0, Y: 30, Width: 5, Height: 25},
	{X: 0, Y: 5, Width: 5, Height: 25},
	{X: 5, Y: 28, Width: 30, Height: 5},
}

// digitSegments holds a bitmask per decimal digit; bit i lights segment i.
var digitSegments = [10]uint8{
	0: 0b0111111,
	1: 0b0000110,
	2: 0b1011011,
	3: 0b1001111,
	4: 0b1100110,
	5: 0b1101101,
	6: 0b1111101,
	7: 0b0000111,
	8: 0b1111111,
	9: 0b1101111,
}

// appendNumberRects appends the lit segments of n, centered horizontally on
// centerX with its top at y, scaled about the number's center.
func appendNumberRects(dst []pong.Rect, n int, centerX, y, scale float64) []pong.Rect {
	if n < 0 {
		n = 0
	}
	s := strconv.Itoa(n)
	total := float64(len(s))*digitWidth + float64(len(s)-1)*digitSpacing
	cx, cy := centerX, y+digitHeight/2
	for i, ch := range s {
		mask := digitSegments[ch-'0']
		ox := -total/2 + float64(i)*(digitWidth+digitSpacing)
		for seg, r := range segmentRects {
			if mask&(1<<seg) == 0 {
				continue
			}
			dst = append(dst, pong.Rect{
				X:      cx + (ox+r.X)*scale,
				Y:      cy + (r.Y-digitHeight/2)*scale,
				Width:  r.Width * scale,
				Height: r.Height * scale,
			})
		}
	}
	return dst
}
