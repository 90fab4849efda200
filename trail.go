package pong

// Trail is a bounded FIFO of recent ball centers. Once full, each push
// overwrites the oldest point.
type Trail struct {
	points []Vec2
	head   int // index of the oldest point once full
	n      int
}

// NewTrail creates a trail holding at most max points.
func NewTrail(max int) *Trail {
	return &Trail{points: make([]Vec2, max)}
}

// Push appends p, discarding the oldest point when the trail is full.
func (t *Trail) Push(p Vec2) {
	if len(t.points) == 0 {
		return
	}
	if t.n < len(t.points) {
		t.points[(t.head+t.n)%len(t.points)] = p
		t.n++
		return
	}
	t.points[t.head] = p
	t.head = (t.head + 1) % len(t.points)
}

// Len returns the number of stored points.
func (t *Trail) Len() int { return t.n }

// Cap returns the maximum number of points.
func (t *Trail) Cap() int { return len(t.points) }

// Clear empties the trail.
func (t *Trail) Clear() {
	t.head = 0
	t.n = 0
}

// AppendPoints appends the stored points to dst, oldest first, and returns
// the extended slice.
func (t *Trail) AppendPoints(dst []Vec2) []Vec2 {
	for i := 0; i < t.n; i++ {
		dst = append(dst, t.points[(t.head+i)%len(t.points)])
	}
	return dst
}
