package viz

// TrailCap bounds the recent-position buffer used for the fade-out effect.
const TrailCap = 30

// Trail holds the last TrailCap vertical ball positions in logical pixels,
// oldest first. Pushing past capacity evicts the oldest entry.
type Trail struct {
	ys []float64
}

func NewTrail() *Trail {
	return &Trail{ys: make([]float64, 0, TrailCap)}
}

func (t *Trail) Push(y float64) {
	if len(t.ys) >= TrailCap {
		copy(t.ys, t.ys[1:])
		t.ys = t.ys[:TrailCap-1]
	}
	t.ys = append(t.ys, y)
}

func (t *Trail) Len() int {
	return len(t.ys)
}

// Points returns the buffered positions, oldest first. Callers must not
// mutate the slice.
func (t *Trail) Points() []float64 {
	return t.ys
}

func (t *Trail) Clear() {
	t.ys = t.ys[:0]
}
