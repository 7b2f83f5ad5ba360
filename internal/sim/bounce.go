package sim

import "time"

// Cosmetic post-impact bounce: a fixed alternating-offset sequence played
// once after ground contact, on its own cadence, ending snapped to ground
// level. No restitution physics behind it.

// BounceInterval is the wall-clock delay between bounce frames.
const BounceInterval = 150 * time.Millisecond

// Offsets in logical pixels above ground level, one per frame. The final
// frame is always ground level.
var bounceOffsets = [6]float64{12, 0, 8, 0, 4, 0}

// Bounce iterates the post-effect frames. It cannot be resumed; reset by
// discarding it.
type Bounce struct {
	frame int
}

func NewBounce() *Bounce {
	return &Bounce{}
}

// Next returns the offset for the current frame and whether a frame was
// still available. After the sequence is exhausted it keeps returning
// (0, false).
func (b *Bounce) Next() (float64, bool) {
	if b.frame >= len(bounceOffsets) {
		return 0, false
	}
	off := bounceOffsets[b.frame]
	b.frame++
	return off, true
}

// Done reports whether the sequence has been fully played.
func (b *Bounce) Done() bool {
	return b.frame >= len(bounceOffsets)
}
