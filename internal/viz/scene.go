package viz

import "math"

// Logical world dimensions. All scene geometry is expressed in these units
// and projected onto the canvas sub-pixel surface at render time.
const (
	WorldW  = 320
	WorldH  = 480
	GroundH = 24

	BallRadius  = 10
	gridSpacing = 40
)

// Scene draws the free-fall picture: grid, ground band, trail and ball. It
// is a render-only consumer of committed simulation state; it never mutates
// the simulation.
type Scene struct {
	canvas *Canvas
	trail  *Trail
}

func NewScene(cols, rows int) *Scene {
	return &Scene{
		canvas: NewCanvas(cols, rows),
		trail:  NewTrail(),
	}
}

// groundTop is the logical y of the ground band's upper edge.
func groundTop() float64 {
	return WorldH - GroundH
}

// BallY maps a physical height to the logical y of the ball center. The
// fall distance is scaled to the drop height of the current run.
func (s *Scene) BallY(height, initialHeight float64) float64 {
	if initialHeight <= 0 {
		initialHeight = 1
	}
	span := groundTop() - 2*BallRadius
	frac := height / initialHeight
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return groundTop() - BallRadius - frac*span
}

// RestY returns the ball center y while resting on (or bouncing above) the
// ground, offset logical pixels up.
func (s *Scene) RestY(offset float64) float64 {
	return groundTop() - BallRadius - offset
}

// Track appends a ball position to the fading trail.
func (s *Scene) Track(y float64) {
	s.trail.Push(y)
}

func (s *Scene) ResetTrail() {
	s.trail.Clear()
}

func (s *Scene) Trail() *Trail {
	return s.trail
}

// Render draws one frame with the ball centered horizontally at ballY and
// returns the braille text.
func (s *Scene) Render(ballY float64) string {
	c := s.canvas
	c.Clear()

	sx := float64(c.SubWidth()) / WorldW
	sy := float64(c.SubHeight()) / WorldH

	s.drawGrid(sx, sy)

	// ground band
	gy := int(math.Round(groundTop() * sy))
	c.FillRect(0, gy, c.SubWidth()-1, c.SubHeight()-1)

	// trail dots, oldest first so the newest overdraw reads as the head
	bx := int(math.Round(WorldW / 2 * sx))
	for _, y := range s.trail.Points() {
		c.Set(bx, int(math.Round(y*sy)))
	}

	c.FillCircle(bx, int(math.Round(ballY*sy)), int(math.Round(BallRadius*sy)))

	return c.String()
}

// drawGrid lays down a sparse dotted grid so the fall reads against a scale.
func (s *Scene) drawGrid(sx, sy float64) {
	c := s.canvas
	for gx := gridSpacing; gx < WorldW; gx += gridSpacing {
		x := int(math.Round(float64(gx) * sx))
		for y := 0; y < c.SubHeight(); y += 4 {
			c.Set(x, y)
		}
	}
	for gy := gridSpacing; gy < int(groundTop()); gy += gridSpacing {
		y := int(math.Round(float64(gy) * sy))
		for x := 0; x < c.SubWidth(); x += 4 {
			c.Set(x, y)
		}
	}
}
