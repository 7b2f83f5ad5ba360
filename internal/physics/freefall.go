package physics

import "math"

// Free-fall kinematics under constant gravitational acceleration. Mass never
// enters the equations (no air resistance is modeled); callers carry it
// through records for display only.

// Kinematics holds the evaluated quantities at one instant.
type Kinematics struct {
	Velocity     float64
	Displacement float64
	Height       float64
}

// Evaluate computes the closed-form free-fall state at elapsed time t for
// initial velocity v0 (downward positive), initial height h0 and gravity g.
// Height is clamped at ground level.
func Evaluate(t, v0, h0, g float64) Kinematics {
	d := Displacement(t, v0, g)
	return Kinematics{
		Velocity:     Velocity(t, v0, g),
		Displacement: d,
		Height:       math.Max(0, h0-d),
	}
}

// Velocity returns v0 + g*t.
func Velocity(t, v0, g float64) float64 {
	return v0 + g*t
}

// Displacement returns the distance fallen: v0*t + 0.5*g*t^2.
func Displacement(t, v0, g float64) float64 {
	return v0*t + 0.5*g*t*t
}

// roundBias nudges values sitting a few ulps below a half boundary (e.g.
// 45.095 stored as 45.09499999...) over it before rounding.
const roundBias = 1e-9

// Round2 rounds to two decimals, the precision every logged quantity is
// recorded at.
func Round2(v float64) float64 {
	return math.Round(v*100+roundBias) / 100
}
