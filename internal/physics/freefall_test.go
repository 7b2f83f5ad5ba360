package physics

import (
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name         string
		t, v0, h0, g float64
		velocity     float64
		displacement float64
		height       float64
	}{
		{"at rest", 0.0, 0.0, 50.0, 9.81, 0.0, 0.0, 50.0},
		{"one second earth", 1.0, 0.0, 50.0, 9.81, 9.81, 4.905, 45.095},
		{"with initial velocity", 1.0, 5.0, 50.0, 9.81, 14.81, 9.905, 40.095},
		{"moon gravity", 2.0, 0.0, 50.0, 1.62, 3.24, 3.24, 46.76},
		{"past ground clamps", 10.0, 0.0, 50.0, 9.81, 98.1, 490.5, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := Evaluate(tt.t, tt.v0, tt.h0, tt.g)
			if math.Abs(k.Velocity-tt.velocity) > 1e-9 {
				t.Errorf("velocity = %v, want %v", k.Velocity, tt.velocity)
			}
			if math.Abs(k.Displacement-tt.displacement) > 1e-9 {
				t.Errorf("displacement = %v, want %v", k.Displacement, tt.displacement)
			}
			if math.Abs(k.Height-tt.height) > 1e-9 {
				t.Errorf("height = %v, want %v", k.Height, tt.height)
			}
		})
	}
}

func TestEvaluate_HeightNeverNegative(t *testing.T) {
	for n := 0; n <= 200; n++ {
		et := float64(n) * 0.1
		k := Evaluate(et, 3.0, 20.0, 9.81)
		if k.Height < 0 {
			t.Fatalf("height negative at t=%.1f: %v", et, k.Height)
		}
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{45.095, 45.1},
		{4.905, 4.91},
		{9.81, 9.81},
		{0.004, 0.0},
		{0.005, 0.01},
		{-1.005, -1.0},
	}

	for _, tt := range tests {
		if got := Round2(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
