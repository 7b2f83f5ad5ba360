package viz

import "testing"

func TestTrailEviction(t *testing.T) {
	trail := NewTrail()

	for i := 0; i < 50; i++ {
		trail.Push(float64(i))
		if trail.Len() > TrailCap {
			t.Fatalf("trail grew past cap: %d", trail.Len())
		}
	}

	if trail.Len() != TrailCap {
		t.Fatalf("expected %d points, got %d", TrailCap, trail.Len())
	}

	pts := trail.Points()
	if pts[0] != 20 {
		t.Errorf("oldest surviving point = %v, want 20 (FIFO eviction)", pts[0])
	}
	if pts[len(pts)-1] != 49 {
		t.Errorf("newest point = %v, want 49", pts[len(pts)-1])
	}
}

func TestTrailClear(t *testing.T) {
	trail := NewTrail()
	trail.Push(1)
	trail.Push(2)
	trail.Clear()
	if trail.Len() != 0 {
		t.Errorf("expected empty trail, got %d", trail.Len())
	}
}
