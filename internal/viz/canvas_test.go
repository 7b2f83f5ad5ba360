package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 2)

	if c.SubWidth() != 8 || c.SubHeight() != 8 {
		t.Fatalf("sub-pixel surface = %dx%d, want 8x8", c.SubWidth(), c.SubHeight())
	}

	c.Set(0, 0)
	if c.cells[0][0] != 0x2801 {
		t.Errorf("cell = %x, want 2801", c.cells[0][0])
	}

	c.Set(1, 3)
	if c.cells[0][0]&0x80 == 0 {
		t.Error("bottom-right dot of the first cell not set")
	}

	// out of bounds is dropped, not wrapped
	c.Set(-1, 0)
	c.Set(0, -5)
	c.Set(100, 100)
	if c.cells[1][3] != 0x2800 {
		t.Error("out-of-bounds set leaked into the grid")
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(3, 3)
	c.FillRect(0, 0, c.SubWidth()-1, c.SubHeight()-1)
	c.Clear()
	for _, row := range c.cells {
		for _, cell := range row {
			if cell != 0x2800 {
				t.Fatalf("cell %x after clear", cell)
			}
		}
	}
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Line(0, 0, 7, 7)

	for i := 0; i < 8; i++ {
		if c.cells[i/4][i/2]&dotMask[i%4][i%2] == 0 {
			t.Errorf("diagonal sub-pixel (%d,%d) not set", i, i)
		}
	}
}

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(10, 5)
	c.FillCircle(10, 10, 3)

	if c.cells[10/4][10/2]&dotMask[10%4][10%2] == 0 {
		t.Error("circle center not set")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(5, 2)
	out := c.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 5 {
			t.Errorf("expected 5 cells per line, got %d", len([]rune(line)))
		}
	}
}
