package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(0, 0)
	if c.Grid[0][0] == 0x2800 {
		t.Error("pixel (0,0) not set")
	}

	c.Set(7, 7)
	if c.Grid[1][3] == 0x2800 {
		t.Error("pixel (7,7) not set")
	}
}

func TestCanvasSetOutOfRange(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(-1, 0)
	c.Set(0, -3)
	c.Set(8, 0)
	c.Set(0, 8)

	if c.String() != strings.Repeat(string(rune(0x2800)), 4)+"\n"+strings.Repeat(string(rune(0x2800)), 4) {
		t.Error("out-of-range set modified the canvas")
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(1, 1)
	c.Set(3, 7)

	c.Clear()

	for i, row := range c.Grid {
		for j, r := range row {
			if r != 0x2800 {
				t.Errorf("cell (%d,%d) not cleared: %x", i, j, r)
			}
		}
	}
}

func TestFillCircleCoversCenter(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillCircle(10, 20, 3)

	if c.Grid[5][5] == 0x2800 {
		t.Error("circle center not filled")
	}
}

func TestCanvasStringShape(t *testing.T) {
	c := NewCanvas(5, 3)
	s := c.String()

	lines := strings.Split(s, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if len([]rune(line)) != 5 {
			t.Errorf("line %d has %d runes, want 5", i, len([]rune(line)))
		}
	}
}

func TestPixelDimensions(t *testing.T) {
	c := NewCanvas(80, 24)
	if c.PixelWidth() != 160 || c.PixelHeight() != 96 {
		t.Errorf("pixel dims = %dx%d, want 160x96", c.PixelWidth(), c.PixelHeight())
	}
}
