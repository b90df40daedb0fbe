package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestBufferSetGet(t *testing.T) {
	buf := NewBuffer(10, 5)
	style := tcell.StyleDefault.Foreground(tcell.ColorRed)

	buf.Set(3, 2, '@', style)
	cell := buf.Get(3, 2)
	if cell.Rune != '@' {
		t.Errorf("expected '@', got %q", cell.Rune)
	}
	if cell.Style != style {
		t.Errorf("style not preserved")
	}
}

func TestBufferOutOfBounds(t *testing.T) {
	buf := NewBuffer(10, 5)

	tests := []struct {
		name string
		x, y int
	}{
		{"Negative x", -1, 0},
		{"Negative y", 0, -1},
		{"Past width", 10, 0},
		{"Past height", 0, 5},
		{"Far out", 1000, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Writes are dropped, reads come back blank, nothing panics
			buf.Set(tt.x, tt.y, 'X', tcell.StyleDefault)
			cell := buf.Get(tt.x, tt.y)
			if cell.Rune != ' ' {
				t.Errorf("out-of-bounds read should be blank, got %q", cell.Rune)
			}
		})
	}
}

func TestBufferFill(t *testing.T) {
	buf := NewBuffer(4, 3)
	style := tcell.StyleDefault.Background(tcell.ColorBlue)
	buf.Fill('#', style)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if c := buf.Get(x, y); c.Rune != '#' {
				t.Fatalf("cell (%d,%d) not filled: %q", x, y, c.Rune)
			}
		}
	}
}

func TestBufferResize(t *testing.T) {
	buf := NewBuffer(4, 3)
	buf.Set(0, 0, 'A', tcell.StyleDefault)

	buf.Resize(8, 6)
	if buf.Width() != 8 || buf.Height() != 6 {
		t.Errorf("expected 8x6 after resize, got %dx%d", buf.Width(), buf.Height())
	}
	if c := buf.Get(0, 0); c.Rune != ' ' {
		t.Errorf("resize should discard contents, got %q", c.Rune)
	}

	// Degenerate sizes clamp instead of panicking
	buf.Resize(-1, -1)
	if buf.Width() != 0 || buf.Height() != 0 {
		t.Errorf("negative resize should clamp to zero")
	}
	buf.Set(0, 0, 'B', tcell.StyleDefault)
}
