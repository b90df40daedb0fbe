package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one terminal cell: a rune and its style.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is an off-screen cell grid composed once per frame and then pushed
// to the terminal in a single pass. Renderers draw into it in z-order:
// field first, flows, agents, UI last.
type Buffer struct {
	width, height int
	cells         []Cell
}

// NewBuffer returns a buffer of the given dimensions filled with blanks.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize reallocates the grid. Contents are discarded.
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b.width = width
	b.height = height
	b.cells = make([]Cell, width*height)
	b.Fill(' ', tcell.StyleDefault)
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Fill overwrites every cell.
func (b *Buffer) Fill(r rune, style tcell.Style) {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: r, Style: style}
	}
}

// Set writes one cell. Out-of-bounds writes are dropped silently so
// renderers can draw without clipping first.
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Get reads one cell; blank for out-of-bounds reads.
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{Rune: ' ', Style: tcell.StyleDefault}
	}
	return b.cells[y*b.width+x]
}

// Flush pushes the buffer to the screen and shows it.
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	screen.Show()
}
