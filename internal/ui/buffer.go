package ui

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// BufferBackend is an in-memory Backend for widget tests. Cells outside
// the fixed size are dropped.
type BufferBackend struct {
	mu     sync.Mutex
	width  int
	height int
	runes  [][]rune
	styles [][]tcell.Style
	events chan tcell.Event

	cursorX, cursorY int
	cursorShown      bool
}

// NewBufferBackend creates a buffer backend with the given dimensions.
func NewBufferBackend(width, height int) *BufferBackend {
	b := &BufferBackend{
		width:  width,
		height: height,
		events: make(chan tcell.Event, 64),
	}
	b.reset()
	return b
}

func (b *BufferBackend) reset() {
	b.runes = make([][]rune, b.height)
	b.styles = make([][]tcell.Style, b.height)
	for y := 0; y < b.height; y++ {
		b.runes[y] = make([]rune, b.width)
		b.styles[y] = make([]tcell.Style, b.width)
		for x := 0; x < b.width; x++ {
			b.runes[y][x] = ' '
		}
	}
}

// Init implements Backend.
func (b *BufferBackend) Init() error { return nil }

// Fini implements Backend.
func (b *BufferBackend) Fini() {}

// Size returns the fixed dimensions.
func (b *BufferBackend) Size() (int, int) {
	return b.width, b.height
}

// Clear erases the buffer.
func (b *BufferBackend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reset()
}

// SetCell records one rune.
func (b *BufferBackend) SetCell(x, y int, r rune, style tcell.Style) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.runes[y][x] = r
	b.styles[y][x] = style
}

// Show is a no-op for the buffer backend.
func (b *BufferBackend) Show() {}

// PollEvent returns the next posted event.
func (b *BufferBackend) PollEvent() tcell.Event {
	return <-b.events
}

// PostEvent queues an event for PollEvent.
func (b *BufferBackend) PostEvent(ev tcell.Event) error {
	b.events <- ev
	return nil
}

// ShowCursor records the cursor position.
func (b *BufferBackend) ShowCursor(x, y int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorX, b.cursorY = x, y
	b.cursorShown = true
}

// HideCursor hides the recorded cursor.
func (b *BufferBackend) HideCursor() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorShown = false
}

// Line returns row y as a right-trimmed string.
func (b *BufferBackend) Line(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if y < 0 || y >= b.height {
		return ""
	}
	return strings.TrimRight(string(b.runes[y]), " ")
}

// StyleAt returns the style recorded at (x, y).
func (b *BufferBackend) StyleAt(x, y int) tcell.Style {
	b.mu.Lock()
	defer b.mu.Unlock()

	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return tcell.StyleDefault
	}
	return b.styles[y][x]
}
