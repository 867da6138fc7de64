// Package ui implements the presentation layer: a tcell terminal
// backend behind a small interface, the theme, and the widgets (pattern
// bar, flag bar, content view, status line, sample menu, popups). All
// match and markup logic lives below this package; widgets only place
// styled cells.
package ui

import "github.com/gdamore/tcell/v2"

// Backend abstracts the terminal so widgets can be tested against an
// in-memory implementation.
type Backend interface {
	// Init prepares the backend for use.
	Init() error

	// Fini releases the backend.
	Fini()

	// Size returns the current width and height in cells.
	Size() (int, int)

	// Clear erases the screen to the default style.
	Clear()

	// SetCell places a rune with a style. Out-of-range coordinates are
	// ignored.
	SetCell(x, y int, r rune, style tcell.Style)

	// Show makes all pending cell updates visible.
	Show()

	// PollEvent blocks for the next input event.
	PollEvent() tcell.Event

	// PostEvent injects an event into the poll stream.
	PostEvent(ev tcell.Event) error

	// ShowCursor places the hardware cursor.
	ShowCursor(x, y int)

	// HideCursor hides the hardware cursor.
	HideCursor()
}

// SetString writes a string at (x, y), clipping at width limit. Returns
// the x position after the last written cell.
func SetString(b Backend, x, y int, s string, style tcell.Style, limit int) int {
	for _, r := range s {
		if x >= limit {
			break
		}
		b.SetCell(x, y, r, style)
		x++
	}
	return x
}
