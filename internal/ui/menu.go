package ui

import (
	"fmt"

	"github.com/dshills/regexplore/internal/samples"
)

// SampleMenu is the overlay listing the sample-pattern library.
type SampleMenu struct {
	items    []samples.Sample
	selected int
}

// NewSampleMenu creates a menu over the given library.
func NewSampleMenu(items []samples.Sample) *SampleMenu {
	return &SampleMenu{items: items}
}

// MoveUp moves the selection up.
func (m *SampleMenu) MoveUp() {
	if m.selected > 0 {
		m.selected--
	}
}

// MoveDown moves the selection down.
func (m *SampleMenu) MoveDown() {
	if m.selected < len(m.items)-1 {
		m.selected++
	}
}

// Selected returns the index of the highlighted entry.
func (m *SampleMenu) Selected() int {
	return m.selected
}

// Len returns the number of entries.
func (m *SampleMenu) Len() int {
	return len(m.items)
}

// Draw renders the menu centered on the screen.
func (m *SampleMenu) Draw(b Backend, theme *Theme) {
	sw, sh := b.Size()

	w := sw - 8
	if w > 64 {
		w = 64
	}
	h := len(m.items) + 2
	if h > sh-2 {
		h = sh - 2
	}
	x := (sw - w) / 2
	y := (sh - h) / 2

	for by := y; by < y+h; by++ {
		for bx := x; bx < x+w; bx++ {
			b.SetCell(bx, by, ' ', theme.Popup)
		}
	}
	SetString(b, x+1, y, " Sample patterns ", theme.PopupTitle, x+w-1)

	for i, s := range m.items {
		row := y + 1 + i
		if row >= y+h-1 {
			break
		}
		style := theme.MenuItem
		if i == m.selected {
			style = theme.MenuCursor
		}
		label := fmt.Sprintf("%s  /%s/%s", s.Description, s.Pattern, s.Flags.Letters())
		SetString(b, x+1, row, label, style, x+w-1)
	}
}
