package ui

import "github.com/dshills/regexplore/internal/match"

// flagCount is the number of toggles in the bar: g, i, m, s.
const flagCount = 4

// FlagBar renders the four flag toggles and tracks which one the
// selection cursor is on. The flag values themselves live in the
// session; the bar only reads and flips them.
type FlagBar struct {
	selected int
}

// NewFlagBar creates a flag bar with the selection on g.
func NewFlagBar() *FlagBar {
	return &FlagBar{}
}

// MoveLeft moves the selection cursor left.
func (f *FlagBar) MoveLeft() {
	if f.selected > 0 {
		f.selected--
	}
}

// MoveRight moves the selection cursor right.
func (f *FlagBar) MoveRight() {
	if f.selected < flagCount-1 {
		f.selected++
	}
}

// Toggle flips the selected flag in place.
func (f *FlagBar) Toggle(flags *match.FlagSet) {
	switch f.selected {
	case 0:
		flags.Global = !flags.Global
	case 1:
		flags.IgnoreCase = !flags.IgnoreCase
	case 2:
		flags.Multiline = !flags.Multiline
	case 3:
		flags.DotAll = !flags.DotAll
	}
}

// ToggleLetter flips the flag named by its letter, regardless of the
// selection cursor.
func (f *FlagBar) ToggleLetter(flags *match.FlagSet, letter rune) bool {
	switch letter {
	case 'g':
		flags.Global = !flags.Global
	case 'i':
		flags.IgnoreCase = !flags.IgnoreCase
	case 'm':
		flags.Multiline = !flags.Multiline
	case 's':
		flags.DotAll = !flags.DotAll
	default:
		return false
	}
	return true
}

// Draw renders the toggles on row y.
func (f *FlagBar) Draw(b Backend, x, y, w int, flags match.FlagSet, theme *Theme, focused bool) {
	labels := [flagCount]struct {
		letter rune
		on     bool
	}{
		{'g', flags.Global},
		{'i', flags.IgnoreCase},
		{'m', flags.Multiline},
		{'s', flags.DotAll},
	}

	col := x
	limit := x + w
	for i, l := range labels {
		if col+4 > limit {
			break
		}
		style := theme.FlagOff
		if l.on {
			style = theme.FlagOn
		}
		b.SetCell(col, y, '[', theme.Base)
		b.SetCell(col+1, y, l.letter, style)
		b.SetCell(col+2, y, ']', theme.Base)
		if focused && i == f.selected {
			b.ShowCursor(col+1, y)
		}
		col += 4
	}
}
