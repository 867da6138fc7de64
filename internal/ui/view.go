package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/regexplore/internal/match"
)

// ContentView is the editable text area. Content is addressed by rune
// offset, the same scheme the match spans use, so applying highlights is
// a direct offset lookup. Highlight state is replaced wholesale on every
// search; there is no incremental tagging to go stale.
type ContentView struct {
	text   []rune
	cursor int
	scroll int
	spans  []match.Span

	padding int
	wrap    bool

	// lastWidth is the content width of the most recent Draw, used for
	// vertical cursor movement between draws.
	lastWidth int
}

// NewContentView creates a view seeded with initial content.
func NewContentView(initial string) *ContentView {
	return &ContentView{
		text:      []rune(initial),
		wrap:      true,
		lastWidth: 80,
	}
}

// Text returns the current content.
func (v *ContentView) Text() string {
	return string(v.text)
}

// SetText replaces the content and resets cursor, scroll and spans.
func (v *ContentView) SetText(s string) {
	v.text = []rune(s)
	v.cursor = 0
	v.scroll = 0
	v.spans = nil
}

// SetPadding sets the inner padding, clamped to 0..3.
func (v *ContentView) SetPadding(p int) {
	if p < 0 {
		p = 0
	}
	if p > 3 {
		p = 3
	}
	v.padding = p
}

// Padding returns the current inner padding.
func (v *ContentView) Padding() int {
	return v.padding
}

// SetWrap toggles soft wrapping.
func (v *ContentView) SetWrap(wrap bool) {
	v.wrap = wrap
}

// SetSpans replaces the highlight set. Passing the same spans twice
// yields the same visual state; nothing accumulates.
func (v *ContentView) SetSpans(spans []match.Span) {
	v.spans = make([]match.Span, len(spans))
	copy(v.spans, spans)
}

// ClearSpans removes all highlighting.
func (v *ContentView) ClearSpans() {
	v.spans = nil
}

// Spans returns the current highlight set.
func (v *ContentView) Spans() []match.Span {
	return v.spans
}

// InsertRune inserts r at the cursor. Editing invalidates highlights,
// which refer to the previous content.
func (v *ContentView) InsertRune(r rune) {
	v.text = append(v.text[:v.cursor:v.cursor], append([]rune{r}, v.text[v.cursor:]...)...)
	v.cursor++
	v.spans = nil
}

// InsertString inserts pasted text at the cursor.
func (v *ContentView) InsertString(s string) {
	for _, r := range s {
		v.InsertRune(r)
	}
}

// Backspace deletes the rune before the cursor.
func (v *ContentView) Backspace() {
	if v.cursor == 0 {
		return
	}
	v.text = append(v.text[:v.cursor-1:v.cursor-1], v.text[v.cursor:]...)
	v.cursor--
	v.spans = nil
}

// Delete removes the rune at the cursor.
func (v *ContentView) Delete() {
	if v.cursor >= len(v.text) {
		return
	}
	v.text = append(v.text[:v.cursor:v.cursor], v.text[v.cursor+1:]...)
	v.spans = nil
}

// MoveLeft moves the cursor one rune left.
func (v *ContentView) MoveLeft() {
	if v.cursor > 0 {
		v.cursor--
	}
}

// MoveRight moves the cursor one rune right.
func (v *ContentView) MoveRight() {
	if v.cursor < len(v.text) {
		v.cursor++
	}
}

// MoveUp moves the cursor one layout row up.
func (v *ContentView) MoveUp() {
	v.moveVertical(-1)
}

// MoveDown moves the cursor one layout row down.
func (v *ContentView) MoveDown() {
	v.moveVertical(1)
}

// MoveHome moves the cursor to the start of its layout row.
func (v *ContentView) MoveHome() {
	rows := v.layoutRows(v.lastWidth)
	v.cursor = rows[v.cursorRow(rows)].start
}

// MoveEnd moves the cursor to the end of its layout row.
func (v *ContentView) MoveEnd() {
	rows := v.layoutRows(v.lastWidth)
	v.cursor = rows[v.cursorRow(rows)].end
}

func (v *ContentView) moveVertical(dy int) {
	rows := v.layoutRows(v.lastWidth)
	cur := v.cursorRow(rows)
	target := cur + dy
	if target < 0 || target >= len(rows) {
		return
	}
	col := v.cursor - rows[cur].start
	r := rows[target]
	if col > r.end-r.start {
		col = r.end - r.start
	}
	v.cursor = r.start + col
}

// row is one layout line as a half-open rune-offset interval, exclusive
// of any terminator.
type row struct {
	start int
	end   int
}

// layoutRows splits the content into display rows for the given content
// width, wrapping on cell width when enabled.
func (v *ContentView) layoutRows(width int) []row {
	if width < 1 {
		width = 1
	}

	var rows []row
	text := string(v.text)
	start, off, col := 0, 0, 0
	state := -1

	for len(text) > 0 {
		var cluster string
		var w int
		cluster, text, w, state = uniseg.FirstGraphemeClusterInString(text, state)
		n := len([]rune(cluster))

		if cluster == "\n" || cluster == "\r\n" || cluster == "\r" {
			rows = append(rows, row{start, off})
			off += n
			start = off
			col = 0
			continue
		}
		if v.wrap && col > 0 && col+w > width {
			rows = append(rows, row{start, off})
			start = off
			col = 0
		}
		off += n
		col += w
	}
	rows = append(rows, row{start, off})
	return rows
}

// cursorRow returns the index of the layout row holding the cursor.
func (v *ContentView) cursorRow(rows []row) int {
	for i, r := range rows {
		if v.cursor >= r.start && v.cursor <= r.end {
			return i
		}
	}
	return len(rows) - 1
}

// styleAt returns the style for the rune at offset, using the highlight
// alternation when the offset falls inside a span.
func (v *ContentView) styleAt(offset int, theme *Theme) tcell.Style {
	for _, s := range v.spans {
		if offset >= s.Start && offset < s.End {
			return theme.HighlightStyle(s.Index)
		}
		if s.Start > offset {
			break
		}
	}
	return theme.Base
}

// Draw renders the view into the rectangle at (x, y) sized w by h.
func (v *ContentView) Draw(b Backend, x, y, w, h int, theme *Theme, focused bool) {
	innerX := x + v.padding
	innerW := w - 2*v.padding
	if innerW < 1 {
		innerW = 1
	}
	v.lastWidth = innerW

	rows := v.layoutRows(innerW)

	// Keep the cursor row in view.
	cur := v.cursorRow(rows)
	if cur < v.scroll {
		v.scroll = cur
	}
	if cur >= v.scroll+h {
		v.scroll = cur - h + 1
	}
	if v.scroll > len(rows)-1 {
		v.scroll = len(rows) - 1
	}
	if v.scroll < 0 {
		v.scroll = 0
	}

	cursorDrawn := false
	for ry := 0; ry < h; ry++ {
		ri := v.scroll + ry
		if ri >= len(rows) {
			break
		}
		r := rows[ri]
		col := innerX
		line := string(v.text[r.start:r.end])
		off := r.start
		state := -1
		for len(line) > 0 {
			var cluster string
			var cw int
			cluster, line, cw, state = uniseg.FirstGraphemeClusterInString(line, state)
			if col+cw > innerX+innerW {
				break
			}
			style := v.styleAt(off, theme)
			crs := []rune(cluster)
			b.SetCell(col, y+ry, crs[0], style)
			if focused && off == v.cursor {
				b.ShowCursor(col, y+ry)
				cursorDrawn = true
			}
			off += len(crs)
			col += cw
		}
		if focused && !cursorDrawn && v.cursor == r.end && ri == cur {
			b.ShowCursor(col, y+ry)
			cursorDrawn = true
		}
	}
	if focused && !cursorDrawn {
		b.ShowCursor(innerX, y)
	}
}
