package ui

import (
	"strings"

	"github.com/dshills/regexplore/internal/markup"
)

// chunk is a run of text in one markup style on one popup line.
type chunk struct {
	text  string
	style markup.Style
}

// Popup is a modal box of styled lines, used for the help and
// generated-code displays. It exists only while open; closing it drops
// all of its state.
type Popup struct {
	title  string
	lines  [][]chunk
	scroll int
}

// NewMarkupPopup renders content through the markup renderer into a
// popup.
func NewMarkupPopup(title, content string) *Popup {
	return &Popup{title: title, lines: markupLines(content)}
}

// NewTextPopup creates a popup of plain text lines.
func NewTextPopup(title, text string) *Popup {
	var lines [][]chunk
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		lines = append(lines, []chunk{{text: line, style: markup.StylePlain}})
	}
	return &Popup{title: title, lines: lines}
}

// markupLines converts rendered segments into display lines. Bullet and
// heading segments occupy whole lines (their terminators were consumed
// by the renderer); inline segments flow and break on embedded
// newlines.
func markupLines(content string) [][]chunk {
	var lines [][]chunk
	var cur []chunk

	flush := func() {
		lines = append(lines, cur)
		cur = nil
	}

	for _, seg := range markup.Render(content) {
		switch seg.Style {
		case markup.StyleBullet:
			if len(cur) > 0 {
				flush()
			}
			cur = []chunk{{text: "• " + seg.Text, style: seg.Style}}
			flush()
		case markup.StyleHeading:
			if len(cur) > 0 {
				flush()
			}
			cur = []chunk{{text: seg.Text, style: seg.Style}}
			flush()
		default:
			parts := strings.Split(seg.Text, "\n")
			for i, part := range parts {
				if i > 0 {
					flush()
				}
				if part != "" {
					cur = append(cur, chunk{text: part, style: seg.Style})
				}
			}
		}
	}
	if len(cur) > 0 {
		flush()
	}
	return lines
}

// ScrollDown scrolls the popup content down one line.
func (p *Popup) ScrollDown() {
	if p.scroll < len(p.lines)-1 {
		p.scroll++
	}
}

// ScrollUp scrolls the popup content up one line.
func (p *Popup) ScrollUp() {
	if p.scroll > 0 {
		p.scroll--
	}
}

// Draw renders the popup centered on the screen.
func (p *Popup) Draw(b Backend, theme *Theme) {
	sw, sh := b.Size()

	w := sw - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = sw
	}
	h := sh - 4
	if h > len(p.lines)+4 {
		h = len(p.lines) + 4
	}
	if h < 5 {
		h = sh
	}
	x := (sw - w) / 2
	y := (sh - h) / 2

	// Box
	for by := y; by < y+h; by++ {
		for bx := x; bx < x+w; bx++ {
			b.SetCell(bx, by, ' ', theme.Popup)
		}
	}
	for bx := x; bx < x+w; bx++ {
		b.SetCell(bx, y, '─', theme.Popup)
		b.SetCell(bx, y+h-1, '─', theme.Popup)
	}
	for by := y; by < y+h; by++ {
		b.SetCell(x, by, '│', theme.Popup)
		b.SetCell(x+w-1, by, '│', theme.Popup)
	}
	b.SetCell(x, y, '┌', theme.Popup)
	b.SetCell(x+w-1, y, '┐', theme.Popup)
	b.SetCell(x, y+h-1, '└', theme.Popup)
	b.SetCell(x+w-1, y+h-1, '┘', theme.Popup)

	SetString(b, x+2, y, " "+p.title+" ", theme.PopupTitle, x+w-2)

	innerY := y + 1
	innerH := h - 2
	for i := 0; i < innerH; i++ {
		li := p.scroll + i
		if li >= len(p.lines) {
			break
		}
		col := x + 2
		for _, c := range p.lines[li] {
			col = SetString(b, col, innerY+i, c.text, theme.MarkupStyle(c.style), x+w-2)
		}
	}
}
