package ui

// PatternBar is the single-line pattern entry, drawn between slashes
// the way the pattern would be written in source.
type PatternBar struct {
	text   []rune
	cursor int
}

// NewPatternBar creates a pattern bar seeded with a pattern.
func NewPatternBar(initial string) *PatternBar {
	return &PatternBar{text: []rune(initial), cursor: len([]rune(initial))}
}

// Text returns the current pattern.
func (p *PatternBar) Text() string {
	return string(p.text)
}

// SetText replaces the pattern and moves the cursor to the end.
func (p *PatternBar) SetText(s string) {
	p.text = []rune(s)
	p.cursor = len(p.text)
}

// InsertRune inserts r at the cursor.
func (p *PatternBar) InsertRune(r rune) {
	p.text = append(p.text[:p.cursor:p.cursor], append([]rune{r}, p.text[p.cursor:]...)...)
	p.cursor++
}

// Backspace deletes the rune before the cursor.
func (p *PatternBar) Backspace() {
	if p.cursor == 0 {
		return
	}
	p.text = append(p.text[:p.cursor-1:p.cursor-1], p.text[p.cursor:]...)
	p.cursor--
}

// MoveLeft moves the cursor one rune left.
func (p *PatternBar) MoveLeft() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// MoveRight moves the cursor one rune right.
func (p *PatternBar) MoveRight() {
	if p.cursor < len(p.text) {
		p.cursor++
	}
}

// MoveHome moves the cursor to the start.
func (p *PatternBar) MoveHome() {
	p.cursor = 0
}

// MoveEnd moves the cursor past the last rune.
func (p *PatternBar) MoveEnd() {
	p.cursor = len(p.text)
}

// Draw renders the bar on row y.
func (p *PatternBar) Draw(b Backend, x, y, w int, theme *Theme, focused bool) {
	limit := x + w
	b.SetCell(x, y, '/', theme.Base)
	col := x + 1
	for i, r := range p.text {
		if col >= limit-1 {
			break
		}
		b.SetCell(col, y, r, theme.PatternBar)
		if focused && i == p.cursor {
			b.ShowCursor(col, y)
		}
		col++
	}
	if focused && p.cursor == len(p.text) && col < limit {
		b.ShowCursor(col, y)
	}
	if col < limit {
		b.SetCell(col, y, '/', theme.Base)
	}
}
