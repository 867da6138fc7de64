package ui

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/regexplore/internal/config"
	"github.com/dshills/regexplore/internal/markup"
)

// Theme holds the resolved styles for every widget.
type Theme struct {
	Base        tcell.Style
	PatternBar  tcell.Style
	FlagOn      tcell.Style
	FlagOff     tcell.Style
	StatusInfo  tcell.Style
	StatusError tcell.Style
	Popup       tcell.Style
	PopupTitle  tcell.Style
	MenuItem    tcell.Style
	MenuCursor  tcell.Style

	// highlights holds the two alternating match styles in config
	// order.
	highlights [2]tcell.Style

	heading tcell.Style
	bold    tcell.Style
	italic  tcell.Style
	bullet  tcell.Style
}

// NewTheme resolves a theme from configuration. Colors that fail to
// parse fall back to the defaults; theme building never fails.
func NewTheme(cfg config.ThemeConfig) *Theme {
	def := config.Default().Theme

	hl := cfg.Highlights
	if len(hl) < 2 {
		hl = def.Highlights
	}
	first := parseHex(hl[0], parseHex(def.Highlights[0], tcell.ColorAqua))
	second := parseHex(hl[1], parseHex(def.Highlights[1], tcell.ColorYellow))
	errColor := parseHex(cfg.ErrorText, tcell.ColorRed)
	headColor := parseHex(cfg.Heading, tcell.ColorSkyblue)

	base := tcell.StyleDefault
	return &Theme{
		Base:        base,
		PatternBar:  base.Bold(true),
		FlagOn:      base.Reverse(true),
		FlagOff:     base.Dim(true),
		StatusInfo:  base,
		StatusError: base.Foreground(errColor),
		Popup:       base,
		PopupTitle:  base.Bold(true).Underline(true),
		MenuItem:    base,
		MenuCursor:  base.Reverse(true),
		highlights: [2]tcell.Style{
			base.Background(first).Foreground(tcell.ColorBlack),
			base.Background(second).Foreground(tcell.ColorBlack),
		},
		heading: base.Foreground(headColor).Bold(true).Underline(true),
		bold:    base.Bold(true),
		italic:  base.Italic(true),
		bullet:  base,
	}
}

// HighlightStyle returns the style for the match with the given 1-based
// discovery index. Index 1 takes the second configured color, index 2
// the first, alternating from there. The reference tool behaves this
// way (index mod 2 over a two-color list); kept as-is.
func (t *Theme) HighlightStyle(index int) tcell.Style {
	if index < 0 {
		index = -index
	}
	return t.highlights[index%2]
}

// MarkupStyle maps a markup segment style to a cell style.
func (t *Theme) MarkupStyle(s markup.Style) tcell.Style {
	switch s {
	case markup.StyleHeading:
		return t.heading
	case markup.StyleBold:
		return t.bold
	case markup.StyleItalic:
		return t.italic
	case markup.StyleBullet:
		return t.bullet
	default:
		return t.Popup
	}
}

// parseHex parses a #rrggbb string, returning fallback on failure.
func parseHex(s string, fallback tcell.Color) tcell.Color {
	if s == "" {
		return fallback
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return fallback
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
