// Package markup renders the tiny inline dialect used by the help popup:
// bullet lines ("- "), heading lines ("# "), bold ("**...**") and italic
// ("_..._"). The output is an ordered list of styled segments; anything
// that is not one of the four constructs comes back as plain text.
//
// Rendering is a single left-to-right pass over one combined pattern.
// Construct priority at a shared start position is the alternation order:
// bullet, heading, bold, italic. There is no nesting and no re-scan of
// emitted text.
package markup

import "github.com/dlclark/regexp2"

// Style classifies a rendered segment.
type Style int

// Segment styles, in the priority order of their constructs.
const (
	StylePlain Style = iota
	StyleBullet
	StyleHeading
	StyleBold
	StyleItalic
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case StylePlain:
		return "plain"
	case StyleBullet:
		return "bullet"
	case StyleHeading:
		return "heading"
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	default:
		return "unknown"
	}
}

// Segment is a contiguous run of output text with exactly one style.
// Delimiters and line markers are already stripped from Text.
type Segment struct {
	Text  string
	Style Style
}

// markupRe is the combined scan pattern. Group numbers encode the
// construct: 1 bullet, 2 heading, 3 bold, 4 italic. The line captures
// exclude \r and \n so a CRLF terminator is consumed, not captured; the
// inline constructs forbid their own delimiter inside the body so a
// stray "*" or "_" cannot extend a span.
var markupRe = regexp2.MustCompile(
	`^- ([^\r\n]*)\r?\n?|^# ([^\r\n]*)\r?\n?|\*\*([^*]+?)\*\*|_([^_]+?)_`,
	regexp2.Multiline,
)

// groupStyles maps capture group number to segment style.
var groupStyles = [...]Style{0, StyleBullet, StyleHeading, StyleBold, StyleItalic}

// Render converts content into styled segments. It is a total function:
// malformed or unmatched markup falls back to plain text, never an
// error. Gaps between constructs and trailing text are emitted as plain
// segments, skipped when empty.
func Render(content string) []Segment {
	runes := []rune(content)
	var segs []Segment

	last := 0
	m, err := markupRe.FindStringMatch(content)
	for err == nil && m != nil {
		if m.Index > last {
			segs = append(segs, Segment{Text: string(runes[last:m.Index]), Style: StylePlain})
		}
		segs = append(segs, constructSegment(m))
		last = m.Index + m.Length
		m, err = markupRe.FindNextMatch(m)
	}
	if last < len(runes) {
		segs = append(segs, Segment{Text: string(runes[last:]), Style: StylePlain})
	}
	return segs
}

// constructSegment picks the capture group that participated in the
// match and returns its text under the construct's style.
func constructSegment(m *regexp2.Match) Segment {
	for n := 1; n < len(groupStyles); n++ {
		g := m.GroupByNumber(n)
		if g != nil && len(g.Captures) > 0 {
			return Segment{Text: g.Captures[0].String(), Style: groupStyles[n]}
		}
	}
	// Unreachable while the pattern and group table agree; degrade to
	// plain rather than drop text.
	return Segment{Text: m.String(), Style: StylePlain}
}
