package match

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// FlagSet holds the four matching flags the tool exposes. Global controls
// how the scan terminates; the other three map directly to engine options.
type FlagSet struct {
	// Global finds every non-overlapping match instead of only the first.
	Global bool

	// IgnoreCase makes matching case-insensitive.
	IgnoreCase bool

	// Multiline makes ^ and $ match at line boundaries.
	Multiline bool

	// DotAll makes . match newline characters.
	DotAll bool
}

// Options returns the engine options for the three engine-level flags.
// Global is not an engine option; it is handled by the scan loop.
func (f FlagSet) Options() regexp2.RegexOptions {
	opts := regexp2.None
	if f.IgnoreCase {
		opts |= regexp2.IgnoreCase
	}
	if f.Multiline {
		opts |= regexp2.Multiline
	}
	if f.DotAll {
		opts |= regexp2.Singleline
	}
	return opts
}

// Letters returns the flag set in the compact "gims" letter form used by
// the sample library and the status line. Letters always appear in the
// order g, i, m, s.
func (f FlagSet) Letters() string {
	var sb strings.Builder
	if f.Global {
		sb.WriteByte('g')
	}
	if f.IgnoreCase {
		sb.WriteByte('i')
	}
	if f.Multiline {
		sb.WriteByte('m')
	}
	if f.DotAll {
		sb.WriteByte('s')
	}
	return sb.String()
}

// ParseFlags builds a FlagSet from letter form. Unknown letters are
// ignored so older sample files stay loadable.
func ParseFlags(letters string) FlagSet {
	return FlagSet{
		Global:     strings.ContainsRune(letters, 'g'),
		IgnoreCase: strings.ContainsRune(letters, 'i'),
		Multiline:  strings.ContainsRune(letters, 'm'),
		DotAll:     strings.ContainsRune(letters, 's'),
	}
}
