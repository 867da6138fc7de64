// Package samples provides the sample-pattern library: a static builtin
// list plus optional user samples loaded from a Lua script.
package samples

import "github.com/dshills/regexplore/internal/match"

// Sample is one library entry. Selecting it overwrites the current
// pattern and the entire flag set; nothing is merged.
type Sample struct {
	Description string
	Pattern     string
	Flags       match.FlagSet
}

// Builtin returns the builtin library in menu order.
func Builtin() []Sample {
	return []Sample{
		{"Find capital letters", "[A-Z]", match.ParseFlags("g")},
		{"Find groups of 4 or more letters", "[A-Z]{4,}", match.ParseFlags("gi")},
		{"Find North American phone numbers, eg +1-416-123-4567", `(?:\+1-)?\d{3}-\d{3}-\d{4}`, match.ParseFlags("g")},
		{"Find repeated words", `\b([A-Z]+) +\1\b`, match.ParseFlags("gi")},
		{"Find words appearing twice", `\b([A-Z]+)\b(?=.*?\1\b)`, match.ParseFlags("gis")},
	}
}
