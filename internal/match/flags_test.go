package match

import (
	"testing"

	"github.com/dlclark/regexp2"
)

func TestFlagSetOptions(t *testing.T) {
	tests := []struct {
		name  string
		flags FlagSet
		want  regexp2.RegexOptions
	}{
		{"none", FlagSet{}, regexp2.None},
		{"global only is not an engine option", FlagSet{Global: true}, regexp2.None},
		{"ignore case", FlagSet{IgnoreCase: true}, regexp2.IgnoreCase},
		{"multiline", FlagSet{Multiline: true}, regexp2.Multiline},
		{"dotall", FlagSet{DotAll: true}, regexp2.Singleline},
		{
			"all engine flags",
			FlagSet{IgnoreCase: true, Multiline: true, DotAll: true},
			regexp2.IgnoreCase | regexp2.Multiline | regexp2.Singleline,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.flags.Options(); got != tt.want {
				t.Errorf("Options() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFlagLetters(t *testing.T) {
	tests := []struct {
		letters string
		want    FlagSet
	}{
		{"", FlagSet{}},
		{"g", FlagSet{Global: true}},
		{"gi", FlagSet{Global: true, IgnoreCase: true}},
		{"gis", FlagSet{Global: true, IgnoreCase: true, DotAll: true}},
		{"gims", FlagSet{Global: true, IgnoreCase: true, Multiline: true, DotAll: true}},
		{"m", FlagSet{Multiline: true}},
	}

	for _, tt := range tests {
		t.Run("parse "+tt.letters, func(t *testing.T) {
			got := ParseFlags(tt.letters)
			if got != tt.want {
				t.Errorf("ParseFlags(%q) = %+v, want %+v", tt.letters, got, tt.want)
			}
			if got.Letters() != tt.letters {
				t.Errorf("Letters() = %q, want round-trip of %q", got.Letters(), tt.letters)
			}
		})
	}
}

func TestParseFlagsIgnoresUnknown(t *testing.T) {
	got := ParseFlags("gxi")
	want := FlagSet{Global: true, IgnoreCase: true}
	if got != want {
		t.Errorf("ParseFlags(\"gxi\") = %+v, want %+v", got, want)
	}
}
