package match

import (
	"strings"
	"testing"
)

func TestGenerateSnippetGlobal(t *testing.T) {
	got := GenerateSnippet("[A-Z]", FlagSet{Global: true})

	if !strings.Contains(got, "regexp2.Compile(`[A-Z]`, regexp2.None)") {
		t.Errorf("snippet missing compile call:\n%s", got)
	}
	if !strings.Contains(got, "re.FindNextMatch(m)") {
		t.Errorf("global snippet should enumerate all matches:\n%s", got)
	}
}

func TestGenerateSnippetFirstOnly(t *testing.T) {
	got := GenerateSnippet("[A-Z]", FlagSet{})

	if strings.Contains(got, "FindNextMatch") {
		t.Errorf("first-only snippet should not loop:\n%s", got)
	}
	if !strings.Contains(got, "re.FindStringMatch(content)") {
		t.Errorf("snippet missing first-match call:\n%s", got)
	}
}

func TestGenerateSnippetOptions(t *testing.T) {
	tests := []struct {
		name  string
		flags FlagSet
		want  string
	}{
		{"none", FlagSet{Global: true}, "regexp2.None"},
		{"single", FlagSet{IgnoreCase: true}, "regexp2.IgnoreCase"},
		{
			"joined by or",
			FlagSet{IgnoreCase: true, DotAll: true},
			"regexp2.IgnoreCase | regexp2.Singleline",
		},
		{
			"all three",
			FlagSet{IgnoreCase: true, Multiline: true, DotAll: true},
			"regexp2.IgnoreCase | regexp2.Multiline | regexp2.Singleline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateSnippet("x", tt.flags)
			if !strings.Contains(got, tt.want) {
				t.Errorf("snippet missing %q:\n%s", tt.want, got)
			}
		})
	}
}

func TestGenerateSnippetBackquotePattern(t *testing.T) {
	got := GenerateSnippet("a`b", FlagSet{})

	if strings.Contains(got, "`a`b`") {
		t.Errorf("backquote pattern must not use a raw literal:\n%s", got)
	}
	if !strings.Contains(got, `"a`+"`"+`b"`) {
		t.Errorf("expected quoted literal for backquote pattern:\n%s", got)
	}
}
