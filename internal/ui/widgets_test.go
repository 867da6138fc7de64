package ui

import (
	"strings"
	"testing"

	"github.com/dshills/regexplore/internal/config"
	"github.com/dshills/regexplore/internal/match"
	"github.com/dshills/regexplore/internal/samples"
)

func testTheme() *Theme {
	return NewTheme(config.Default().Theme)
}

func contains(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}

func TestPatternBarEditing(t *testing.T) {
	p := NewPatternBar("[A-Z]")

	if p.Text() != "[A-Z]" {
		t.Errorf("Text() = %q", p.Text())
	}

	p.MoveHome()
	p.InsertRune('^')
	if p.Text() != "^[A-Z]" {
		t.Errorf("Text() = %q, want ^[A-Z]", p.Text())
	}

	p.MoveEnd()
	p.Backspace()
	if p.Text() != "^[A-Z" {
		t.Errorf("Text() = %q, want ^[A-Z", p.Text())
	}

	p.SetText("abc")
	if p.Text() != "abc" || p.cursor != 3 {
		t.Errorf("SetText: text %q cursor %d", p.Text(), p.cursor)
	}
}

func TestPatternBarDrawFramesWithSlashes(t *testing.T) {
	b := NewBufferBackend(20, 2)
	p := NewPatternBar("ab")

	p.Draw(b, 0, 0, 20, testTheme(), false)
	if got := b.Line(0); got != "/ab/" {
		t.Errorf("Line(0) = %q, want /ab/", got)
	}
}

func TestFlagBarToggle(t *testing.T) {
	f := NewFlagBar()
	flags := match.FlagSet{}

	f.Toggle(&flags)
	if !flags.Global {
		t.Error("toggle at position 0 should flip Global")
	}

	f.MoveRight()
	f.Toggle(&flags)
	if !flags.IgnoreCase {
		t.Error("toggle at position 1 should flip IgnoreCase")
	}

	f.Toggle(&flags)
	if flags.IgnoreCase {
		t.Error("second toggle should flip IgnoreCase back")
	}
}

func TestFlagBarToggleLetter(t *testing.T) {
	f := NewFlagBar()
	flags := match.FlagSet{}

	for _, r := range "gims" {
		if !f.ToggleLetter(&flags, r) {
			t.Errorf("ToggleLetter(%q) = false, want true", r)
		}
	}
	if flags.Letters() != "gims" {
		t.Errorf("Letters() = %q, want gims", flags.Letters())
	}
	if f.ToggleLetter(&flags, 'x') {
		t.Error("ToggleLetter('x') should be rejected")
	}
}

func TestFlagBarDraw(t *testing.T) {
	b := NewBufferBackend(30, 2)
	f := NewFlagBar()

	f.Draw(b, 0, 0, 30, match.ParseFlags("gi"), testTheme(), false)
	if got := b.Line(0); got != "[g] [i] [m] [s]" {
		t.Errorf("Line(0) = %q", got)
	}
}

func TestStatusLine(t *testing.T) {
	s := NewStatusLine()

	if s.Message() != "Ready!" {
		t.Errorf("initial message = %q, want Ready!", s.Message())
	}

	s.SetError("No pattern provided")
	if s.Kind() != MessageError {
		t.Error("SetError should set error kind")
	}

	s.SetInfo("3 matches")
	if s.Kind() != MessageInfo || s.Message() != "3 matches" {
		t.Errorf("status = (%q, %v)", s.Message(), s.Kind())
	}

	b := NewBufferBackend(30, 1)
	theme := testTheme()
	s.Draw(b, 0, 0, 30, theme)
	if got := b.Line(0); got != "3 matches" {
		t.Errorf("Line(0) = %q", got)
	}
	if b.StyleAt(0, 0) != theme.StatusInfo {
		t.Error("info message should use the info style")
	}
}

func TestSampleMenuNavigation(t *testing.T) {
	m := NewSampleMenu(samples.Builtin())

	m.MoveUp()
	if m.Selected() != 0 {
		t.Errorf("Selected() = %d, want clamp at 0", m.Selected())
	}
	for i := 0; i < 10; i++ {
		m.MoveDown()
	}
	if m.Selected() != m.Len()-1 {
		t.Errorf("Selected() = %d, want clamp at %d", m.Selected(), m.Len()-1)
	}
}

func TestSampleMenuDraw(t *testing.T) {
	b := NewBufferBackend(80, 24)
	m := NewSampleMenu(samples.Builtin())

	m.Draw(b, testTheme())

	var found bool
	for y := 0; y < 24; y++ {
		if contains(b.Line(y), "Find capital letters") {
			found = true
		}
	}
	if !found {
		t.Error("menu should list the first builtin sample")
	}
}
