package ui

import (
	"reflect"
	"testing"

	"github.com/dshills/regexplore/internal/config"
	"github.com/dshills/regexplore/internal/match"
)

func TestContentViewEditing(t *testing.T) {
	v := NewContentView("ab")

	v.MoveRight()
	v.InsertRune('x')
	if v.Text() != "axb" {
		t.Errorf("Text() = %q, want axb", v.Text())
	}

	v.Backspace()
	if v.Text() != "ab" {
		t.Errorf("after Backspace Text() = %q, want ab", v.Text())
	}

	v.Delete()
	if v.Text() != "a" {
		t.Errorf("after Delete Text() = %q, want a", v.Text())
	}
}

func TestContentViewEditInvalidatesSpans(t *testing.T) {
	v := NewContentView("abc")
	v.SetSpans([]match.Span{{Start: 0, End: 1, Index: 1}})

	v.InsertRune('x')
	if len(v.Spans()) != 0 {
		t.Error("editing must drop highlights for the previous content")
	}
}

func TestContentViewSetSpansReplaces(t *testing.T) {
	v := NewContentView("abcdef")

	first := []match.Span{{Start: 0, End: 2, Index: 1}}
	second := []match.Span{{Start: 3, End: 4, Index: 1}}

	v.SetSpans(first)
	v.SetSpans(second)
	if !reflect.DeepEqual(v.Spans(), second) {
		t.Errorf("Spans() = %v, want replacement set %v", v.Spans(), second)
	}

	// Applying the same set twice is the same as applying it once.
	v.SetSpans(second)
	if !reflect.DeepEqual(v.Spans(), second) {
		t.Errorf("repeated SetSpans changed state: %v", v.Spans())
	}
}

func TestContentViewDrawAppliesAlternatingStyles(t *testing.T) {
	theme := NewTheme(config.Default().Theme)
	b := NewBufferBackend(40, 10)
	v := NewContentView("aa bb cc")
	v.SetPadding(0)

	v.SetSpans([]match.Span{
		{Start: 0, End: 2, Index: 1},
		{Start: 3, End: 5, Index: 2},
		{Start: 6, End: 8, Index: 3},
	})
	v.Draw(b, 0, 0, 40, 10, theme, false)

	if got := b.StyleAt(0, 0); got != theme.HighlightStyle(1) {
		t.Error("first span should use the index-1 highlight style")
	}
	if got := b.StyleAt(3, 0); got != theme.HighlightStyle(2) {
		t.Error("second span should use the index-2 highlight style")
	}
	if got := b.StyleAt(6, 0); got != theme.HighlightStyle(3) {
		t.Error("third span should alternate back to the index-1 style")
	}
	if got := b.StyleAt(2, 0); got != theme.Base {
		t.Error("gap between spans should be unstyled")
	}
	if b.Line(0) != "aa bb cc" {
		t.Errorf("Line(0) = %q, want content", b.Line(0))
	}
}

func TestContentViewDrawIdempotent(t *testing.T) {
	theme := NewTheme(config.Default().Theme)
	v := NewContentView("match match")
	spans := []match.Span{
		{Start: 0, End: 5, Index: 1},
		{Start: 6, End: 11, Index: 2},
	}

	render := func() *BufferBackend {
		b := NewBufferBackend(40, 5)
		v.SetSpans(spans)
		v.Draw(b, 0, 0, 40, 5, theme, false)
		return b
	}

	b1 := render()
	b2 := render()
	for x := 0; x < 12; x++ {
		if b1.StyleAt(x, 0) != b2.StyleAt(x, 0) {
			t.Fatalf("styles differ at column %d after repeated apply", x)
		}
	}
}

func TestContentViewLayoutNewlines(t *testing.T) {
	v := NewContentView("one\ntwo\nthree")
	rows := v.layoutRows(80)

	want := []row{{0, 3}, {4, 7}, {8, 13}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("layoutRows = %v, want %v", rows, want)
	}
}

func TestContentViewLayoutWrap(t *testing.T) {
	v := NewContentView("abcdefghij")
	v.SetWrap(true)

	rows := v.layoutRows(4)
	want := []row{{0, 4}, {4, 8}, {8, 10}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("layoutRows = %v, want %v", rows, want)
	}
}

func TestContentViewLayoutNoWrap(t *testing.T) {
	v := NewContentView("abcdefghij")
	v.SetWrap(false)

	rows := v.layoutRows(4)
	want := []row{{0, 10}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("layoutRows = %v, want %v", rows, want)
	}
}

func TestContentViewVerticalMovement(t *testing.T) {
	v := NewContentView("one\ntwo\nthree")
	v.lastWidth = 80

	v.MoveDown()
	if v.cursor != 4 {
		t.Errorf("cursor = %d after MoveDown, want 4", v.cursor)
	}
	v.MoveDown()
	if v.cursor != 8 {
		t.Errorf("cursor = %d after second MoveDown, want 8", v.cursor)
	}
	v.MoveUp()
	if v.cursor != 4 {
		t.Errorf("cursor = %d after MoveUp, want 4", v.cursor)
	}
	v.MoveEnd()
	if v.cursor != 7 {
		t.Errorf("cursor = %d after MoveEnd, want 7", v.cursor)
	}
	v.MoveHome()
	if v.cursor != 4 {
		t.Errorf("cursor = %d after MoveHome, want 4", v.cursor)
	}
}

func TestContentViewPaddingClamp(t *testing.T) {
	v := NewContentView("")
	v.SetPadding(99)
	if v.Padding() != 3 {
		t.Errorf("Padding() = %d, want clamp to 3", v.Padding())
	}
	v.SetPadding(-1)
	if v.Padding() != 0 {
		t.Errorf("Padding() = %d, want clamp to 0", v.Padding())
	}
}
