// Package match implements the match-and-highlight core: it compiles a
// user-supplied pattern against the regexp2 engine and reports every
// non-overlapping match as a character-offset span.
//
// Offsets are rune offsets into the content string, the same addressing
// the presentation layer uses to place highlights. The package is pure:
// it reads nothing but its arguments and retains no state between calls.
package match

import (
	"time"

	"github.com/dlclark/regexp2"
)

// DefaultTimeout bounds a single search. Backtracking patterns can blow
// up on pathological input; expiry surfaces as a MatchError rather than
// a frozen interface.
const DefaultTimeout = 2 * time.Second

// Span is a half-open interval [Start, End) of rune offsets in the
// searched content. Index is the 1-based order of discovery and selects
// the alternating highlight style (Index mod 2).
type Span struct {
	Start int
	End   int
	Index int
}

// Result holds the outcome of a successful search.
type Result struct {
	// Count is the number of spans found. With Global unset it is 0 or 1
	// even when more matches exist.
	Count int

	// Spans are the matches in source order, non-overlapping, strictly
	// increasing in Start.
	Spans []Span
}

// Finder runs pattern searches. The zero value is not usable; call
// NewFinder.
type Finder struct {
	timeout time.Duration
}

// FinderOption configures a Finder.
type FinderOption func(*Finder)

// WithTimeout overrides the per-search timeout. Zero or negative
// disables the bound.
func WithTimeout(d time.Duration) FinderOption {
	return func(f *Finder) {
		f.timeout = d
	}
}

// NewFinder creates a Finder with the default search timeout.
func NewFinder(opts ...FinderOption) *Finder {
	f := &Finder{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FindMatches scans content left to right with the given pattern and
// flags. With flags.Global set it scans to exhaustion; otherwise it
// stops after the first match. Compile and search failures return a
// *MatchError; the error never carries partial spans.
//
// Empty pattern and empty content are caller-enforced preconditions:
// the application layer rejects them before this function is reached.
func (f *Finder) FindMatches(pattern string, flags FlagSet, content string) (Result, error) {
	re, err := regexp2.Compile(pattern, flags.Options())
	if err != nil {
		return Result{}, &MatchError{Pattern: pattern, Err: err}
	}
	if f.timeout > 0 {
		re.MatchTimeout = f.timeout
	}

	var spans []Span
	m, err := re.FindStringMatch(content)
	for err == nil && m != nil {
		spans = append(spans, Span{
			Start: m.Index,
			End:   m.Index + m.Length,
			Index: len(spans) + 1,
		})
		if !flags.Global {
			break
		}
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return Result{}, &MatchError{Pattern: pattern, Err: err}
	}

	return Result{Count: len(spans), Spans: spans}, nil
}
