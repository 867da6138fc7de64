package app

import "github.com/dshills/regexplore/internal/match"

// defaultPattern seeds the pattern bar on startup.
const defaultPattern = "[A-Z]"

// defaultContent seeds the content box so the tool is usable before any
// text is pasted in.
const defaultContent = `There once was a man from Nantucket
Who kept kept all his cash in a bucket.
    But his daughter, named Nan,
    Ran away with a man
And as for the bucket, Nantucket.`

// SessionState holds the mutable interactive state: the current
// pattern, flags, content, and the result of the last search. It is
// owned by the Application and passed explicitly into handlers; the
// core packages never reach into it.
type SessionState struct {
	Pattern string
	Flags   match.FlagSet
	Content string

	// MatchCount and Spans are the last search result. Spans refer to
	// Content as it was at search time; any edit clears them via the
	// content view.
	MatchCount int
	Spans      []match.Span
}

// NewSessionState creates the startup session: the default pattern,
// global flag set, and the sample limerick.
func NewSessionState() *SessionState {
	return &SessionState{
		Pattern: defaultPattern,
		Flags:   match.FlagSet{Global: true},
		Content: defaultContent,
	}
}

// SetResult records a search outcome.
func (s *SessionState) SetResult(res match.Result) {
	s.MatchCount = res.Count
	s.Spans = res.Spans
}

// ClearResult drops the last search outcome.
func (s *SessionState) ClearResult() {
	s.MatchCount = 0
	s.Spans = nil
}
