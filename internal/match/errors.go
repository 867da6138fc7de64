package match

import "fmt"

// MatchError reports a pattern that failed to compile or a search that
// failed inside the engine (including timeout on catastrophic input).
// It is surfaced to the user as a status message; it never terminates
// the application.
type MatchError struct {
	// Pattern is the pattern that caused the failure.
	Pattern string

	// Err is the underlying engine error.
	Err error
}

func (e *MatchError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("pattern /%s/: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying engine error.
func (e *MatchError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
