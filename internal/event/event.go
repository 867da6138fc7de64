// Package event provides the named UI events and the synchronous
// dispatcher that routes them to registered command handlers. The tool
// is single-threaded by design; there is no async delivery, no queue and
// no cancellation beyond the context passed to Dispatch.
package event

import "time"

// Name identifies a UI event.
type Name string

// Events the application dispatches.
const (
	// FindMatches runs the search over the current session inputs.
	FindMatches Name = "ui.find_matches"

	// ApplySample overwrites pattern and flags from a library entry.
	// Payload: samples index (int).
	ApplySample Name = "ui.apply_sample"

	// ShowHelp opens the formatted help popup.
	ShowHelp Name = "ui.show_help"

	// ShowCode opens the generated-code popup.
	ShowCode Name = "ui.show_code"

	// AdjustPadding grows or shrinks the content padding.
	// Payload: delta (int).
	AdjustPadding Name = "ui.adjust_padding"

	// Quit requests application shutdown.
	Quit Name = "ui.quit"

	// ConfigReloaded announces a live configuration reload.
	ConfigReloaded Name = "config.reloaded"
)

// Event is one dispatched occurrence of a named event.
type Event struct {
	Name    Name
	Payload any
	Time    time.Time
}

// New creates an event stamped with the current time.
func New(name Name, payload any) Event {
	return Event{Name: name, Payload: payload, Time: time.Now()}
}
