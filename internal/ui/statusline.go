package ui

// MessageKind classifies a status message.
type MessageKind int

const (
	// MessageInfo is the normal status presentation.
	MessageInfo MessageKind = iota

	// MessageError gets the error color treatment.
	MessageError
)

// StatusLine shows one message at the bottom of the screen.
type StatusLine struct {
	message string
	kind    MessageKind
}

// NewStatusLine creates a status line with the ready message.
func NewStatusLine() *StatusLine {
	return &StatusLine{message: "Ready!"}
}

// SetInfo replaces the message with normal styling.
func (s *StatusLine) SetInfo(message string) {
	s.message = message
	s.kind = MessageInfo
}

// SetError replaces the message with error styling.
func (s *StatusLine) SetError(message string) {
	s.message = message
	s.kind = MessageError
}

// Message returns the current message.
func (s *StatusLine) Message() string {
	return s.message
}

// Kind returns the current message kind.
func (s *StatusLine) Kind() MessageKind {
	return s.kind
}

// Draw renders the message on row y.
func (s *StatusLine) Draw(b Backend, x, y, w int, theme *Theme) {
	style := theme.StatusInfo
	if s.kind == MessageError {
		style = theme.StatusError
	}
	SetString(b, x, y, s.message, style, x+w)
}
