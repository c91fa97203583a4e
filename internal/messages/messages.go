package messages

import "github.com/cheerioskun/slotpick/internal/timeline"

// SelectionChangedMsg is sent after the selection box moved, resized or was released
type SelectionChangedMsg struct {
	State    timeline.State // Geometry, validity and interaction mode
	Label    string         // "h:mm am a h:mm am"
	Duration int            // Rounded minutes
}

// TickChangedMsg is sent when the user picks a value on the tick slider
type TickChangedMsg struct {
	Value           int    // Selected tick
	SourceComponent string // Which component sent this
}

// LayoutErrorMsg reports a layout the timeline could not adopt, e.g. a zero-width terminal
type LayoutErrorMsg struct {
	Err error
}
