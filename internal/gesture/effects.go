package gesture

import (
	"time"

	"github.com/fenrel/daygrid/internal/timeline"
)

// Effect is an instruction to the host UI. Each engine call returns the
// effects of that event in order; the engine itself performs none of
// them. A completed gesture yields at most one commit effect.
type Effect interface{ isEffect() }

// ScheduleTimer asks the host to deliver TimerFired(ID) after the delay.
// The host cannot cancel a scheduled timer; the engine discards stale
// ones by generation instead.
type ScheduleTimer struct {
	ID    TimerID
	After time.Duration
}

// Haptic requests one best-effort feedback pulse.
type Haptic struct{}

// CaptureInput marks the moment the gesture owns the pointer: from here
// on, moves must not reach native scrolling.
type CaptureInput struct{}

// ReleaseInput undoes CaptureInput at session end.
type ReleaseInput struct{}

// ShowPreview replaces the drag preview with the session's current
// proposed range.
type ShowPreview struct {
	Preview timeline.Preview
}

// ClearPreview removes the drag preview.
type ClearPreview struct{}

// CreateEntry is the terminal output of a creation gesture. GhostID is
// set when the gesture was seeded from a calendar placeholder, so the
// caller can retire the placeholder once the real entry exists.
type CreateEntry struct {
	Span    timeline.Range
	GhostID string
}

// UpdateEntry is the terminal output of a committed adjustment. The whole
// range is replaced; there is no partial patch.
type UpdateEntry struct {
	EntryID         string
	Span            timeline.Range
	DurationMinutes int
}

// RejectReason explains a dropped adjustment.
type RejectReason int

const (
	// RejectTooShort means the final duration fell below the configured
	// minimum.
	RejectTooShort RejectReason = iota
)

// UpdateRejected reports an adjustment the engine refused to commit, so
// the caller can decide whether to tell the user.
type UpdateRejected struct {
	EntryID string
	Span    timeline.Range
	Reason  RejectReason
}

// OpenEntry is emitted when an adjustment gesture resolves as a tap: the
// entry's detail view should open, no time change.
type OpenEntry struct {
	EntryID string
}

// OpenGhost is emitted when a ghost gesture resolves as a tap: the
// import confirmation dialog should open.
type OpenGhost struct {
	GhostID string
}

func (ScheduleTimer) isEffect()  {}
func (Haptic) isEffect()         {}
func (CaptureInput) isEffect()   {}
func (ReleaseInput) isEffect()   {}
func (ShowPreview) isEffect()    {}
func (ClearPreview) isEffect()   {}
func (CreateEntry) isEffect()    {}
func (UpdateEntry) isEffect()    {}
func (UpdateRejected) isEffect() {}
func (OpenEntry) isEffect()      {}
func (OpenGhost) isEffect()      {}
