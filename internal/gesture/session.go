// Package gesture turns raw pointer input on the day grid into create,
// move and resize operations on time blocks. The engine is a pure state
// machine: pointer and timer events go in, effects come out, and the
// caller (the TUI layer) interprets the effects. The engine never touches
// the database, the notifier or the terminal.
package gesture

import (
	"time"

	"github.com/fenrel/daygrid/internal/timeline"
)

// Modality describes the input device class. Coarse pointers (touch)
// conflate gestures with scrolling and need the two-phase stillness+hold
// protocol; precise pointers (mouse) engage on a single drag threshold.
type Modality int

const (
	ModalityPrecise Modality = iota
	ModalityCoarse
)

// Kind is the drag classification of an active session.
type Kind int

const (
	KindNone Kind = iota
	KindCreate
	KindMove
	KindResizeStart
	KindResizeEnd
)

func (k Kind) String() string {
	switch k {
	case KindCreate:
		return "create"
	case KindMove:
		return "move"
	case KindResizeStart:
		return "resize-start-edge"
	case KindResizeEnd:
		return "resize-end-edge"
	default:
		return "none"
	}
}

// TargetKind says what the pointer went down on.
type TargetKind int

const (
	TargetGrid TargetKind = iota
	TargetEntry
	TargetGhost
)

// EntryRef identifies an existing block under the pointer, with its
// rendered vertical bounds for edge-zone hit testing. Adjustable is false
// for blocks without a concrete start/end time; gestures on those are
// ignored.
type EntryRef struct {
	ID         string
	Span       timeline.Range
	TopY       int
	BottomY    int
	Adjustable bool
}

// GhostRef identifies an imported calendar placeholder that has not been
// converted into a real entry yet.
type GhostRef struct {
	ID   string
	Span timeline.Range
}

// Target routes a pointer-down to one of the three state machines.
type Target struct {
	Kind  TargetKind
	Entry *EntryRef
	Ghost *GhostRef
}

// GridTarget is a pointer-down on empty grid space.
func GridTarget() Target { return Target{Kind: TargetGrid} }

// EntryTarget is a pointer-down on an existing block.
func EntryTarget(ref EntryRef) Target { return Target{Kind: TargetEntry, Entry: &ref} }

// GhostTarget is a pointer-down on a calendar placeholder.
func GhostTarget(ref GhostRef) Target { return Target{Kind: TargetGhost, Ghost: &ref} }

// TimerKind distinguishes the cancellable timers a session can own.
type TimerKind int

const (
	TimerStillness TimerKind = iota
	TimerHold
	TimerTap
)

// TimerID names one scheduled timer. Seq is a generation counter: a fired
// timer whose ID no longer matches the engine's pending slot is ignored,
// which is how a tea.Tick that cannot be revoked gets cancelled without
// ever mutating a destroyed session.
type TimerID struct {
	Kind TimerKind
	Seq  uint64
}

// Session is the mutable record of one in-flight pointer interaction.
// The engine owns exactly one at a time; it is destroyed on commit,
// cancel or teardown.
type Session struct {
	OriginY  int
	CurrentY int

	// StartedAt is bookkeeping only; timer durations are scheduled
	// independently of it.
	StartedAt time.Time

	Modality Modality
	Kind     Kind

	HasMoved           bool
	StillnessConfirmed bool
	HoldConfirmed      bool

	Entry *EntryRef
	Ghost *GhostRef

	// Original is the range snapshot taken at gesture start, the baseline
	// for all delta math.
	Original timeline.Range

	// Proposed is the live range computed from the latest move while the
	// session is engaged.
	Proposed timeline.Range
}

// Engaged reports whether live tracking has begun.
func (s *Session) Engaged() bool { return s.HoldConfirmed }

func (s *Session) displacement() int {
	d := s.CurrentY - s.OriginY
	if d < 0 {
		return -d
	}
	return d
}

func (s *Session) previewEntryID() string {
	if s.Entry != nil {
		return s.Entry.ID
	}
	return ""
}
