package gesture

import "time"

// Mapper is the coordinate-time conversion the engine depends on. The
// timeline package provides the concrete implementation.
type Mapper interface {
	MinutesAt(y int) int
	DeltaMinutes(dy int) int
}

type flow int

const (
	flowNone flow = iota
	flowCreate
	flowAdjust
	flowGhost
)

type pendingTimer struct {
	kind TimerKind
	seq  uint64
}

// Engine routes pointer events to the create, adjust and ghost state
// machines and owns the single live Session. It runs on the host's
// single-threaded event loop; there is no internal locking.
type Engine struct {
	cfg    Config
	mapper Mapper
	now    func() time.Time

	session  *Session
	flow     flow
	pending  *pendingTimer
	seq      uint64
	captured bool
}

// NewEngine builds an engine with the given configuration and mapper.
func NewEngine(cfg Config, mapper Mapper) *Engine {
	return &Engine{cfg: cfg, mapper: mapper, now: time.Now}
}

// SetMapper swaps the coordinate mapper, typically after a scroll or
// resize. Only legal between gestures; a live session keeps the mapper it
// started with implicitly because scroll is suppressed while captured.
func (e *Engine) SetMapper(m Mapper) {
	if e.session == nil {
		e.mapper = m
	}
}

// SetClock overrides the session timestamp source, for tests.
func (e *Engine) SetClock(now func() time.Time) { e.now = now }

// Active reports whether a session is live.
func (e *Engine) Active() bool { return e.session != nil }

// Session exposes the live session for rendering decisions; nil when
// idle. Callers must not mutate it.
func (e *Engine) Session() *Session { return e.session }

// PointerDown starts a session for the given target. A pointer-down that
// cannot be classified, or that arrives while a session is live, is
// ignored.
func (e *Engine) PointerDown(t Target, y int) []Effect {
	if e.session != nil {
		return nil
	}
	switch t.Kind {
	case TargetGrid:
		return e.beginCreate(y)
	case TargetEntry:
		return e.beginAdjust(t.Entry, y)
	case TargetGhost:
		return e.beginGhost(t.Ghost, y)
	}
	return nil
}

// PointerMove feeds a new vertical position into the live session.
func (e *Engine) PointerMove(y int) []Effect {
	s := e.session
	if s == nil {
		return nil
	}
	s.CurrentY = y
	if !s.Engaged() {
		return e.pendingMove()
	}
	if s.displacement() > e.dragThresholdPx() {
		s.HasMoved = true
	}
	return e.track(y)
}

// PointerUp resolves the session: commit, tap, or nothing.
func (e *Engine) PointerUp(y int) []Effect {
	s := e.session
	if s == nil {
		return nil
	}
	s.CurrentY = y
	switch e.flow {
	case flowCreate:
		return e.finishCreate()
	case flowAdjust:
		return e.finishAdjust()
	case flowGhost:
		return e.finishGhostTap()
	}
	return e.teardown(nil)
}

// TimerFired delivers a scheduled timer. Stale generations are ignored;
// this is the cancellation path for timers that outlive their session.
func (e *Engine) TimerFired(id TimerID) []Effect {
	p := e.pending
	if p == nil || p.kind != id.Kind || p.seq != id.Seq {
		return nil
	}
	e.pending = nil
	switch id.Kind {
	case TimerStillness:
		return e.stillnessConfirmed()
	case TimerHold:
		return e.engage()
	case TimerTap:
		return e.engageGhost()
	}
	return nil
}

// Cancel tears the session down without committing: escape key,
// pointer-cancel, or component teardown.
func (e *Engine) Cancel() []Effect {
	if e.session == nil {
		return nil
	}
	return e.teardown(nil)
}

// --- shared pending-phase plumbing ---

func (e *Engine) pendingMove() []Effect {
	d := e.disambiguator()
	switch d.onMove(e.session.displacement()) {
	case verdictAbandon:
		// Native scroll proceeds; nothing was captured or previewed yet.
		return e.teardown(nil)
	case verdictEngage:
		e.session.HasMoved = true
		var effs []Effect
		if e.flow == flowGhost {
			effs = e.engageGhost()
		} else {
			effs = e.engage()
		}
		// The move that crossed the threshold also tracks, so the preview
		// lands on the pointer rather than the seeded default.
		return append(effs, e.track(e.session.CurrentY)...)
	}
	return nil
}

func (e *Engine) stillnessConfirmed() []Effect {
	s := e.session
	if s == nil {
		return nil
	}
	s.StillnessConfirmed = true
	d := e.disambiguator()
	if kind, delay, hold := d.onStillness(); hold {
		return []Effect{e.scheduleTimer(kind, delay)}
	}
	// Resize engages on stillness alone: the edge anchor already
	// disambiguates intent.
	return e.engage()
}

// engage confirms the gesture and starts live tracking. From this point
// moves are captured and the preview is shown.
func (e *Engine) engage() []Effect {
	s := e.session
	if s == nil || s.Engaged() {
		return nil
	}
	s.StillnessConfirmed = true
	s.HoldConfirmed = true
	e.pending = nil
	e.captured = true

	effs := []Effect{CaptureInput{}}
	if s.Modality == ModalityCoarse {
		effs = append(effs, Haptic{})
	}
	effs = append(effs, e.seed()...)
	return effs
}

func (e *Engine) seed() []Effect {
	s := e.session
	if e.flow == flowCreate && s.Ghost == nil {
		origin := e.mapper.MinutesAt(s.OriginY)
		end := origin + e.cfg.SeedMinutes
		if end > minutesPerDay {
			end = minutesPerDay
		}
		s.Original = span(origin, end)
	}
	s.Proposed = s.Original
	return []Effect{e.preview()}
}

func (e *Engine) track(y int) []Effect {
	switch e.flow {
	case flowCreate:
		return e.trackCreate(y)
	case flowAdjust:
		return e.trackAdjust(y)
	}
	return nil
}

func (e *Engine) preview() Effect {
	s := e.session
	return ShowPreview{Preview: previewOf(s.previewEntryID(), s.Proposed)}
}

func (e *Engine) scheduleTimer(kind TimerKind, after time.Duration) Effect {
	e.seq++
	e.pending = &pendingTimer{kind: kind, seq: e.seq}
	return ScheduleTimer{ID: TimerID{Kind: kind, Seq: e.seq}, After: after}
}

// teardown destroys the session and invalidates any pending timer. The
// commit effect, if any, is already in effs; preview and capture cleanup
// follow it.
func (e *Engine) teardown(effs []Effect) []Effect {
	if e.captured {
		effs = append(effs, ClearPreview{}, ReleaseInput{})
	}
	e.captured = false
	e.session = nil
	e.flow = flowNone
	e.pending = nil
	return effs
}

func (e *Engine) disambiguator() disambiguator {
	switch e.flow {
	case flowAdjust:
		requireHold := e.session.Kind == KindMove
		return disambiguator{modality: e.session.Modality, timings: e.cfg.Adjust, requireHold: requireHold}
	case flowGhost:
		return disambiguator{
			modality: e.session.Modality,
			timings: Timings{
				ScrollCancelPx:  e.cfg.Ghost.ScrollCancelPx,
				DragThresholdPx: e.cfg.Ghost.DragThresholdPx,
			},
			requireHold: true,
		}
	default:
		return disambiguator{modality: e.session.Modality, timings: e.cfg.Create, requireHold: true}
	}
}

func (e *Engine) dragThresholdPx() int {
	switch e.flow {
	case flowAdjust:
		return e.cfg.Adjust.DragThresholdPx
	case flowGhost:
		return e.cfg.Ghost.DragThresholdPx
	default:
		return e.cfg.Create.DragThresholdPx
	}
}

func (e *Engine) newSession(y int, kind Kind) *Session {
	return &Session{
		OriginY:   y,
		CurrentY:  y,
		StartedAt: e.now(),
		Modality:  e.cfg.Modality,
		Kind:      kind,
	}
}
