package gesture

// beginGhost starts the tap-vs-hold flow on a calendar placeholder. One
// short timer decides: release first means tap (confirm-import dialog),
// timer first means hold (create-drag seeded at the placeholder's time).
// A precise pointer that clears the drag threshold early promotes to the
// drag without waiting the timer out; on coarse input early movement is a
// scroll and abandons instead.
func (e *Engine) beginGhost(ref *GhostRef, y int) []Effect {
	if ref == nil {
		return nil
	}
	e.flow = flowGhost
	s := e.newSession(y, KindNone)
	s.Ghost = ref
	s.Original = ref.Span
	e.session = s
	return []Effect{e.scheduleTimer(TimerTap, e.cfg.Ghost.Tap)}
}

// engageGhost converts the placeholder interaction into a create-drag
// session anchored at the ghost's own range, so the user can stretch the
// imported block before committing it.
func (e *Engine) engageGhost() []Effect {
	s := e.session
	if s == nil || s.Engaged() {
		return nil
	}
	s.Kind = KindCreate
	e.flow = flowCreate
	return e.engage()
}

// finishGhostTap handles pointer-up while the tap timer is still pending:
// the placeholder was tapped, ask for the import confirmation dialog.
func (e *Engine) finishGhostTap() []Effect {
	s := e.session
	if s.HasMoved {
		return e.teardown(nil)
	}
	return e.teardown([]Effect{OpenGhost{GhostID: s.Ghost.ID}})
}
