package gesture

// classifyZone hit-tests the pointer against a block's rendered bounds:
// top 20% grabs the start edge, bottom 20% the end edge, the middle 60%
// moves the whole block.
func classifyZone(y, topY, bottomY int) Kind {
	h := bottomY - topY
	if h <= 0 {
		return KindMove
	}
	rel := y - topY
	switch {
	case rel*5 < h:
		return KindResizeStart
	case rel*5 >= 4*h:
		return KindResizeEnd
	default:
		return KindMove
	}
}

// beginAdjust starts a move/resize gesture on an existing block. Entries
// without concrete times are not adjustable and the pointer-down is
// ignored. Resize kinds are edge-anchored and lower-risk, so they engage
// on stillness alone (coarse) or immediately (precise); move is also a
// legitimate tap target and requires the full hold or drag threshold.
func (e *Engine) beginAdjust(ref *EntryRef, y int) []Effect {
	if ref == nil || !ref.Adjustable {
		return nil
	}
	e.flow = flowAdjust
	s := e.newSession(y, classifyZone(y, ref.TopY, ref.BottomY))
	s.Entry = ref
	s.Original = ref.Span
	e.session = s

	d := e.disambiguator()
	if d.engagesImmediately() {
		return e.engage()
	}
	if kind, delay, ok := d.firstTimer(); ok {
		return []Effect{e.scheduleTimer(kind, delay)}
	}
	return nil
}

// trackAdjust recomputes the proposed range per drag kind.
func (e *Engine) trackAdjust(y int) []Effect {
	s := e.session
	switch s.Kind {
	case KindMove:
		// Delta-based: preserve the original duration exactly, sliding
		// the whole pair back inside the day instead of truncating.
		delta := e.mapper.DeltaMinutes(y - s.OriginY)
		s.Proposed = s.Original.Shift(delta)
	case KindResizeStart:
		// Absolute: the edge follows the cursor, never closer than the
		// minimum to the fixed end.
		t := e.mapper.MinutesAt(y)
		maxStart := s.Original.End - e.cfg.MinBlockMinutes
		if t > maxStart {
			t = maxStart
		}
		if t < 0 {
			t = 0
		}
		s.Proposed = span(t, s.Original.End)
	case KindResizeEnd:
		t := e.mapper.MinutesAt(y)
		// The last half hour snaps straight to midnight so end-of-day is
		// reliably reachable.
		if t >= e.cfg.EndOfDaySnapFrom {
			t = minutesPerDay
		}
		minEnd := s.Original.Start + e.cfg.MinBlockMinutes
		if t < minEnd {
			t = minEnd
		}
		if t > minutesPerDay {
			t = minutesPerDay
		}
		s.Proposed = span(s.Original.Start, t)
	}
	return []Effect{e.preview()}
}

// finishAdjust resolves the gesture: a tap opens the entry, an unchanged
// range commits nothing, a sub-minimum duration is rejected with an
// explicit outcome, anything else commits a full range replacement.
func (e *Engine) finishAdjust() []Effect {
	s := e.session
	if !s.Engaged() || !s.HasMoved {
		return e.teardown([]Effect{OpenEntry{EntryID: s.Entry.ID}})
	}
	if s.Proposed == s.Original {
		return e.teardown(nil)
	}
	if s.Proposed.Duration() < e.cfg.MinAdjustMinutes {
		return e.teardown([]Effect{UpdateRejected{
			EntryID: s.Entry.ID,
			Span:    s.Proposed,
			Reason:  RejectTooShort,
		}})
	}
	return e.teardown([]Effect{UpdateEntry{
		EntryID:         s.Entry.ID,
		Span:            s.Proposed,
		DurationMinutes: s.Proposed.Duration(),
	}})
}
