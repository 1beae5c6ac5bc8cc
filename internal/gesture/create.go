package gesture

import "github.com/fenrel/daygrid/internal/timeline"

const minutesPerDay = timeline.MinutesPerDay

func span(start, end int) timeline.Range { return timeline.Range{Start: start, End: end} }

func previewOf(entryID string, r timeline.Range) timeline.Preview {
	return timeline.Preview{EntryID: entryID, Span: r}
}

// beginCreate starts a creation gesture on empty grid space. Coarse
// pointers go through the full stillness+hold protocol; precise pointers
// engage when movement exceeds the drag threshold (see pendingMove).
func (e *Engine) beginCreate(y int) []Effect {
	e.flow = flowCreate
	e.session = e.newSession(y, KindCreate)

	d := e.disambiguator()
	if kind, delay, ok := d.firstTimer(); ok {
		return []Effect{e.scheduleTimer(kind, delay)}
	}
	return nil
}

// trackCreate updates the proposed range during live tracking. The origin
// time was fixed at engagement; the end follows the pointer, with the
// bounds swapped when the drag goes upward. Until the pointer clears the
// drag threshold the seeded default stays in place.
func (e *Engine) trackCreate(y int) []Effect {
	s := e.session
	if !s.HasMoved {
		s.Proposed = s.Original
		return []Effect{e.preview()}
	}
	cur := e.mapper.MinutesAt(y)
	s.Proposed = span(s.Original.Start, cur).Normalize()
	return []Effect{e.preview()}
}

// finishCreate commits the gesture on pointer-up: nothing if it never
// engaged, the seeded default if it engaged but never moved, otherwise
// the dragged range with the minimum-duration floor applied by extending
// the end forward.
func (e *Engine) finishCreate() []Effect {
	s := e.session
	if !s.Engaged() {
		return e.teardown(nil)
	}
	spanOut := s.Original
	if s.HasMoved {
		spanOut = s.Proposed.WithMinDuration(e.cfg.MinBlockMinutes)
	}
	var ghostID string
	if s.Ghost != nil {
		ghostID = s.Ghost.ID
	}
	return e.teardown([]Effect{CreateEntry{Span: spanOut, GhostID: ghostID}})
}
