package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fenrel/daygrid/internal/db"
	"github.com/fenrel/daygrid/internal/gesture"
	"github.com/fenrel/daygrid/internal/notify"
	"github.com/fenrel/daygrid/internal/timeline"
)

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-1)
		return nil
	case tea.MouseButtonWheelDown:
		m.scrollBy(1)
		return nil
	}

	y := m.pxY(msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		t, ok := m.classify(msg)
		if !ok {
			return nil
		}
		return m.runEffects(m.engine.PointerDown(t, y))
	case tea.MouseActionMotion:
		if !m.engine.Active() {
			return nil
		}
		return m.runEffects(m.engine.PointerMove(y))
	case tea.MouseActionRelease:
		if !m.engine.Active() {
			return nil
		}
		return m.runEffects(m.engine.PointerUp(y))
	}
	return nil
}

// classify resolves a press position into a gesture target. Zone hits
// on rendered blocks win over the bare grid behind them.
func (m *Model) classify(msg tea.MouseMsg) (gesture.Target, bool) {
	for i := range m.entries {
		if m.zm.Get("entry:" + m.entries[i].ID).InBounds(msg) {
			return gesture.EntryTarget(m.entryRefAt(&m.entries[i])), true
		}
	}
	for i := range m.ghosts {
		if m.zm.Get("ghost:" + m.ghosts[i].ID).InBounds(msg) {
			g := &m.ghosts[i]
			return gesture.GhostTarget(gesture.GhostRef{
				ID:   g.ID,
				Span: timeline.Range{Start: g.StartMinutes, End: g.EndMinutes},
			}), true
		}
	}
	withinRows := msg.Y >= gridTopRow && msg.Y < gridTopRow+m.gridRows()
	withinLane := msg.X >= gutterWidth && msg.X < gutterWidth+m.entryLaneWidth()
	if withinRows && withinLane {
		return gesture.GridTarget(), true
	}
	return gesture.Target{}, false
}

// runEffects applies engine output to the model and turns the async
// pieces into commands.
func (m *Model) runEffects(effs []gesture.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, eff := range effs {
		switch e := eff.(type) {
		case gesture.ScheduleTimer:
			cmds = append(cmds, gestureTimerCmd(e.ID, e.After))
		case gesture.Haptic:
			cmds = append(cmds, func() tea.Msg {
				notify.Pulse() //nolint:errcheck // feedback is best-effort
				return nil
			})
		case gesture.CaptureInput:
			m.captured = true
		case gesture.ReleaseInput:
			m.captured = false
		case gesture.ShowPreview:
			m.preview = e.Preview
			m.hasPreview = true
		case gesture.ClearPreview:
			m.hasPreview = false
		case gesture.CreateEntry:
			m.openCreateForm(e.Span, e.GhostID)
		case gesture.UpdateEntry:
			m.applyLocalUpdate(e.EntryID, e.Span)
			cmds = append(cmds, m.commitUpdateCmd(e.EntryID, e.Span))
		case gesture.UpdateRejected:
			m.setStatus(m.theme.Error.Render("Too short — not saved"))
			m.log.Debug().Str("entry", e.EntryID).Int("minutes", e.Span.Duration()).
				Msg("adjustment below minimum, dropped")
		case gesture.OpenEntry:
			m.openEditForm(e.EntryID)
		case gesture.OpenGhost:
			m.openGhostConfirm(e.GhostID)
		}
	}
	return tea.Batch(cmds...)
}

// applyLocalUpdate moves the block on screen before the write lands, so
// a committed drag never snaps back while sqlite catches up.
func (m *Model) applyLocalUpdate(id string, span timeline.Range) {
	for i := range m.entries {
		if m.entries[i].ID == id {
			m.entries[i].StartMinutes = span.Start
			m.entries[i].EndMinutes = span.End
			m.entries[i].DurationMinutes = span.Duration()
			return
		}
	}
}

func (m *Model) commitUpdateCmd(id string, span timeline.Range) tea.Cmd {
	dbh := m.dbh
	return func() tea.Msg {
		err := db.UpdateEntryTimes(dbh, id, span.Start, span.End)
		return entryUpdatedMsg{id: id, err: err}
	}
}
