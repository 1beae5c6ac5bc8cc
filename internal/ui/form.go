package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fenrel/daygrid/internal/db"
	"github.com/fenrel/daygrid/internal/timeline"
)

// entryForm captures the activity and category for a new or edited
// entry. The time range is already fixed by the gesture.
type entryForm struct {
	activity textinput.Model
	category textinput.Model
	focus    int
}

func newEntryForm(activity, category string) entryForm {
	a := textinput.New()
	a.Placeholder = "What did you do?"
	a.CharLimit = 120
	a.Width = 36
	a.SetValue(activity)
	a.Focus()

	c := textinput.New()
	c.Placeholder = "category (work, rest, ...)"
	c.CharLimit = 40
	c.Width = 36
	c.SetValue(category)

	return entryForm{activity: a, category: c}
}

func (f *entryForm) cycle() {
	f.focus = (f.focus + 1) % 2
	if f.focus == 0 {
		f.activity.Focus()
		f.category.Blur()
	} else {
		f.category.Focus()
		f.activity.Blur()
	}
}

func (f *entryForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.focus == 0 {
		f.activity, cmd = f.activity.Update(msg)
	} else {
		f.category, cmd = f.category.Update(msg)
	}
	return cmd
}

// openCreateForm starts the detail form for a freshly dragged-out
// range. ghostID is non-empty when the range came from stretching a
// calendar placeholder; saving then retires the placeholder.
func (m *Model) openCreateForm(span timeline.Range, ghostID string) {
	activity := ""
	if ghostID != "" {
		for i := range m.ghosts {
			if m.ghosts[i].ID == ghostID {
				activity = m.ghosts[i].Title
				break
			}
		}
	}
	m.pendingSpan = span
	m.pendingGhost = ghostID
	m.editingID = ""
	m.form = newEntryForm(activity, "")
	m.mode = modeCreateForm
}

func (m *Model) openEditForm(entryID string) {
	for i := range m.entries {
		e := &m.entries[i]
		if e.ID != entryID {
			continue
		}
		m.pendingSpan = timeline.Range{Start: e.StartMinutes, End: e.EndMinutes}
		m.editingID = e.ID
		m.form = newEntryForm(e.Activity, e.Category)
		m.mode = modeEditForm
		return
	}
	m.log.Warn().Str("entry", entryID).Msg("edit target vanished")
}

func (m *Model) openGhostConfirm(ghostID string) {
	for i := range m.ghosts {
		if m.ghosts[i].ID == ghostID {
			g := m.ghosts[i]
			m.confirmGhost = &g
			m.mode = modeGhostConfirm
			return
		}
	}
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeDay
		return m, nil
	case "tab", "shift+tab", "up", "down":
		m.form.cycle()
		return m, nil
	case "enter":
		if m.mode == modeEditForm {
			cmd := m.saveEditCmd(m.editingID, m.form.category.Value(), m.form.activity.Value())
			m.mode = modeDay
			return m, cmd
		}
		cmd := m.saveCreateCmd(m.pendingSpan, m.form.category.Value(), m.form.activity.Value(), m.pendingGhost)
		m.mode = modeDay
		m.pendingGhost = ""
		return m, cmd
	}
	return m, m.form.update(msg)
}

func (m *Model) updateGhostConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "y":
		g := m.confirmGhost
		m.confirmGhost = nil
		m.mode = modeDay
		if g == nil {
			return m, nil
		}
		return m, m.importGhostCmd(*g)
	case "esc", "n":
		m.confirmGhost = nil
		m.mode = modeDay
	}
	return m, nil
}

func (m *Model) saveCreateCmd(span timeline.Range, category, activity, ghostID string) tea.Cmd {
	dbh, day := m.dbh, m.dayKey()
	return func() tea.Msg {
		_, err := db.InsertEntry(dbh, db.Entry{
			Day:          day,
			StartMinutes: span.Start,
			EndMinutes:   span.End,
			Category:     category,
			Activity:     activity,
		})
		if err == nil && ghostID != "" {
			err = db.DeleteGhostEvent(dbh, ghostID)
		}
		return entrySavedMsg{err: err}
	}
}

func (m *Model) saveEditCmd(id, category, activity string) tea.Cmd {
	dbh := m.dbh
	return func() tea.Msg {
		return entrySavedMsg{err: db.UpdateEntryDetails(dbh, id, category, activity)}
	}
}

// importGhostCmd promotes a placeholder into a real entry at its own
// times, then removes the placeholder.
func (m *Model) importGhostCmd(g db.GhostEvent) tea.Cmd {
	dbh := m.dbh
	return func() tea.Msg {
		_, err := db.InsertEntry(dbh, db.Entry{
			Day:          g.Day,
			StartMinutes: g.StartMinutes,
			EndMinutes:   g.EndMinutes,
			Category:     "calendar",
			Activity:     g.Title,
		})
		if err == nil {
			err = db.DeleteGhostEvent(dbh, g.ID)
		}
		return ghostImportedMsg{err: err}
	}
}

func (m *Model) renderForm() string {
	title := "New entry"
	if m.mode == modeEditForm {
		title = "Edit entry"
	}
	span := timeline.Preview{Span: m.pendingSpan}
	return m.theme.Title.Render(title) + "  " + m.theme.Hint.Render(span.Label()) + "\n\n" +
		m.theme.Label.Render("Activity") + "\n" + m.form.activity.View() + "\n\n" +
		m.theme.Label.Render("Category") + "\n" + m.form.category.View() + "\n\n" +
		m.theme.Hint.Render("enter: save · tab: next field · esc: cancel")
}

func (m *Model) renderGhostConfirm() string {
	g := m.confirmGhost
	if g == nil {
		return ""
	}
	when := fmt.Sprintf("%s – %s", timeline.Clock(g.StartMinutes), timeline.Clock(g.EndMinutes))
	return m.theme.Title.Render("Import calendar event?") + "\n\n" +
		m.theme.BlockText.Render(g.Title) + "\n" + m.theme.Hint.Render(when) + "\n\n" +
		m.theme.Hint.Render("enter/y: import · esc/n: keep as ghost")
}
