// Package ui renders the 24-hour day grid and wires terminal input into
// the gesture engine.
package ui

import (
	"database/sql"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rs/zerolog"

	"github.com/fenrel/daygrid/internal/config"
	"github.com/fenrel/daygrid/internal/db"
	"github.com/fenrel/daygrid/internal/gesture"
	"github.com/fenrel/daygrid/internal/logging"
	"github.com/fenrel/daygrid/internal/timeline"
)

type mode int

const (
	modeDay mode = iota
	modeCreateForm
	modeEditForm
	modeGhostConfirm
	modeHelp
)

const dayFormat = "2006-01-02"

type Model struct {
	dbh *sql.DB
	cfg config.Config
	log zerolog.Logger
	zm  *zone.Manager

	width, height int
	mode          mode

	day time.Time
	loc *time.Location

	scrollRows int
	entries    []db.Entry
	ghosts     []db.GhostEvent

	engine     *gesture.Engine
	captured   bool
	preview    timeline.Preview
	hasPreview bool

	form         entryForm
	pendingSpan  timeline.Range
	pendingGhost string // ghost id consumed by the pending creation
	editingID    string
	confirmGhost *db.GhostEvent

	status   string
	statusAt time.Time

	theme Theme
}

// Run opens the database and starts the TUI event loop.
func Run(cfg config.Config) error {
	dbh, err := db.Open()
	if err != nil {
		return err
	}
	defer dbh.Close()

	m := NewModel(dbh, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = p.Run()
	return err
}

// NewModel builds the day view for today.
func NewModel(dbh *sql.DB, cfg config.Config) *Model {
	loc := cfg.Location()
	m := &Model{
		dbh:   dbh,
		cfg:   cfg,
		log:   logging.Component("ui"),
		zm:    zone.New(),
		day:   time.Now().In(loc),
		loc:   loc,
		theme: DefaultTheme,
	}
	m.engine = gesture.NewEngine(cfg.EngineConfig(), m.mapper())
	m.scrollRows = 8 * cfg.Grid.RowsPerHour // open at 08:00
	return m
}

func (m *Model) dayKey() string { return m.day.Format(dayFormat) }

func (m *Model) Init() tea.Cmd {
	return m.loadDayCmd()
}

// ---------- messages & commands ----------

type dayLoadedMsg struct {
	entries []db.Entry
	ghosts  []db.GhostEvent
	err     error
}

type entrySavedMsg struct{ err error }

type entryUpdatedMsg struct {
	id  string
	err error
}

type ghostImportedMsg struct{ err error }

type gestureTimerMsg struct{ id gesture.TimerID }

func gestureTimerCmd(id gesture.TimerID, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg { return gestureTimerMsg{id: id} })
}

func (m *Model) loadDayCmd() tea.Cmd {
	dbh, day := m.dbh, m.dayKey()
	return func() tea.Msg {
		entries, err := db.EntriesForDay(dbh, day)
		if err != nil {
			return dayLoadedMsg{err: err}
		}
		ghosts, err := db.GhostEventsForDay(dbh, day)
		return dayLoadedMsg{entries: entries, ghosts: ghosts, err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.clampScroll()
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.MouseMsg:
		if m.mode == modeDay {
			return m, m.handleMouse(msg)
		}
		return m, nil

	case gestureTimerMsg:
		return m, m.runEffects(m.engine.TimerFired(msg.id))

	case dayLoadedMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("load day failed")
			m.setStatus(m.theme.Error.Render("Failed to load day"))
			return m, nil
		}
		m.entries = msg.entries
		m.ghosts = msg.ghosts
		return m, nil

	case entrySavedMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("save entry failed")
			m.setStatus(m.theme.Error.Render("Save failed"))
			return m, nil
		}
		m.setStatus(m.theme.Success.Render("Saved"))
		return m, m.loadDayCmd()

	case entryUpdatedMsg:
		if msg.err != nil {
			// No rollback and no re-fetch: the optimistic state stays in
			// place until the next natural refresh.
			m.log.Error().Err(msg.err).Str("entry", msg.id).Msg("update entry failed")
			m.setStatus(m.theme.Error.Render("Couldn't save change"))
			return m, nil
		}
		return m, m.loadDayCmd()

	case ghostImportedMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("ghost import failed")
			m.setStatus(m.theme.Error.Render("Import failed"))
			return m, nil
		}
		m.setStatus(m.theme.Success.Render("Imported"))
		return m, m.loadDayCmd()
	}
	return m, nil
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeCreateForm, modeEditForm:
		return m.updateForm(msg)
	case modeGhostConfirm:
		return m.updateGhostConfirm(msg)
	case modeHelp:
		m.mode = modeDay
		return m, nil
	}

	switch msg.String() {
	case "esc":
		// Escape tears down any live gesture without committing.
		if m.engine.Active() {
			return m, m.runEffects(m.engine.Cancel())
		}
		return m, nil
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		m.scrollBy(-1)
	case "down", "j":
		m.scrollBy(1)
	case "pgup":
		m.scrollBy(-m.cfg.Grid.RowsPerHour * 4)
	case "pgdown":
		m.scrollBy(m.cfg.Grid.RowsPerHour * 4)
	case "[", "h":
		m.changeDay(-1)
		return m, m.loadDayCmd()
	case "]", "l":
		m.changeDay(1)
		return m, m.loadDayCmd()
	case "t":
		m.day = time.Now().In(m.loc)
		return m, m.loadDayCmd()
	case "n":
		m.openCreateForm(timeline.Range{Start: 9 * 60, End: 9*60 + 30}, "")
	case "?":
		m.mode = modeHelp
	}
	return m, nil
}

func (m *Model) changeDay(delta int) {
	if m.engine.Active() {
		return
	}
	m.day = m.day.AddDate(0, 0, delta)
}

func (m *Model) scrollBy(rows int) {
	// Scrolling is the gesture's rival: once a session owns the pointer
	// it is suppressed entirely.
	if m.captured {
		return
	}
	m.scrollRows += rows
	m.clampScroll()
	if !m.engine.Active() {
		m.engine.SetMapper(m.mapper())
	}
}

func (m *Model) clampScroll() {
	max := 24*m.cfg.Grid.RowsPerHour - m.gridRows()
	if max < 0 {
		max = 0
	}
	if m.scrollRows > max {
		m.scrollRows = max
	}
	if m.scrollRows < 0 {
		m.scrollRows = 0
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusAt = time.Now()
}
