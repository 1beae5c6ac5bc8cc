package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/fenrel/daygrid/internal/db"
	"github.com/fenrel/daygrid/internal/gesture"
	"github.com/fenrel/daygrid/internal/timeline"
	"github.com/fenrel/daygrid/internal/version"
)

const (
	gridTopRow  = 1 // header is row 0
	gutterWidth = 8 // "09:00 ─┤"
	ghostLane   = 24
)

func (m *Model) minutesPerRow() int {
	rph := m.cfg.Grid.RowsPerHour
	if rph <= 0 {
		rph = 2
	}
	return 60 / rph
}

func (m *Model) gridRows() int {
	rows := m.height - 2 // header + status line
	if rows < 1 {
		rows = 1
	}
	return rows
}

// mapper builds the coordinate-time mapper for the current scroll
// position. Terminal cells are projected into virtual pixels so the
// engine's pixel thresholds keep their meaning.
func (m *Model) mapper() timeline.Mapper {
	cellH := m.cfg.Grid.CellHeightPx
	if cellH <= 0 {
		cellH = 16
	}
	return timeline.Mapper{
		PxPerMinute: float64(cellH) / float64(m.minutesPerRow()),
		TopY:        gridTopRow * cellH,
		ScrollPx:    m.scrollRows * cellH,
		Snap:        m.cfg.Grid.SnapMinutes,
	}
}

// pxY converts a terminal row to the engine's vertical pixel space.
func (m *Model) pxY(cellY int) int {
	cellH := m.cfg.Grid.CellHeightPx
	if cellH <= 0 {
		cellH = 16
	}
	return cellY * cellH
}

func (m *Model) ghostLaneWidth() int {
	if len(m.ghosts) == 0 {
		return 0
	}
	return ghostLane
}

func (m *Model) entryLaneWidth() int {
	w := m.width - gutterWidth - m.ghostLaneWidth()
	if w < 10 {
		w = 10
	}
	return w
}

// rowSpan reports whether a range covers a given absolute grid row.
func (m *Model) rowSpan(r timeline.Range, gridRow int) bool {
	mpr := m.minutesPerRow()
	return r.Start < (gridRow+1)*mpr && r.End > gridRow*mpr
}

func (m *Model) firstRowOf(r timeline.Range) int {
	return r.Start / m.minutesPerRow()
}

func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	rows := m.gridRows()
	totalRows := 24 * m.cfg.Grid.RowsPerHour
	for r := 0; r < rows; r++ {
		gridRow := r + m.scrollRows
		if gridRow >= totalRows {
			b.WriteString("\n")
			continue
		}
		b.WriteString(m.renderGridRow(gridRow))
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatusLine())

	view := b.String()
	switch m.mode {
	case modeCreateForm, modeEditForm:
		view = m.overlayModal(view, m.renderForm())
	case modeGhostConfirm:
		view = m.overlayModal(view, m.renderGhostConfirm())
	case modeHelp:
		view = m.overlayModal(view, m.renderHelp())
	}
	return m.zm.Scan(view)
}

func (m *Model) renderHeader() string {
	left := m.theme.Title.Render(" " + m.day.Format("Mon 2006-01-02"))
	right := m.theme.Hint.Render(version.Short() + " ")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) renderGridRow(gridRow int) string {
	mpr := m.minutesPerRow()
	minutes := gridRow * mpr

	gutter := m.theme.Gutter.Render("       │")
	if minutes%60 == 0 {
		gutter = m.theme.Gutter.Render(fmt.Sprintf("%s ─┤", timeline.Clock(minutes)))
	}
	if gridRow == m.nowRow() {
		gutter = m.theme.NowMark.Render("  now ▶│")
	}

	lane := m.renderEntryLane(gridRow)
	ghost := m.renderGhostLane(gridRow)
	return gutter + lane + ghost
}

func (m *Model) renderEntryLane(gridRow int) string {
	laneW := m.entryLaneWidth()

	// The live preview draws on top of everything in its range.
	if m.hasPreview && m.rowSpan(m.preview.Span, gridRow) {
		text := ""
		if gridRow == m.previewTopRow() {
			text = " " + m.preview.Label()
		}
		return m.theme.Preview.Render(padRight(text, laneW))
	}

	for i := range m.entries {
		e := &m.entries[i]
		span := timeline.Range{Start: e.StartMinutes, End: e.EndMinutes}
		if !m.rowSpan(span, gridRow) {
			continue
		}
		text := ""
		if gridRow == m.firstRowOf(span) || gridRow == m.scrollRows {
			label := fmt.Sprintf(" %s–%s %s", timeline.Clock(e.StartMinutes), timeline.Clock(e.EndMinutes), e.Activity)
			if e.Category != "" {
				label += "  [" + e.Category + "]"
			}
			text = truncate(label, laneW)
		}
		seg := m.theme.Block.Render(padRight(text, laneW))
		return m.zm.Mark("entry:"+e.ID, seg)
	}

	return m.theme.GridLine.Render(strings.Repeat(" ", m.entryLaneWidth()))
}

func (m *Model) previewTopRow() int {
	top := m.firstRowOf(m.preview.Span)
	if top < m.scrollRows {
		return m.scrollRows
	}
	return top
}

func (m *Model) renderGhostLane(gridRow int) string {
	gw := m.ghostLaneWidth()
	if gw == 0 {
		return ""
	}
	for i := range m.ghosts {
		g := &m.ghosts[i]
		span := timeline.Range{Start: g.StartMinutes, End: g.EndMinutes}
		if !m.rowSpan(span, gridRow) {
			continue
		}
		text := ""
		if gridRow == m.firstRowOf(span) {
			text = truncate(" ◌ "+g.Title, gw-1)
		}
		seg := m.theme.Ghost.Render("┆" + padRight(text, gw-1))
		return m.zm.Mark("ghost:"+g.ID, seg)
	}
	return m.theme.GridLine.Render("┆" + strings.Repeat(" ", gw-1))
}

// nowRow is the grid row the current wall clock falls into, or -1 when
// a different day is shown.
func (m *Model) nowRow() int {
	now := time.Now().In(m.loc)
	if now.Format(dayFormat) != m.dayKey() {
		return -1
	}
	return (now.Hour()*60 + now.Minute()) / m.minutesPerRow()
}

func (m *Model) renderStatusLine() string {
	hint := m.theme.Hint.Render(" drag: create/move · edges: resize · esc: cancel · [ ]: day · ?: help · q: quit")
	status := ""
	if m.status != "" && time.Since(m.statusAt) < 4*time.Second {
		status = m.status + " "
	}
	gap := m.width - lipgloss.Width(hint) - lipgloss.Width(status)
	if gap < 1 {
		gap = 1
	}
	return hint + strings.Repeat(" ", gap) + status
}

// overlayModal centers a modal over the day view. Lines behind it stay
// put; bubblezone ignores anything not marked.
func (m *Model) overlayModal(base, modal string) string {
	lines := strings.Split(base, "\n")
	box := m.theme.Modal.Render(modal)
	boxLines := strings.Split(box, "\n")
	startY := (len(lines) - len(boxLines)) / 3
	if startY < 1 {
		startY = 1
	}
	for i, bl := range boxLines {
		y := startY + i
		if y >= len(lines) {
			break
		}
		startX := (m.width - lipgloss.Width(bl)) / 2
		if startX < 0 {
			startX = 0
		}
		lines[y] = strings.Repeat(" ", startX) + bl
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderHelp() string {
	return m.theme.Title.Render("daygrid") + "\n\n" +
		"mouse   drag on empty grid to block out time\n" +
		"        drag a block's middle to move it\n" +
		"        drag a block's top/bottom edge to resize\n" +
		"        click a block to edit, click a ◌ ghost to import\n" +
		"        hold a ◌ ghost to stretch it before importing\n\n" +
		"keys    j/k scroll · [ ] switch day · t today\n" +
		"        n new entry · esc cancel drag · q quit\n\n" +
		m.theme.Hint.Render("any key to close")
}

func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w <= 1 {
		return string(r[:w])
	}
	return string(r[:w-1]) + "…"
}

func padRight(s string, w int) string {
	if d := w - lipgloss.Width(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}

// entryRefAt builds the gesture target ref for an entry, with its
// rendered vertical bounds in pixel space for edge-zone hit testing.
func (m *Model) entryRefAt(e *db.Entry) gesture.EntryRef {
	mp := m.mapper()
	return gesture.EntryRef{
		ID:         e.ID,
		Span:       timeline.Range{Start: e.StartMinutes, End: e.EndMinutes},
		TopY:       mp.YFor(e.StartMinutes),
		BottomY:    mp.YFor(e.EndMinutes),
		Adjustable: e.EndMinutes > e.StartMinutes,
	}
}
