package ui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fenrel/daygrid/internal/config"
	"github.com/fenrel/daygrid/internal/db"
)

func entryAtTest(id string, start, end int) db.Entry {
	return db.Entry{ID: id, StartMinutes: start, EndMinutes: end}
}

func testModel() *Model {
	m := NewModel(nil, config.Default())
	m.width, m.height = 120, 40
	return m
}

func TestMapperReflectsGridConfig(t *testing.T) {
	m := testModel()

	// Default view opens scrolled to 08:00; the first grid row maps there.
	mp := m.mapper()
	require.Equal(t, 480, mp.MinutesAt(m.pxY(gridTopRow)))

	// One terminal row is one half hour at two rows per hour.
	require.Equal(t, 510, mp.MinutesAt(m.pxY(gridTopRow+1)))
}

func TestScrollMovesTheMapping(t *testing.T) {
	m := testModel()
	m.scrollRows = 0
	mp := m.mapper()
	require.Equal(t, 0, mp.MinutesAt(m.pxY(gridTopRow)))

	m.scrollBy(4)
	require.Equal(t, 120, m.mapper().MinutesAt(m.pxY(gridTopRow)))
}

func TestScrollSuppressedWhileCaptured(t *testing.T) {
	m := testModel()
	before := m.scrollRows
	m.captured = true
	m.scrollBy(4)
	require.Equal(t, before, m.scrollRows)
}

func TestClampScrollKeepsGridInRange(t *testing.T) {
	m := testModel()
	m.scrollRows = 10000
	m.clampScroll()
	require.Equal(t, 24*m.cfg.Grid.RowsPerHour-m.gridRows(), m.scrollRows)

	m.scrollRows = -3
	m.clampScroll()
	require.Zero(t, m.scrollRows)
}

func TestEntryRefBoundsMatchRendering(t *testing.T) {
	m := testModel()
	m.scrollRows = 0
	e := entryAtTest("e1", 600, 660)
	ref := m.entryRefAt(&e)

	// The forward mapping of the ref's own bounds lands back on its span.
	mp := m.mapper()
	require.Equal(t, 600, mp.MinutesAt(ref.TopY))
	require.Equal(t, 660, mp.MinutesAt(ref.BottomY))
	require.True(t, ref.Adjustable)
}
