package gesture

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fenrel/daygrid/internal/timeline"
)

// testMapper maps 1px to 1min with no snapping, so test coordinates read
// directly as clock minutes.
func testMapper() timeline.Mapper {
	return timeline.Mapper{PxPerMinute: 1}
}

func coarseConfig() Config {
	cfg := DefaultConfig()
	cfg.Modality = ModalityCoarse
	return cfg
}

func timersOf(effs []Effect) []ScheduleTimer {
	var out []ScheduleTimer
	for _, e := range effs {
		if t, ok := e.(ScheduleTimer); ok {
			out = append(out, t)
		}
	}
	return out
}

func createsOf(effs []Effect) []CreateEntry {
	var out []CreateEntry
	for _, e := range effs {
		if c, ok := e.(CreateEntry); ok {
			out = append(out, c)
		}
	}
	return out
}

func updatesOf(effs []Effect) []UpdateEntry {
	var out []UpdateEntry
	for _, e := range effs {
		if u, ok := e.(UpdateEntry); ok {
			out = append(out, u)
		}
	}
	return out
}

func hasEffect[T Effect](effs []Effect) bool {
	for _, e := range effs {
		if _, ok := e.(T); ok {
			return true
		}
	}
	return false
}

// singleTimer asserts exactly one timer was scheduled and returns its id.
func singleTimer(t *testing.T, effs []Effect) TimerID {
	t.Helper()
	timers := timersOf(effs)
	require.Len(t, timers, 1)
	return timers[0].ID
}

func entryAt(id string, start, end int) EntryRef {
	m := testMapper()
	return EntryRef{
		ID:         id,
		Span:       timeline.Range{Start: start, End: end},
		TopY:       m.YFor(start),
		BottomY:    m.YFor(end),
		Adjustable: true,
	}
}

func TestCoarseScrollCancelsCreate(t *testing.T) {
	e := NewEngine(coarseConfig(), testMapper())

	effs := e.PointerDown(GridTarget(), 500)
	id := singleTimer(t, effs)
	require.Equal(t, TimerStillness, id.Kind)

	// 10px before any timer fires is a scroll, not a gesture.
	effs = e.PointerMove(510)
	require.Empty(t, createsOf(effs))
	require.False(t, e.Active())

	// The stillness timer that could not be revoked fires into a dead
	// session and must do nothing.
	require.Empty(t, e.TimerFired(id))
	require.Empty(t, createsOf(e.PointerUp(510)))
}

func TestCoarseHoldCreatesDefaultBlock(t *testing.T) {
	e := NewEngine(coarseConfig(), testMapper())

	effs := e.PointerDown(GridTarget(), 540) // 09:00
	still := singleTimer(t, effs)

	effs = e.TimerFired(still)
	hold := singleTimer(t, effs)
	require.Equal(t, TimerHold, hold.Kind)

	effs = e.TimerFired(hold)
	require.True(t, hasEffect[CaptureInput](effs))
	require.True(t, hasEffect[Haptic](effs), "coarse engagement pulses")
	require.True(t, hasEffect[ShowPreview](effs))

	effs = e.PointerUp(540)
	creates := createsOf(effs)
	require.Len(t, creates, 1)
	require.Equal(t, timeline.Range{Start: 540, End: 570}, creates[0].Span)
	require.Equal(t, 30, creates[0].Span.Duration())
	require.True(t, hasEffect[ReleaseInput](effs))
	require.False(t, e.Active())
}

func TestSubThresholdJitterTolerated(t *testing.T) {
	cfg := coarseConfig()
	cfg.Create.ScrollCancelPx = 3

	t.Run("2px survives", func(t *testing.T) {
		e := NewEngine(cfg, testMapper())
		e.PointerDown(GridTarget(), 500)
		e.PointerMove(502)
		require.True(t, e.Active())
	})

	t.Run("4px abandons", func(t *testing.T) {
		e := NewEngine(cfg, testMapper())
		e.PointerDown(GridTarget(), 500)
		e.PointerMove(504)
		require.False(t, e.Active())
	})
}

func TestPreciseDragEngagesWithoutTimers(t *testing.T) {
	e := NewEngine(DefaultConfig(), testMapper())

	effs := e.PointerDown(GridTarget(), 600)
	require.Empty(t, timersOf(effs), "precise create waits on movement, not timers")

	// Below the drag threshold nothing happens.
	require.Empty(t, e.PointerMove(615))
	require.True(t, e.Active())
	require.False(t, e.Session().Engaged())

	effs = e.PointerMove(625)
	require.True(t, hasEffect[CaptureInput](effs))
	require.False(t, hasEffect[Haptic](effs), "no pulse for a mouse")

	e.PointerMove(700)
	effs = e.PointerUp(700)
	creates := createsOf(effs)
	require.Len(t, creates, 1)
	require.Equal(t, timeline.Range{Start: 600, End: 700}, creates[0].Span)
}

func TestCreateDragUpwardNormalizes(t *testing.T) {
	e := NewEngine(DefaultConfig(), testMapper())
	e.PointerDown(GridTarget(), 600)
	e.PointerMove(630) // engage downward first
	e.PointerMove(540) // then drag above the origin

	creates := createsOf(e.PointerUp(540))
	require.Len(t, creates, 1)
	require.Equal(t, timeline.Range{Start: 540, End: 600}, creates[0].Span)
}

func TestCreateCommitAppliesMinimumDuration(t *testing.T) {
	e := NewEngine(DefaultConfig(), testMapper())
	e.PointerDown(GridTarget(), 600)
	e.PointerMove(630) // engaged, HasMoved
	e.PointerMove(605) // dragged back to a 5-minute sliver

	creates := createsOf(e.PointerUp(605))
	require.Len(t, creates, 1)
	require.Equal(t, 15, creates[0].Span.Duration(), "end extends forward to the floor")
	require.Equal(t, 600, creates[0].Span.Start)
}

func TestResizeEndMidnightSnap(t *testing.T) {
	e := NewEngine(DefaultConfig(), testMapper())
	ref := entryAt("e1", 1200, 1260) // 20:00–21:00

	effs := e.PointerDown(EntryTarget(ref), 1255) // bottom edge zone
	require.True(t, hasEffect[CaptureInput](effs), "precise resize engages on press")
	require.Equal(t, KindResizeEnd, e.Session().Kind)

	e.PointerMove(1412) // maps to 23:32, inside the snap window
	updates := updatesOf(e.PointerUp(1412))
	require.Len(t, updates, 1)
	require.Equal(t, timeline.Range{Start: 1200, End: 1440}, updates[0].Span)
}

func TestResizeStartClampsAgainstEnd(t *testing.T) {
	e := NewEngine(DefaultConfig(), testMapper())
	ref := entryAt("e1", 600, 660)

	e.PointerDown(EntryTarget(ref), 605) // top edge zone
	require.Equal(t, KindResizeStart, e.Session().Kind)

	e.PointerMove(655) // would leave less than the floor
	updates := updatesOf(e.PointerUp(655))
	require.Len(t, updates, 1)
	require.Equal(t, timeline.Range{Start: 645, End: 660}, updates[0].Span)
}

func TestMovePreservesDuration(t *testing.T) {
	e := NewEngine(DefaultConfig(), testMapper())
	ref := entryAt("e1", 600, 645)

	e.PointerDown(EntryTarget(ref), 620) // middle zone
	require.Equal(t, KindMove, e.Session().Kind)

	e.PointerMove(680) // past the drag threshold, engages and tracks
	updates := updatesOf(e.PointerUp(680))
	require.Len(t, updates, 1)
	require.Equal(t, 45, updates[0].Span.Duration())
	require.Equal(t, timeline.Range{Start: 660, End: 705}, updates[0].Span)
}

func TestMoveClampsAtDayEndWithoutTruncating(t *testing.T) {
	e := NewEngine(DefaultConfig(), testMapper())
	ref := entryAt("e1", 1380, 1410) // 23:00–23:30

	e.PointerDown(EntryTarget(ref), 1395)
	e.PointerMove(1495) // +100min would cross midnight

	updates := updatesOf(e.PointerUp(1495))
	require.Len(t, updates, 1)
	require.Equal(t, timeline.Range{Start: 1410, End: 1440}, updates[0].Span)
	require.Equal(t, 30, updates[0].Span.Duration())
}

func TestSubMinimumAdjustmentRejected(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinBlockMinutes = 0 // no edge clamp, so the duration guard is reachable
	e := NewEngine(cfg, testMapper())
	ref := entryAt("e1", 600, 660)

	e.PointerDown(EntryTarget(ref), 655)
	require.Equal(t, KindResizeEnd, e.Session().Kind)

	e.PointerMove(602) // 2-minute sliver
	effs := e.PointerUp(602)
	require.Empty(t, updatesOf(effs))
	require.True(t, hasEffect[UpdateRejected](effs))
}

func TestUnchangedAdjustmentCommitsNothing(t *testing.T) {
	e := NewEngine(DefaultConfig(), testMapper())
	ref := entryAt("e1", 600, 660)

	e.PointerDown(EntryTarget(ref), 620)
	e.PointerMove(650) // engage
	e.PointerMove(620) // and drag back to the origin

	effs := e.PointerUp(620)
	require.Empty(t, updatesOf(effs))
	require.False(t, hasEffect[UpdateRejected](effs))
}

func TestAdjustTapOpensEntry(t *testing.T) {
	e := NewEngine(DefaultConfig(), testMapper())
	ref := entryAt("e1", 600, 660)

	e.PointerDown(EntryTarget(ref), 620)
	effs := e.PointerUp(620)
	require.Empty(t, updatesOf(effs))
	require.True(t, hasEffect[OpenEntry](effs))
}

func TestUnadjustableEntryIgnored(t *testing.T) {
	e := NewEngine(DefaultConfig(), testMapper())
	ref := entryAt("e1", 600, 660)
	ref.Adjustable = false

	require.Empty(t, e.PointerDown(EntryTarget(ref), 620))
	require.False(t, e.Active())
}

func TestGhostTapVsHold(t *testing.T) {
	ghost := GhostRef{ID: "g1", Span: timeline.Range{Start: 840, End: 900}}

	t.Run("tap opens confirmation", func(t *testing.T) {
		e := NewEngine(DefaultConfig(), testMapper())
		effs := e.PointerDown(GhostTarget(ghost), 850)
		id := singleTimer(t, effs)
		require.Equal(t, TimerTap, id.Kind)

		effs = e.PointerUp(850)
		require.True(t, hasEffect[OpenGhost](effs))
		require.Empty(t, createsOf(effs))

		require.Empty(t, e.TimerFired(id), "tap timer is stale after release")
	})

	t.Run("hold converts to create seeded at the ghost", func(t *testing.T) {
		e := NewEngine(DefaultConfig(), testMapper())
		id := singleTimer(t, e.PointerDown(GhostTarget(ghost), 850))

		effs := e.TimerFired(id)
		require.True(t, hasEffect[CaptureInput](effs))
		require.Equal(t, timeline.Range{Start: 840, End: 900}, e.Session().Original)

		effs = e.PointerUp(850)
		creates := createsOf(effs)
		require.Len(t, creates, 1)
		require.Equal(t, "g1", creates[0].GhostID)
		require.Equal(t, timeline.Range{Start: 840, End: 900}, creates[0].Span)
		require.False(t, hasEffect[OpenGhost](effs))
	})

	t.Run("hold then stretch extends from the ghost start", func(t *testing.T) {
		e := NewEngine(DefaultConfig(), testMapper())
		id := singleTimer(t, e.PointerDown(GhostTarget(ghost), 850))
		e.TimerFired(id)
		e.PointerMove(960)

		creates := createsOf(e.PointerUp(960))
		require.Len(t, creates, 1)
		require.Equal(t, timeline.Range{Start: 840, End: 960}, creates[0].Span)
	})

	t.Run("coarse early movement abandons to scroll", func(t *testing.T) {
		e := NewEngine(coarseConfig(), testMapper())
		id := singleTimer(t, e.PointerDown(GhostTarget(ghost), 850))
		e.PointerMove(860)
		require.False(t, e.Active())
		require.Empty(t, e.TimerFired(id))
	})
}

func TestEscapeCancelsCleanly(t *testing.T) {
	t.Run("engaged create", func(t *testing.T) {
		e := NewEngine(DefaultConfig(), testMapper())
		e.PointerDown(GridTarget(), 600)
		e.PointerMove(630)

		effs := e.Cancel()
		require.True(t, hasEffect[ClearPreview](effs))
		require.True(t, hasEffect[ReleaseInput](effs))
		require.Empty(t, createsOf(effs))
		require.False(t, e.Active())
	})

	t.Run("engaged adjust", func(t *testing.T) {
		e := NewEngine(DefaultConfig(), testMapper())
		e.PointerDown(EntryTarget(entryAt("e1", 600, 660)), 620)
		e.PointerMove(680)

		effs := e.Cancel()
		require.Empty(t, updatesOf(effs))
		require.False(t, e.Active())
	})

	t.Run("pending ghost leaves no live timer", func(t *testing.T) {
		e := NewEngine(DefaultConfig(), testMapper())
		id := singleTimer(t, e.PointerDown(GhostTarget(GhostRef{ID: "g1", Span: timeline.Range{Start: 840, End: 900}}), 850))

		e.Cancel()
		require.False(t, e.Active())
		require.Empty(t, e.TimerFired(id))
	})
}

func TestStaleTimerGenerationIgnored(t *testing.T) {
	e := NewEngine(coarseConfig(), testMapper())

	first := singleTimer(t, e.PointerDown(GridTarget(), 500))
	e.PointerUp(500) // never engaged, session destroyed

	second := singleTimer(t, e.PointerDown(GridTarget(), 700))
	require.NotEqual(t, first.Seq, second.Seq)

	// The first gesture's timer fires late: must not advance the second.
	require.Empty(t, e.TimerFired(first))
	require.True(t, e.Active())
	require.False(t, e.Session().Engaged())
}

func TestPointerDownDuringSessionIgnored(t *testing.T) {
	e := NewEngine(DefaultConfig(), testMapper())
	e.PointerDown(GridTarget(), 600)
	require.Empty(t, e.PointerDown(GridTarget(), 800))
	require.Equal(t, 600, e.Session().OriginY)
}

func TestClassifyZone(t *testing.T) {
	// 100px block: [0,20) start edge, [20,80) move, [80,100) end edge.
	require.Equal(t, KindResizeStart, classifyZone(110, 100, 200))
	require.Equal(t, KindMove, classifyZone(120, 100, 200))
	require.Equal(t, KindMove, classifyZone(179, 100, 200))
	require.Equal(t, KindResizeEnd, classifyZone(180, 100, 200))
	require.Equal(t, KindMove, classifyZone(150, 150, 150), "degenerate block defaults to move")
}
