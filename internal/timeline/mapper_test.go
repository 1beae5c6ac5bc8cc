package timeline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinutesAtSnapsAndClamps(t *testing.T) {
	m := Mapper{PxPerMinute: 16.0 / 30.0, TopY: 16, ScrollPx: 0, Snap: 15}

	require.Equal(t, 0, m.MinutesAt(16), "grid top is midnight")
	require.Equal(t, 30, m.MinutesAt(32), "one cell down is one half hour")
	require.Equal(t, 30, m.MinutesAt(35), "snaps to the nearest quarter hour")
	require.Equal(t, 0, m.MinutesAt(-100), "clamped at midnight")
	require.Equal(t, MinutesPerDay, m.MinutesAt(100000), "clamped at end of day")
}

func TestMinutesAtHonorsScroll(t *testing.T) {
	base := Mapper{PxPerMinute: 1, TopY: 16, Snap: 0}
	scrolled := base
	scrolled.ScrollPx = 480 // 08:00 at the top

	require.Equal(t, 0, base.MinutesAt(16))
	require.Equal(t, 480, scrolled.MinutesAt(16))
	require.Equal(t, 540, scrolled.MinutesAt(76))
}

func TestMinutesAtMonotonic(t *testing.T) {
	m := Mapper{PxPerMinute: 16.0 / 30.0, TopY: 16, Snap: 15}
	prev := m.MinutesAt(0)
	for y := 1; y < 800; y++ {
		cur := m.MinutesAt(y)
		require.GreaterOrEqual(t, cur, prev, "y=%d", y)
		prev = cur
	}
}

func TestDeltaMinutesSymmetric(t *testing.T) {
	m := Mapper{PxPerMinute: 1, Snap: 15}
	for _, dy := range []int{0, 7, 8, 30, 100, 1440} {
		require.Equal(t, m.DeltaMinutes(dy), -m.DeltaMinutes(-dy), "dy=%d", dy)
	}
	require.Equal(t, 0, m.DeltaMinutes(7), "sub-half-snap rounds to zero")
	require.Equal(t, 15, m.DeltaMinutes(8))
}

func TestYForRoundTrips(t *testing.T) {
	m := Mapper{PxPerMinute: 16.0 / 30.0, TopY: 16, ScrollPx: 128, Snap: 0}
	for _, mins := range []int{0, 15, 480, 555, 1440} {
		require.Equal(t, mins, m.MinutesAt(m.YFor(mins)), "minutes=%d", mins)
	}
}

func TestClock(t *testing.T) {
	require.Equal(t, "00:00", Clock(0))
	require.Equal(t, "09:05", Clock(545))
	require.Equal(t, "23:30", Clock(1410))
	require.Equal(t, "24:00", Clock(1440), "end of day never wraps to 00:00")
	require.Equal(t, "00:00", Clock(-5))
}

func TestRangeNormalize(t *testing.T) {
	require.Equal(t, Range{Start: 540, End: 600}, Range{Start: 600, End: 540}.Normalize())
	require.Equal(t, Range{Start: 540, End: 600}, Range{Start: 540, End: 600}.Normalize())
}

func TestRangeWithMinDuration(t *testing.T) {
	require.Equal(t, Range{Start: 600, End: 615}, Range{Start: 600, End: 605}.WithMinDuration(15))
	require.Equal(t, Range{Start: 600, End: 660}, Range{Start: 600, End: 660}.WithMinDuration(15), "long enough, untouched")
	require.Equal(t, Range{Start: 1425, End: 1440}, Range{Start: 1438, End: 1440}.WithMinDuration(15), "slides back at end of day")
}

func TestRangeShift(t *testing.T) {
	r := Range{Start: 600, End: 645}
	require.Equal(t, Range{Start: 660, End: 705}, r.Shift(60))
	require.Equal(t, Range{Start: 0, End: 45}, r.Shift(-700), "clamped by sliding, not truncating")
	require.Equal(t, Range{Start: 1395, End: 1440}, r.Shift(900))
	require.Equal(t, 45, r.Shift(900).Duration())
}

func TestPreviewLabel(t *testing.T) {
	p := Preview{Span: Range{Start: 555, End: 600}}
	require.True(t, p.Active())
	require.Equal(t, "09:15 – 10:00", p.Label())
	require.False(t, Preview{}.Active())
}
