// Package timeline maps between screen space and clock time on the
// 24-hour day grid.
package timeline

import "fmt"

const (
	// MinutesPerDay is the full vertical extent of the grid.
	MinutesPerDay = 1440
	// DefaultSnap is the snapping granularity in minutes.
	DefaultSnap = 15
)

// Mapper converts a vertical screen coordinate into clock minutes, given
// the grid's scroll offset and a fixed pixels-per-minute scale. It is a
// pure value: same inputs, same output, and increasing Y never yields a
// decreasing time.
type Mapper struct {
	PxPerMinute float64 // vertical scale, must be > 0
	TopY        int     // screen Y of the grid's first visible row
	ScrollPx    int     // pixels scrolled past 00:00
	Snap        int     // snap granularity in minutes, 0 disables snapping
}

// MinutesAt maps a screen Y to minutes from midnight, snapped and clamped
// to [0, MinutesPerDay].
func (m Mapper) MinutesAt(y int) int {
	px := float64(y-m.TopY+m.ScrollPx)
	mins := int(px/m.PxPerMinute + 0.5)
	return clampMinutes(m.snap(mins))
}

// DeltaMinutes converts a vertical pixel delta into a snapped minute
// delta. Negative deltas round toward zero symmetrically with positive
// ones so an upward drag mirrors a downward one.
func (m Mapper) DeltaMinutes(dy int) int {
	neg := dy < 0
	if neg {
		dy = -dy
	}
	mins := m.snap(int(float64(dy)/m.PxPerMinute + 0.5))
	if neg {
		return -mins
	}
	return mins
}

// YFor is the inverse of MinutesAt, without snapping. Used to place
// rendered blocks so hit tests agree with the forward mapping.
func (m Mapper) YFor(minutes int) int {
	return m.TopY - m.ScrollPx + int(float64(minutes)*m.PxPerMinute+0.5)
}

func (m Mapper) snap(mins int) int {
	if m.Snap <= 0 {
		return mins
	}
	half := m.Snap / 2
	return ((mins + half) / m.Snap) * m.Snap
}

func clampMinutes(v int) int {
	if v < 0 {
		return 0
	}
	if v > MinutesPerDay {
		return MinutesPerDay
	}
	return v
}

// Clock renders minutes from midnight as HH:MM. The end-of-day sentinel
// renders as 24:00 rather than wrapping to 00:00.
func Clock(minutes int) string {
	if minutes >= MinutesPerDay {
		return "24:00"
	}
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
