package gesture

import "time"

// Timings parameterizes one disambiguation call site. The same protocol
// runs everywhere; only the constants differ per context.
type Timings struct {
	// Stillness is the initial window during which the pointer must stay
	// within ScrollCancelPx for a coarse gesture to survive.
	Stillness time.Duration
	// Hold runs after stillness is confirmed; when it elapses without
	// disqualifying movement the gesture engages.
	Hold time.Duration
	// ScrollCancelPx is the displacement that abandons a coarse gesture
	// in favor of native scrolling. Movement at or below it is noise.
	ScrollCancelPx int
	// DragThresholdPx is the displacement that engages a precise gesture,
	// and past which an engaged gesture counts as having moved.
	DragThresholdPx int
}

// GhostTimings parameterizes the tap-vs-hold flow on calendar
// placeholders, which uses a single short timer instead of the two-phase
// protocol.
type GhostTimings struct {
	Tap             time.Duration
	ScrollCancelPx  int
	DragThresholdPx int
}

// Config carries every tunable of the engine as a named value so no
// constant is re-derived at a call site.
type Config struct {
	Modality Modality

	Create Timings
	Adjust Timings
	Ghost  GhostTimings

	// SeedMinutes is the default block length seeded when a create
	// gesture engages before any movement.
	SeedMinutes int
	// MinBlockMinutes is the floor enforced on a committed creation (by
	// extending the end time forward) and the closest a resized edge may
	// approach its fixed counterpart.
	MinBlockMinutes int
	// MinAdjustMinutes rejects an adjustment whose final duration would
	// fall below it.
	MinAdjustMinutes int
	// EndOfDaySnapFrom makes a resize of the bottom edge at or past this
	// minute snap straight to midnight, so end-of-day stays reachable.
	EndOfDaySnapFrom int
}

// DefaultConfig returns the production constants. The create hold
// duration is deliberately a single knob: ui tests and product code have
// disagreed about it before (400 vs 600ms), so it must only ever live
// here and in the user config.
func DefaultConfig() Config {
	return Config{
		Modality: ModalityPrecise,
		Create: Timings{
			Stillness:       100 * time.Millisecond,
			Hold:            400 * time.Millisecond,
			ScrollCancelPx:  5,
			DragThresholdPx: 20,
		},
		Adjust: Timings{
			Stillness:       100 * time.Millisecond,
			Hold:            200 * time.Millisecond,
			ScrollCancelPx:  5,
			DragThresholdPx: 20,
		},
		Ghost: GhostTimings{
			Tap:             150 * time.Millisecond,
			ScrollCancelPx:  5,
			DragThresholdPx: 20,
		},
		SeedMinutes:      30,
		MinBlockMinutes:  15,
		MinAdjustMinutes: 5,
		EndOfDaySnapFrom: 1410,
	}
}
