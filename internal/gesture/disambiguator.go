package gesture

import "time"

// The same scroll-vs-gesture disambiguation runs at every call site;
// only its Timings differ. For coarse pointers it is the two-phase
// stillness-then-hold protocol; for precise pointers it collapses to a
// single drag threshold because mouse movement never competes with
// scrolling.

// pendingVerdict is the outcome of a pointer event while engagement is
// still undecided.
type pendingVerdict int

const (
	// verdictWait keeps the gesture pending; sub-threshold movement is
	// noise, not intent.
	verdictWait pendingVerdict = iota
	// verdictEngage begins live tracking immediately.
	verdictEngage
	// verdictAbandon destroys the session and lets native scroll win.
	verdictAbandon
)

// disambiguator evaluates pending-phase events for one call site.
// requireHold distinguishes move/create (tap targets needing the full
// hold) from resize (edge-anchored, engages on stillness alone).
type disambiguator struct {
	modality    Modality
	timings     Timings
	requireHold bool
}

// firstTimer returns the timer to schedule at pointer-down, if any.
// A precise pointer with no hold requirement engages synchronously and
// needs no timer at all.
func (d disambiguator) firstTimer() (TimerKind, time.Duration, bool) {
	if d.modality == ModalityCoarse {
		return TimerStillness, d.timings.Stillness, true
	}
	return 0, 0, false
}

// engagesImmediately reports whether pointer-down itself confirms the
// gesture (precise pointer, resize kinds).
func (d disambiguator) engagesImmediately() bool {
	return d.modality == ModalityPrecise && !d.requireHold
}

// onMove classifies a pending-phase displacement.
func (d disambiguator) onMove(displacement int) pendingVerdict {
	if d.modality == ModalityCoarse {
		if displacement > d.timings.ScrollCancelPx {
			return verdictAbandon
		}
		return verdictWait
	}
	if displacement > d.timings.DragThresholdPx {
		return verdictEngage
	}
	return verdictWait
}

// onStillness handles the stillness timer firing: either a hold phase
// follows, or the gesture engages right away.
func (d disambiguator) onStillness() (next TimerKind, delay time.Duration, hold bool) {
	if d.requireHold {
		return TimerHold, d.timings.Hold, true
	}
	return 0, 0, false
}
