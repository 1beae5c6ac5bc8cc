package timeline

// Range is a half-open span of clock minutes within one day. End may be
// MinutesPerDay to mean exactly midnight at the end of the day.
type Range struct {
	Start int
	End   int
}

// Duration returns the span length in minutes.
func (r Range) Duration() int { return r.End - r.Start }

// Normalize orders the bounds so Start <= End.
func (r Range) Normalize() Range {
	if r.Start > r.End {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// WithMinDuration extends End forward so the range spans at least min
// minutes, clamping the shift at end of day by pushing Start back instead.
func (r Range) WithMinDuration(min int) Range {
	if r.Duration() >= min {
		return r
	}
	r.End = r.Start + min
	if r.End > MinutesPerDay {
		r.End = MinutesPerDay
		r.Start = r.End - min
		if r.Start < 0 {
			r.Start = 0
		}
	}
	return r
}

// Shift moves both bounds by delta minutes, sliding the whole range back
// inside the day if either bound would leave it. Duration is preserved.
func (r Range) Shift(delta int) Range {
	s := r.Start + delta
	e := r.End + delta
	if s < 0 {
		e -= s
		s = 0
	}
	if e > MinutesPerDay {
		s -= e - MinutesPerDay
		e = MinutesPerDay
	}
	if s < 0 {
		s = 0
	}
	return Range{Start: s, End: e}
}
