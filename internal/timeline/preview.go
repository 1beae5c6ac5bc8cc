package timeline

// Preview is the ephemeral range shown while a gesture is live. It is
// derived from the gesture session on every move and is never persisted.
// EntryID is empty while a new block is being created.
type Preview struct {
	EntryID string
	Span    Range
}

// Active reports whether there is anything to draw.
func (p Preview) Active() bool { return p.Span.Duration() > 0 || p.EntryID != "" }

// Label renders the proposed range for the overlay, e.g. "09:15 – 10:00".
func (p Preview) Label() string {
	return Clock(p.Span.Start) + " – " + Clock(p.Span.End)
}
