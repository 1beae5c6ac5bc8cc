package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/fenrel/daygrid/internal/config"
)

// NextAt computes the next reminder occurrence that falls on a
// configured workday.
func NextAt(now time.Time, cfg config.Config) time.Time {
	loc := cfg.Location()
	now = now.In(loc)

	hour, min := 17, 30
	if len(cfg.Reminder.Time) >= 4 {
		if t, err := time.ParseInLocation("15:04", cfg.Reminder.Time, loc); err == nil {
			hour = t.Hour()
			min = t.Minute()
		}
	}

	workdays := map[string]bool{}
	for _, d := range cfg.Reminder.Workdays {
		d = strings.TrimSpace(d)
		if len(d) >= 3 {
			workdays[strings.Title(strings.ToLower(d[:3]))] = true
		}
	}
	isWorkday := func(t time.Time) bool {
		return workdays[t.Weekday().String()[:3]]
	}

	cand := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, loc)
	if !now.Before(cand) {
		cand = cand.Add(24 * time.Hour)
	}
	for !isWorkday(cand) {
		cand = cand.Add(24 * time.Hour)
	}
	return cand
}

// RunConfigured invokes f at each configured reminder time until ctx is
// canceled.
func RunConfigured(ctx context.Context, cfg config.Config, f func()) {
	next := NextAt(time.Now(), cfg)
	t := time.NewTimer(time.Until(next))
	for {
		select {
		case <-ctx.Done():
			if !t.Stop() {
				select {
				case <-t.C:
				default:
				}
			}
			return
		case <-t.C:
			f()
			next = NextAt(time.Now(), cfg)
			t.Reset(time.Until(next))
		}
	}
}
