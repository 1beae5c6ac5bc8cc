package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fenrel/daygrid/internal/config"
)

func utcConfig() config.Config {
	cfg := config.Default()
	cfg.Reminder.Time = "17:30"
	cfg.Reminder.Workdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}
	cfg.Reminder.Timezone = "UTC"
	return cfg
}

func TestNextAtSameDayBeforeReminder(t *testing.T) {
	// Monday morning: fire the same evening.
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	next := NextAt(now, utcConfig())
	require.Equal(t, time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC), next)
}

func TestNextAtRollsToNextDay(t *testing.T) {
	// Monday evening, past the reminder: Tuesday.
	now := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	next := NextAt(now, utcConfig())
	require.Equal(t, time.Date(2026, 3, 3, 17, 30, 0, 0, time.UTC), next)
}

func TestNextAtSkipsWeekend(t *testing.T) {
	// Friday evening: the next workday is Monday.
	now := time.Date(2026, 3, 6, 18, 0, 0, 0, time.UTC)
	next := NextAt(now, utcConfig())
	require.Equal(t, time.Date(2026, 3, 9, 17, 30, 0, 0, time.UTC), next)
	require.Equal(t, time.Monday, next.Weekday())
}

func TestNextAtLowercaseWorkdays(t *testing.T) {
	cfg := utcConfig()
	cfg.Reminder.Workdays = []string{"saturday", "sunday"}
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC) // Monday
	next := NextAt(now, cfg)
	require.Equal(t, time.Saturday, next.Weekday())
}
