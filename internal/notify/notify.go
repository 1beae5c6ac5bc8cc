package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Info delivers a desktop notification, best effort.
func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Pulse is the haptic-feedback analog for gesture hold confirmation: a
// single fire-and-forget system beep. Failures are ignored by callers.
func Pulse() error {
	return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
}

// FormatDailyPrompt builds the reminder text shown when a day has no
// logged entries yet.
func FormatDailyPrompt(logged int) (string, string) {
	title := "Daily timeline reminder"
	if logged == 0 {
		return title, "Nothing logged today. Block out your day?"
	}
	return title, fmt.Sprintf("%d blocks logged so far. Fill in the gaps?", logged)
}
