package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fenrel/daygrid/internal/db"
	"github.com/fenrel/daygrid/internal/timeline"
)

var importSource string

// calendarEvent is one item of the JSON export format consumed by
// `daygrid import`: [{"title": ..., "start": RFC3339, "end": RFC3339}].
type calendarEvent struct {
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// importCmd loads calendar events as ghost placeholders. They show up
// in the day view's ghost lane until tapped or stretched into real
// entries.
var importCmd = &cobra.Command{
	Use:   "import <events.json>",
	Short: "Import calendar events as ghost blocks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var events []calendarEvent
		if err := json.Unmarshal(raw, &events); err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		dbh, err := db.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()

		loc := cfg.Location()
		n := 0
		for _, ev := range events {
			start := ev.Start.In(loc)
			end := ev.End.In(loc)
			if !end.After(start) || ev.Title == "" {
				continue
			}
			span := timeline.Range{
				Start: start.Hour()*60 + start.Minute(),
				End:   end.Hour()*60 + end.Minute(),
			}
			// Events that run past midnight are clipped to their first day.
			if span.End <= span.Start {
				span.End = timeline.MinutesPerDay
			}
			_, err := db.InsertGhostEvent(dbh, db.GhostEvent{
				Day:          start.Format("2006-01-02"),
				Title:        ev.Title,
				StartMinutes: span.Start,
				EndMinutes:   span.End,
				Source:       importSource,
			})
			if err != nil {
				return err
			}
			n++
		}
		fmt.Printf("Imported %d ghost event(s).\n", n)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVarP(&importSource, "source", "s", "calendar", "Source label stored with each event")
}
