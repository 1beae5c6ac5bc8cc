package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fenrel/daygrid/internal/db"
	"github.com/fenrel/daygrid/internal/timeline"
)

var (
	logCategory string
	logFrom     string
	logTo       string
)

// logCmd records an entry without opening the TUI, for scripting and
// quick captures.
var logCmd = &cobra.Command{
	Use:   "log [activity]",
	Short: "Add an entry for today from the command line",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := parseClock(logFrom)
		if err != nil {
			return err
		}
		end, err := parseClock(logTo)
		if err != nil {
			return err
		}
		span := timeline.Range{Start: start, End: end}.Normalize()
		if span.Duration() == 0 {
			return fmt.Errorf("empty range %s..%s", logFrom, logTo)
		}

		dbh, err := db.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()

		_, err = db.InsertEntry(dbh, db.Entry{
			Day:          today(),
			StartMinutes: span.Start,
			EndMinutes:   span.End,
			Category:     logCategory,
			Activity:     strings.Join(args, " "),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Logged %s – %s.\n", timeline.Clock(span.Start), timeline.Clock(span.End))
		return nil
	},
}

func init() {
	logCmd.Flags().StringVarP(&logCategory, "category", "c", "work", "Category name")
	logCmd.Flags().StringVarP(&logFrom, "from", "f", "09:00", "Start time, HH:MM")
	logCmd.Flags().StringVarP(&logTo, "to", "t", "09:30", "End time, HH:MM")
}

func parseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("bad time %q, want HH:MM", s)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || h*60+m > timeline.MinutesPerDay {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return h*60 + m, nil
}
