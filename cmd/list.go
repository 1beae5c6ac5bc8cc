package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fenrel/daygrid/internal/db"
	"github.com/fenrel/daygrid/internal/timeline"
)

var listDay string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print a day's entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		day := listDay
		if day == "" {
			day = today()
		}

		dbh, err := db.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()

		entries, err := db.EntriesForDay(dbh, day)
		if err != nil {
			return err
		}
		ghosts, err := db.GhostEventsForDay(dbh, day)
		if err != nil {
			return err
		}

		fmt.Printf("%s:\n", day)
		for _, e := range entries {
			fmt.Printf("  %s–%s  %-12s %s\n",
				timeline.Clock(e.StartMinutes), timeline.Clock(e.EndMinutes), e.Category, e.Activity)
		}
		for _, g := range ghosts {
			fmt.Printf("  %s–%s  %-12s %s (not imported)\n",
				timeline.Clock(g.StartMinutes), timeline.Clock(g.EndMinutes), "calendar", g.Title)
		}
		if len(entries) == 0 && len(ghosts) == 0 {
			fmt.Println("  (nothing logged)")
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listDay, "day", "d", "", "Day, YYYY-MM-DD (default today)")
}
