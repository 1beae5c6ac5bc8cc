package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fenrel/daygrid/internal/db"
)

var summaryDay string

// summaryCmd prints a per-category breakdown for one day.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Per-category totals for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		day := summaryDay
		if day == "" {
			day = today()
		}

		dbh, err := db.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()

		rows, err := db.SummaryForDay(dbh, day)
		if err != nil {
			return err
		}

		fmt.Printf("%s:\n", day)
		var totalCount, totalMins int
		for _, r := range rows {
			fmt.Printf("  %-12s %3d blocks, %4d mins\n", r.Category, r.Count, r.TotalMinutes)
			totalCount += r.Count
			totalMins += r.TotalMinutes
		}
		fmt.Printf("  %-12s %3d blocks, %4d mins\n", "TOTAL", totalCount, totalMins)
		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVarP(&summaryDay, "day", "d", "", "Day, YYYY-MM-DD (default today)")
}
