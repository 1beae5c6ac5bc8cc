package db

import (
	"database/sql"
	"fmt"
)

// CategorySummary is one row of the per-category daily breakdown.
type CategorySummary struct {
	Category     string
	Count        int
	TotalMinutes int
}

// SummaryForDay aggregates a day's entries by category.
func SummaryForDay(dbh *sql.DB, day string) ([]CategorySummary, error) {
	rows, err := dbh.Query(`
		SELECT category, COUNT(*), COALESCE(SUM(duration_minutes),0)
		FROM entries
		WHERE day = ?
		GROUP BY category
		ORDER BY category ASC`, day)
	if err != nil {
		return nil, fmt.Errorf("summary for day: %w", err)
	}
	defer rows.Close()

	var out []CategorySummary
	for rows.Next() {
		var s CategorySummary
		if err := rows.Scan(&s.Category, &s.Count, &s.TotalMinutes); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
