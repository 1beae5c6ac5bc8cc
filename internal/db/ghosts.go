package db

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// GhostEvent is an imported calendar block that has not been converted
// into a real entry yet. The engine treats it as read-only.
type GhostEvent struct {
	ID           string
	Day          string
	Title        string
	StartMinutes int
	EndMinutes   int
	Source       string
}

// InsertGhostEvent stores an imported placeholder.
func InsertGhostEvent(dbh *sql.DB, g GhostEvent) (string, error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	_, err := dbh.Exec(`
		INSERT INTO ghost_events(id, day, title, start_minutes, end_minutes, source)
		VALUES(?,?,?,?,?,?)`,
		g.ID, g.Day, g.Title, g.StartMinutes, g.EndMinutes, g.Source,
	)
	if err != nil {
		return "", fmt.Errorf("insert ghost event: %w", err)
	}
	return g.ID, nil
}

// GhostEventsForDay lists a day's placeholders ordered by start time.
func GhostEventsForDay(dbh *sql.DB, day string) ([]GhostEvent, error) {
	rows, err := dbh.Query(`
		SELECT id, day, title, start_minutes, end_minutes, source
		FROM ghost_events WHERE day = ? ORDER BY start_minutes ASC`, day)
	if err != nil {
		return nil, fmt.Errorf("ghost events for day: %w", err)
	}
	defer rows.Close()

	var out []GhostEvent
	for rows.Next() {
		var g GhostEvent
		if err := rows.Scan(&g.ID, &g.Day, &g.Title, &g.StartMinutes, &g.EndMinutes, &g.Source); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// DeleteGhostEvent removes a placeholder, typically after it has been
// converted into a real entry.
func DeleteGhostEvent(dbh *sql.DB, id string) error {
	if _, err := dbh.Exec(`DELETE FROM ghost_events WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete ghost event: %w", err)
	}
	return nil
}
