package db

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Entry is one logged time block on a day.
type Entry struct {
	ID              string
	Day             string // YYYY-MM-DD
	StartMinutes    int
	EndMinutes      int
	DurationMinutes int
	Category        string
	Activity        string
}

// InsertEntry stores a new entry and returns its generated id.
func InsertEntry(dbh *sql.DB, e Entry) (string, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	_, err := dbh.Exec(`
		INSERT INTO entries(id, day, start_minutes, end_minutes, duration_minutes, category, activity)
		VALUES(?,?,?,?,?,?,?)`,
		e.ID, e.Day, e.StartMinutes, e.EndMinutes, e.EndMinutes-e.StartMinutes, e.Category, e.Activity,
	)
	if err != nil {
		return "", fmt.Errorf("insert entry: %w", err)
	}
	return e.ID, nil
}

// UpdateEntryTimes replaces an entry's full time range. This is the
// commit path for an adjustment gesture; there is no partial patch.
func UpdateEntryTimes(dbh *sql.DB, id string, startMinutes, endMinutes int) error {
	res, err := dbh.Exec(`
		UPDATE entries
		SET start_minutes = ?, end_minutes = ?, duration_minutes = ?,
		    updated_at = strftime('%Y-%m-%dT%H:%M:%fZ','now')
		WHERE id = ?`,
		startMinutes, endMinutes, endMinutes-startMinutes, id,
	)
	if err != nil {
		return fmt.Errorf("update entry times: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update entry times: no entry with id %s", id)
	}
	return nil
}

// UpdateEntryDetails changes category and activity text.
func UpdateEntryDetails(dbh *sql.DB, id, category, activity string) error {
	_, err := dbh.Exec(`
		UPDATE entries SET category = ?, activity = ?,
		    updated_at = strftime('%Y-%m-%dT%H:%M:%fZ','now')
		WHERE id = ?`, category, activity, id)
	if err != nil {
		return fmt.Errorf("update entry details: %w", err)
	}
	return nil
}

// DeleteEntry removes an entry.
func DeleteEntry(dbh *sql.DB, id string) error {
	if _, err := dbh.Exec(`DELETE FROM entries WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// EntriesForDay lists a day's entries ordered by start time.
func EntriesForDay(dbh *sql.DB, day string) ([]Entry, error) {
	rows, err := dbh.Query(`
		SELECT id, day, start_minutes, end_minutes, duration_minutes, category, activity
		FROM entries WHERE day = ? ORDER BY start_minutes ASC`, day)
	if err != nil {
		return nil, fmt.Errorf("entries for day: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Day, &e.StartMinutes, &e.EndMinutes, &e.DurationMinutes, &e.Category, &e.Activity); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// CountEntriesForDay reports how many entries exist for a day; the
// reminder uses it to decide whether to nag.
func CountEntriesForDay(dbh *sql.DB, day string) (int, error) {
	var n int
	err := dbh.QueryRow(`SELECT COUNT(*) FROM entries WHERE day = ?`, day).Scan(&n)
	return n, err
}
