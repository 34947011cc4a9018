package commute

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one persisted commute log row. Rows are insert-only: there is
// no update or delete path.
type Entry struct {
	ID              int64
	TravelDate      string // ISO 8601 date
	TravelTime      string // HH:MM
	RouteName       string
	DurationMinutes int
	Notes           string
	CreatedAt       string
}

// RouteSummary is the per-route aggregate over all rows. It is derived on
// demand and never persisted.
type RouteSummary struct {
	RouteName    string
	Trips        int
	TotalMinutes int
	AvgMinutes   float64
}

const createTableSQL = `
CREATE TABLE IF NOT EXISTS commute_logs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    travel_date TEXT NOT NULL,
    travel_time TEXT NOT NULL,
    route_name TEXT NOT NULL,
    duration_minutes INTEGER NOT NULL,
    notes TEXT,
    created_at TEXT NOT NULL
)`

// Store persists commute log entries in a single-file SQLite database.
// Every operation opens its own connection, runs one statement and closes,
// so concurrent requests serialize at the database-file level and no
// application-side locking is needed.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the commute_logs table if it is absent. Safe to
// call on every render.
func (s *Store) EnsureSchema(ctx context.Context) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
		}
	}(db)
	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("create commute_logs table: %w", err)
	}
	return nil
}

// Insert stores a new entry with created_at set to the current local time
// at second precision. The caller is responsible for trimming and
// validating the fields; the store writes what it is given.
func (s *Store) Insert(ctx context.Context, e Entry) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
		}
	}(db)
	createdAt := time.Now().Format("2006-01-02T15:04:05")
	_, err = db.ExecContext(ctx, `
        INSERT INTO commute_logs (
            travel_date, travel_time, route_name, duration_minutes, notes, created_at
        )
        VALUES (?, ?, ?, ?, ?, ?)`,
		e.TravelDate, e.TravelTime, e.RouteName, e.DurationMinutes, e.Notes, createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert commute log: %w", err)
	}
	return nil
}

// Recent returns up to limit rows, most recent travel date first, then
// travel time, then insertion order as tie-break.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
		}
	}(db)
	rows, err := db.QueryContext(ctx, `
        SELECT id, travel_date, travel_time, route_name, duration_minutes, notes, created_at
        FROM commute_logs
        ORDER BY travel_date DESC, travel_time DESC, id DESC
        LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query commute logs: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var notes sql.NullString
		if err := rows.Scan(&e.ID, &e.TravelDate, &e.TravelTime, &e.RouteName, &e.DurationMinutes, &notes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan commute log: %w", err)
		}
		e.Notes = notes.String
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate commute logs: %w", err)
	}
	return out, nil
}

// Summarize aggregates all rows per route: trip count, total minutes and
// average minutes rounded to one decimal, busiest routes first.
func (s *Store) Summarize(ctx context.Context) ([]RouteSummary, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
		}
	}(db)
	rows, err := db.QueryContext(ctx, `
        SELECT
            route_name,
            COUNT(*) AS trips,
            SUM(duration_minutes) AS total_minutes,
            ROUND(AVG(duration_minutes), 1) AS avg_minutes
        FROM commute_logs
        GROUP BY route_name
        ORDER BY total_minutes DESC, trips DESC`)
	if err != nil {
		return nil, fmt.Errorf("query route summary: %w", err)
	}
	defer rows.Close()

	var out []RouteSummary
	for rows.Next() {
		var r RouteSummary
		if err := rows.Scan(&r.RouteName, &r.Trips, &r.TotalMinutes, &r.AvgMinutes); err != nil {
			return nil, fmt.Errorf("scan route summary: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate route summary: %w", err)
	}
	return out, nil
}
