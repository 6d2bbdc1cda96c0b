package history

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens the SQLite database at path read-only.
func Open(path string) (*sql.DB, error) {
	dsn := (&url.URL{Scheme: "file", OmitHost: true, Path: path, RawQuery: "mode=ro"}).String()
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// Reader extracts visits at or after a cutoff from a validated History
// database.
type Reader struct {
	db     *sql.DB
	cutoff int64
}

// NewReader creates a Reader for visits with visit_time >= cutoff, where
// cutoff is a Chromium timestamp.
func NewReader(db *sql.DB, cutoff int64) *Reader {
	return &Reader{db: db, cutoff: cutoff}
}

// Visits returns every visit in the window, newest first. Visits whose URL
// row is missing keep an empty URL and title.
func (r *Reader) Visits(ctx context.Context) ([]VisitRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			COALESCE(u.url, ''),
			COALESCE(u.title, ''),
			v.visit_time - ?,
			v.transition & 255
		FROM visits v
		LEFT JOIN urls u ON v.url = u.id
		WHERE v.visit_time >= ?
		ORDER BY v.visit_time DESC
	`, EpochOffsetMicros, r.cutoff)
	if err != nil {
		return nil, fmt.Errorf("query visits: %w", err)
	}
	defer rows.Close()

	records := []VisitRecord{}
	for rows.Next() {
		var rec VisitRecord
		var transition int64
		if err := rows.Scan(&rec.URL, &rec.Title, &rec.TimeUsec, &transition); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		rec.PageTransition = TransitionLabel(transition)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read visits: %w", err)
	}

	return records, nil
}

// Stats returns the visit count and time range inside the window.
func (r *Reader) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM visits WHERE visit_time >= ?", r.cutoff,
	).Scan(&stats.VisitCount)
	if err != nil {
		return nil, fmt.Errorf("count visits: %w", err)
	}

	var earliest, latest sql.NullInt64
	err = r.db.QueryRowContext(ctx,
		"SELECT MIN(visit_time) FROM visits WHERE visit_time >= ?", r.cutoff,
	).Scan(&earliest)
	if err != nil {
		return nil, fmt.Errorf("earliest visit: %w", err)
	}

	err = r.db.QueryRowContext(ctx,
		"SELECT MAX(visit_time) FROM visits WHERE visit_time >= ?", r.cutoff,
	).Scan(&latest)
	if err != nil {
		return nil, fmt.Errorf("latest visit: %w", err)
	}

	stats.Earliest = earliest.Int64
	stats.Latest = latest.Int64

	return stats, nil
}
