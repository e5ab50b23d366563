package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"
)

// Store persists the canonical catalog in SQLite. A file lock next to
// the database serializes writers across processes; readers go straight
// to SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}

// Open initializes or connects to the catalog database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{
		db:   db,
		path: path,
		lock: flock.New(path + ".lock"),
	}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

const entryColumns = "video_id, timecode_text, timecode_seconds, title, artist, search_key, genre, confidence, published_date, source_link, origin"

func scanEntry(scanner interface{ Scan(dest ...any) error }) (Entry, error) {
	var e Entry
	err := scanner.Scan(
		&e.VideoID,
		&e.TimecodeText,
		&e.TimecodeSeconds,
		&e.Title,
		&e.Artist,
		&e.SearchKey,
		&e.Genre,
		&e.Confidence,
		&e.PublishedDate,
		&e.SourceLink,
		&e.Origin,
	)
	return e, err
}

// MergeBatch appends entries not already present, keyed by
// (video_id, timecode_text), and reports how many rows were added.
// Existing rows are never updated.
func (s *Store) MergeBatch(ctx context.Context, incoming []Entry) (int, error) {
	ctx = ensureContext(ctx)
	if len(incoming) == 0 {
		return 0, nil
	}

	if err := s.lock.Lock(); err != nil {
		return 0, fmt.Errorf("acquire catalog lock: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	added := 0
	err := retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin merge tx: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		added = 0
		for _, e := range incoming {
			res, err := tx.ExecContext(ctx,
				`INSERT INTO song_entries (`+entryColumns+`, created_at)
                 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
                 ON CONFLICT (video_id, timecode_text) DO NOTHING`,
				e.VideoID,
				e.TimecodeText,
				e.TimecodeSeconds,
				e.Title,
				e.Artist,
				e.SearchKey,
				e.Genre,
				e.Confidence,
				e.PublishedDate,
				e.SourceLink,
				e.Origin,
				now,
			)
			if err != nil {
				return fmt.Errorf("insert entry %s@%s: %w", e.VideoID, e.TimecodeText, err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("rows affected: %w", err)
			}
			added += int(n)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit merge: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return added, nil
}

// List returns all entries ordered by (published_date, timecode_seconds)
// with insertion order breaking ties.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM song_entries
         ORDER BY published_date, timecode_seconds, id`)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

// ListByVideo returns one video's entries ordered by timecode.
func (s *Store) ListByVideo(ctx context.Context, videoID string) ([]Entry, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM song_entries
         WHERE video_id = ? ORDER BY timecode_seconds, id`, videoID)
	if err != nil {
		return nil, fmt.Errorf("list video entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

// Stats summarizes the catalog for the stats command.
type Stats struct {
	TotalEntries int
	Videos       int
	ByGenre      map[string]int
}

// Summarize computes catalog-wide counts.
func (s *Store) Summarize(ctx context.Context) (Stats, error) {
	ctx = ensureContext(ctx)
	stats := Stats{ByGenre: make(map[string]int)}

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1), COUNT(DISTINCT video_id) FROM song_entries`,
	).Scan(&stats.TotalEntries, &stats.Videos)
	if err != nil {
		return Stats{}, fmt.Errorf("count entries: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT genre, COUNT(1) FROM song_entries GROUP BY genre`)
	if err != nil {
		return Stats{}, fmt.Errorf("count genres: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var genre string
		var count int
		if err := rows.Scan(&genre, &count); err != nil {
			return Stats{}, fmt.Errorf("scan genre count: %w", err)
		}
		stats.ByGenre[genre] = count
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("iterate genre counts: %w", err)
	}
	return stats, nil
}

// Clear removes every entry. The schema and version row stay in place.
func (s *Store) Clear(ctx context.Context) error {
	ctx = ensureContext(ctx)
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("acquire catalog lock: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	return retryOnBusy(ctx, func() error {
		_, err := s.db.ExecContext(ctx, `DELETE FROM song_entries`)
		if err != nil {
			return fmt.Errorf("clear entries: %w", err)
		}
		return nil
	})
}
