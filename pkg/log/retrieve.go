package log

import (
	"database/sql"
	"fmt"
	stdlog "log"
	"time"
)

// LogEntry is one stored log event.
type LogEntry struct {
	ID         int64
	InsertedAt time.Time
	Event      string // the raw JSON line
}

const (
	DefaultLimit = 100
)

// getHandle provides safe concurrent access to the global dbHandle.
func getHandle() (*sql.DB, error) {
	mu.RLock()
	defer mu.RUnlock()
	if dbHandle == nil {
		return nil, ErrNotInitialized
	}
	return dbHandle, nil
}

// parseDBTimestamp tries common SQLite timestamp formats.
func parseDBTimestamp(ts string) time.Time {
	formats := []string{
		"2006-01-02 15:04:05",
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02 15:04:05.999",
	}
	for _, format := range formats {
		if t, err := time.Parse(format, ts); err == nil {
			return t
		}
	}
	stdlog.Printf("Warning: could not parse inserted_at timestamp '%s'", ts)
	return time.Time{}
}

func scanEntries(rows *sql.Rows) ([]LogEntry, error) {
	var entries []LogEntry
	for rows.Next() {
		var entry LogEntry
		var insertedAtStr string
		if err := rows.Scan(&entry.ID, &insertedAtStr, &entry.Event); err != nil {
			return nil, fmt.Errorf("failed to scan log entry: %w", err)
		}
		entry.InsertedAt = parseDBTimestamp(insertedAtStr)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating log rows: %w", err)
	}
	return entries, nil
}

// GetLastNLogs retrieves the most recent n log entries, returned in
// chronological order (oldest of the n first).
// Returns ErrNotInitialized if log.Init() has not been called.
func GetLastNLogs(n int) ([]LogEntry, error) {
	handle, err := getHandle()
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return []LogEntry{}, nil
	}

	rows, err := handle.Query(`SELECT id, inserted_at, event FROM events ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query last %d logs: %w", n, err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// GetLogsBetween retrieves log entries whose event time (JSON 'time'
// field) falls within start and end, inclusive, in chronological order.
// A limit <= 0 means DefaultLimit.
func GetLogsBetween(start, end time.Time, limit int) ([]LogEntry, error) {
	handle, err := getHandle()
	if err != nil {
		return nil, err
	}

	effectiveLimit := limit
	if effectiveLimit <= 0 {
		effectiveLimit = DefaultLimit
	}

	query := `
        SELECT id, inserted_at, event
        FROM events
        WHERE json_extract(event, '$.time') >= ? AND json_extract(event, '$.time') <= ?
        ORDER BY json_extract(event, '$.time') ASC, id ASC
        LIMIT ?`

	rows, err := handle.Query(query, start.Format(timeFieldFormat), end.Format(timeFieldFormat), effectiveLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to query logs between %s and %s: %w",
			start.Format(timeFieldFormat), end.Format(timeFieldFormat), err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// GetLogsSince retrieves log entries from start up to now. A limit <= 0
// means DefaultLimit.
func GetLogsSince(start time.Time, limit int) ([]LogEntry, error) {
	return GetLogsBetween(start, time.Now(), limit)
}
