package match

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// HistoryEntry is one persisted match outcome. The full MatchResult is
// stored as-is so callers get back exactly what the engine produced.
type HistoryEntry struct {
	ID                int64        `json:"id"`
	ResumeFingerprint string       `json:"resume_fingerprint"`
	JobFingerprint    string       `json:"job_fingerprint"`
	JobSnippet        string       `json:"job_snippet,omitempty"`
	MatchScore        int          `json:"match_score"`
	Result            *MatchResult `json:"result,omitempty"`
	CreatedAt         string       `json:"created_at"`
}

// HistoryListInput filters a history listing.
type HistoryListInput struct {
	MinScore int `json:"min_score,omitempty"`
	Limit    int `json:"limit,omitempty"`
}

// HistoryListResult is the output of a history listing.
type HistoryListResult struct {
	Entries []HistoryEntry `json:"entries"`
	Total   int            `json:"total"`
}

var (
	historyDB   *sql.DB
	historyPath string
	historyOnce sync.Once
	historyErr  error
)

// SetHistoryPath overrides the SQLite location. Must be called before the
// first history operation; empty keeps the default under $HOME.
func SetHistoryPath(path string) { historyPath = path }

// openHistoryDB opens (or creates) the SQLite history database.
func openHistoryDB() (*sql.DB, error) {
	historyOnce.Do(func() {
		dbPath := historyPath
		if dbPath == "" {
			dir := filepath.Join(os.Getenv("HOME"), ".go_match")
			if err := os.MkdirAll(dir, 0750); err != nil {
				historyErr = fmt.Errorf("history: mkdir %s: %w", dir, err)
				return
			}
			dbPath = filepath.Join(dir, "history.db")
		}
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			historyErr = fmt.Errorf("history: open db: %w", err)
			return
		}
		db.SetMaxOpenConns(1) // SQLite: single writer
		if err := initHistorySchema(db); err != nil {
			historyErr = fmt.Errorf("history: init schema: %w", err)
			return
		}
		historyDB = db
	})
	return historyDB, historyErr
}

// initHistorySchema creates the matches table if it doesn't exist.
func initHistorySchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS matches (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		resume_fp   TEXT NOT NULL,
		job_fp      TEXT NOT NULL,
		job_snippet TEXT,
		match_score INTEGER NOT NULL,
		result      TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`)
	return err
}

// SaveMatch appends a match outcome to the history store.
func SaveMatch(_ context.Context, resumeFP, jobFP, jobSnippet string, result *MatchResult) (int64, error) {
	if result == nil {
		return 0, errors.New("history: result is required")
	}

	db, err := openHistoryDB()
	if err != nil {
		return 0, err
	}

	data, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("history: marshal result: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := db.Exec(
		`INSERT INTO matches (resume_fp, job_fp, job_snippet, match_score, result, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		resumeFP, jobFP, jobSnippet, result.MatchScore, string(data), now,
	)
	if err != nil {
		return 0, fmt.Errorf("history: insert: %w", err)
	}

	id, _ := res.LastInsertId()
	return id, nil
}

// ListMatches returns persisted match outcomes, newest first, optionally
// filtered by a minimum score.
func ListMatches(_ context.Context, input HistoryListInput) (*HistoryListResult, error) {
	db, err := openHistoryDB()
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	rows, err := db.Query(
		`SELECT id, resume_fp, job_fp, job_snippet, match_score, result, created_at
		 FROM matches WHERE match_score >= ? ORDER BY id DESC LIMIT ?`,
		input.MinScore, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	entries := []HistoryEntry{}
	for rows.Next() {
		var e HistoryEntry
		var snippet sql.NullString
		var raw string
		if err := rows.Scan(&e.ID, &e.ResumeFingerprint, &e.JobFingerprint,
			&snippet, &e.MatchScore, &raw, &e.CreatedAt); err != nil {
			continue
		}
		e.JobSnippet = snippet.String
		var result MatchResult
		if json.Unmarshal([]byte(raw), &result) == nil {
			e.Result = &result
		}
		entries = append(entries, e)
	}

	var total int
	db.QueryRow(`SELECT COUNT(*) FROM matches WHERE match_score >= ?`, input.MinScore).Scan(&total) //nolint:errcheck

	return &HistoryListResult{Entries: entries, Total: total}, nil
}
