// Package storage provides SQLite-based persistence for high scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"cmp"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/moon-runner/internal/config"
)

// DefaultProfile is used when no profile name is given.
const DefaultProfile = "local"

const highScorePrefix = "high_score:"

// ErrNotNumeric is returned when a stored high score cannot be parsed.
var ErrNotNumeric = errors.New("storage: stored value is not a number")

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ProfileScore is the recorded high score of one profile.
type ProfileScore struct {
	Profile   string
	Raw       string // Stored text, kept for diagnostics
	Score     int    // 0 when Raw is not numeric
	Valid     bool
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Immediate transactions take the write lock up front, so concurrent
	// sessions wait on busy_timeout instead of failing a lock upgrade.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)&_txlock=immediate")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// Values are stored as text so a damaged entry is detected on read
// instead of failing the insert.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get returns the raw value stored under key. ok is false if the key is absent.
func (s *Store) Get(key string) (value string, ok bool, err error) {
	return get(s.db, key)
}

func get(q querier, key string) (value string, ok bool, err error) {
	err = q.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	return set(s.db, key, value)
}

func set(q querier, key, value string) error {
	_, err := q.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM settings WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete %s: %w", key, err)
	}
	return nil
}

// HighScore returns the high score of profile. It returns 0 and no error
// if nothing is recorded, and 0 with ErrNotNumeric if the value is damaged.
func (s *Store) HighScore(profile string) (int, error) {
	raw, ok, err := s.Get(highScoreKey(profile))
	if err != nil || !ok {
		return 0, err
	}
	score, ok := parseScore(raw)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, raw)
	}
	return score, nil
}

// RaiseHighScore records score for profile unless a higher valid score is
// already stored. Values parseScore rejects count as damaged and are
// overwritten.
func (s *Store) RaiseHighScore(profile string, score int) error {
	key := highScoreKey(profile)
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	defer tx.Rollback()

	raw, ok, err := get(tx, key)
	if err != nil {
		return err
	}
	if current, valid := parseScore(raw); ok && valid && current >= score {
		return nil
	}
	if err := set(tx, key, strconv.Itoa(score)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// ClearHighScore deletes the recorded high score of profile.
func (s *Store) ClearHighScore(profile string) error {
	return s.Delete(highScoreKey(profile))
}

// HighScores lists the recorded high scores of all profiles, best first.
func (s *Store) HighScores() ([]ProfileScore, error) {
	rows, err := s.db.Query(
		`SELECT key, value, updated_at FROM settings WHERE key GLOB ? ORDER BY key`,
		highScorePrefix+"*",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query high scores: %w", err)
	}
	defer rows.Close()

	var entries []ProfileScore
	for rows.Next() {
		var key string
		var e ProfileScore
		var updatedAt any
		if err := rows.Scan(&key, &e.Raw, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Profile = strings.TrimPrefix(key, highScorePrefix)
		e.Score, e.Valid = parseScore(e.Raw)

		// Parse the datetime - handle both time.Time and string
		switch v := updatedAt.(type) {
		case time.Time:
			e.UpdatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.UpdatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	slices.SortStableFunc(entries, func(a, b ProfileScore) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return entries, nil
}

func highScoreKey(profile string) string {
	if profile == "" {
		profile = DefaultProfile
	}
	return highScorePrefix + profile
}

// parseScore accepts non-negative decimal integers only.
func parseScore(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
