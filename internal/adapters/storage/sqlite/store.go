// Package sqlite implements the persistent stores on a local SQLite
// database, using the pure-Go driver so the binary needs no cgo.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/IgorKammerGrahl/MoodTrack/internal/domain"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT UNIQUE NOT NULL,
    password TEXT NOT NULL,
    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS moods (
    id TEXT PRIMARY KEY,
    date TEXT NOT NULL,
    moodLevel INTEGER NOT NULL,
    emoji TEXT NOT NULL,
    color TEXT NOT NULL,
    note TEXT,
    contextualAnswers TEXT,
    aiReflection TEXT,
    reflectionStatus TEXT NOT NULL DEFAULT 'none',
    reflectionGeneratedAt TEXT,
    userId TEXT NOT NULL,
    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now')),
    FOREIGN KEY (userId) REFERENCES users(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_moods_userId ON moods(userId);
CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);

CREATE TRIGGER IF NOT EXISTS update_moods_timestamp
AFTER UPDATE ON moods
BEGIN
    UPDATE moods SET updated_at = datetime('now') WHERE id = NEW.id;
END;
`

// Store implements domain.EntryStore and domain.UserStore on one
// shared connection pool; all mutations are single-row updates keyed
// by id, so no cross-statement locking is needed.
type Store struct {
	db *sql.DB
}

// NewStore opens (and if needed creates) the database at path.
func NewStore(path string) (*Store, error) {
	db, err := openDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// ─────────────────────────────────────────
// EntryStore implementation
// ─────────────────────────────────────────

func (s *Store) CreateEntry(ctx context.Context, entry *domain.MoodEntry) error {
	var answers any
	if len(entry.ContextualAnswers) > 0 {
		raw, err := json.Marshal(entry.ContextualAnswers)
		if err != nil {
			return fmt.Errorf("encoding contextual answers: %w", err)
		}
		answers = string(raw)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO moods (
            id, date, moodLevel, emoji, color, note,
            contextualAnswers, aiReflection, reflectionStatus,
            reflectionGeneratedAt, userId, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, NULL, ?, NULL, ?, ?, ?)`,
		string(entry.ID),
		entry.Date.UTC().Format(time.RFC3339),
		entry.MoodLevel,
		entry.Emoji,
		entry.Color,
		nullable(entry.Note),
		answers,
		string(entry.ReflectionStatus),
		string(entry.UserID),
		entry.CreatedAt.UTC().Format(time.RFC3339),
		entry.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("sqlite CreateEntry: %w", err)
	}
	return nil
}

func (s *Store) GetEntry(ctx context.Context, id domain.EntryID) (*domain.MoodEntry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, date, moodLevel, emoji, color, note, contextualAnswers,
                aiReflection, reflectionStatus, reflectionGeneratedAt,
                userId, created_at, updated_at
         FROM moods WHERE id = ?`, string(id))

	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("sqlite GetEntry: %w", err)
	}
	return entry, nil
}

func (s *Store) ListEntriesByUser(ctx context.Context, userID domain.UserID) ([]*domain.MoodEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, moodLevel, emoji, color, note, contextualAnswers,
                aiReflection, reflectionStatus, reflectionGeneratedAt,
                userId, created_at, updated_at
         FROM moods WHERE userId = ? ORDER BY date DESC`, string(userID))
	if err != nil {
		return nil, fmt.Errorf("sqlite ListEntriesByUser: %w", err)
	}
	defer rows.Close()

	var out []*domain.MoodEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite ListEntriesByUser scan: %w", err)
		}
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite ListEntriesByUser rows: %w", err)
	}
	return out, nil
}

func (s *Store) SetReflection(ctx context.Context, id domain.EntryID, text string, status domain.ReflectionStatus) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE moods SET aiReflection = ?, reflectionStatus = ?, reflectionGeneratedAt = ? WHERE id = ?`,
		text, string(status), time.Now().UTC().Format(time.RFC3339), string(id))
	if err != nil {
		return fmt.Errorf("sqlite SetReflection: %w", err)
	}
	return requireRow(res)
}

func (s *Store) SetReflectionStatus(ctx context.Context, id domain.EntryID, status domain.ReflectionStatus) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE moods SET reflectionStatus = ? WHERE id = ?`,
		string(status), string(id))
	if err != nil {
		return fmt.Errorf("sqlite SetReflectionStatus: %w", err)
	}
	return requireRow(res)
}

// ─────────────────────────────────────────
// UserStore implementation
// ─────────────────────────────────────────

func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		string(user.ID), user.Name, user.Email, user.PasswordHash,
		user.CreatedAt.UTC().Format(time.RFC3339),
		user.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.email") {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("sqlite CreateUser: %w", err)
	}
	return nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, password, created_at FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (s *Store) GetUserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, password, created_at FROM users WHERE id = ?`, string(id))
	return scanUser(row)
}

// ─────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────

type scannable interface {
	Scan(dest ...any) error
}

func scanEntry(row scannable) (*domain.MoodEntry, error) {
	var (
		e           domain.MoodEntry
		id, userID  string
		date        string
		note        sql.NullString
		answers     sql.NullString
		reflection  sql.NullString
		status      string
		generatedAt sql.NullString
		createdAt   string
		updatedAt   string
	)

	err := row.Scan(&id, &date, &e.MoodLevel, &e.Emoji, &e.Color, &note,
		&answers, &reflection, &status, &generatedAt, &userID, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	e.ID = domain.EntryID(id)
	e.UserID = domain.UserID(userID)
	e.Date = parseTime(date)
	e.Note = note.String
	e.ReflectionStatus = domain.ReflectionStatus(status)
	e.ReflectionText = reflection.String
	e.CreatedAt = parseTime(createdAt)
	e.UpdatedAt = parseTime(updatedAt)

	if answers.Valid && answers.String != "" {
		if err := json.Unmarshal([]byte(answers.String), &e.ContextualAnswers); err != nil {
			return nil, fmt.Errorf("decoding contextual answers: %w", err)
		}
	}

	if generatedAt.Valid && generatedAt.String != "" {
		t := parseTime(generatedAt.String)
		e.ReflectionGeneratedAt = &t
	}

	return &e, nil
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var (
		u         domain.User
		id        string
		createdAt string
	)
	err := row.Scan(&id, &u.Name, &u.Email, &u.PasswordHash, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("sqlite user scan: %w", err)
	}
	u.ID = domain.UserID(id)
	u.CreatedAt = parseTime(createdAt)
	return &u, nil
}

func parseTime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	// sqlite default timestamps use "YYYY-MM-DD HH:MM:SS"
	t, _ := time.Parse("2006-01-02 15:04:05", s)
	return t
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
