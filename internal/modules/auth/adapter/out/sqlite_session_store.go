package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"aiact/internal/modules/auth/domain"
	authout "aiact/internal/modules/auth/port/out"
	"aiact/internal/platform/clock"
	apperrors "aiact/internal/platform/errors"

	_ "modernc.org/sqlite"
)

// SQLiteSessionStore keeps the token/identity pair in a single-row table.
// Save replaces the pair inside one transaction and Clear deletes it, so the
// pair can never be observed half-written.
type SQLiteSessionStore struct {
	db  *sql.DB
	clk clock.Clock
}

func NewSQLiteSessionStore(dbPath string, clk clock.Clock) (authout.SessionStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteSessionStore{db: db, clk: clk}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteSessionStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS session (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  token TEXT NOT NULL,
  identity TEXT NOT NULL,
  saved_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create session table: %w", err)
	}
	return nil
}

func (s *SQLiteSessionStore) Save(ctx context.Context, session domain.Session) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin session write: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("replace session: %w", err)
	}
	const stmt = `INSERT INTO session (id, token, identity, saved_at) VALUES (1, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, stmt, session.Token, session.Identity, s.clk.Now().Format("2006-01-02T15:04:05Z07:00")); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit session write: %w", err)
	}
	return nil
}

func (s *SQLiteSessionStore) Load(ctx context.Context) (domain.Session, error) {
	var session domain.Session
	row := s.db.QueryRowContext(ctx, `SELECT token, identity FROM session WHERE id = 1`)
	if err := row.Scan(&session.Token, &session.Identity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Session{}, apperrors.ErrNoSession
		}
		return domain.Session{}, fmt.Errorf("read session: %w", err)
	}
	if session.Token == "" || session.Identity == "" {
		return domain.Session{}, apperrors.ErrNoSession
	}
	return session, nil
}

func (s *SQLiteSessionStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
