// Package history persists REPL input lines in a SQLite database so
// earlier sessions can be inspected with `pipefix -history`.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS history (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	session TEXT    NOT NULL,
	seq     INTEGER NOT NULL,
	input   TEXT    NOT NULL,
	at      TIMESTAMP NOT NULL
)`

type Entry struct {
	Session string
	Seq     int
	Input   string
	At      time.Time
}

// Store appends lines under one session id per process.
type Store struct {
	db      *sql.DB
	session string
	seq     int
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &Store{db: db, session: uuid.NewString()}, nil
}

// Session returns the id under which this store appends.
func (s *Store) Session() string {
	return s.session
}

func (s *Store) Append(input string) error {
	s.seq++
	_, err := s.db.Exec(
		"INSERT INTO history (session, seq, input, at) VALUES (?, ?, ?, ?)",
		s.session, s.seq, input, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// Recent returns up to n entries across all sessions, newest first.
func (s *Store) Recent(n int) ([]Entry, error) {
	rows, err := s.db.Query(
		"SELECT session, seq, input, at FROM history ORDER BY id DESC LIMIT ?", n)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Session, &e.Seq, &e.Input, &e.At); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
