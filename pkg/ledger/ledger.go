// Package ledger records which UUIDs were given which pokémon label, so a
// label heard in conversation can be traced back to the objects carrying it.
package ledger

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	_ "modernc.org/sqlite"

	"github.com/getcreddy/pokeid/pkg/pokemon"
)

// ErrNotFound is returned when an id has not been recorded.
var ErrNotFound = errors.New("not recorded")

type Ledger struct {
	db     *sql.DB
	logger hclog.Logger
}

type Entry struct {
	ID        uuid.UUID
	Label     pokemon.Label
	Note      string
	CreatedAt time.Time
}

// Collision is a label shared by more than one recorded id.
type Collision struct {
	Label pokemon.Label
	IDs   []uuid.UUID
}

func New(dbPath string) (*Ledger, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, err
	}

	l := &Ledger{db: db, logger: hclog.NewNullLogger()}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate ledger: %w", err)
	}

	return l, nil
}

// SetLogger sets the logger for ledger operations
func (l *Ledger) SetLogger(logger hclog.Logger) {
	l.logger = logger
}

func (l *Ledger) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS entries (
			id TEXT PRIMARY KEY,
			adjective TEXT NOT NULL,
			name TEXT NOT NULL,
			label TEXT NOT NULL,
			note TEXT DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_label ON entries(label)`,
	}

	for _, m := range migrations {
		if _, err := l.db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

func (l *Ledger) Close() error {
	return l.db.Close()
}

// Record encodes id and stores it. Recording an id again only updates its note.
func (l *Ledger) Record(id uuid.UUID, note string) (*Entry, error) {
	label := pokemon.Encode(id)
	_, err := l.db.Exec(
		`INSERT INTO entries (id, adjective, name, label, note) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET note = excluded.note`,
		id.String(), label.Adjective(), label.Name(), label.String(), note,
	)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("recorded id", "id", id, "label", label)

	return l.Get(id)
}

func (l *Ledger) Get(id uuid.UUID) (*Entry, error) {
	row := l.db.QueryRow(
		`SELECT id, adjective, name, note, created_at FROM entries WHERE id = ?`,
		id.String(),
	)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return e, err
}

// Lookup returns every recorded id whose label renders as text.
func (l *Ledger) Lookup(text string) ([]*Entry, error) {
	label, err := pokemon.Decode(text)
	if err != nil {
		return nil, err
	}
	return l.query(
		`SELECT id, adjective, name, note, created_at FROM entries
		 WHERE label = ? ORDER BY created_at, id`,
		label.String(),
	)
}

func (l *Ledger) List() ([]*Entry, error) {
	return l.query(`SELECT id, adjective, name, note, created_at FROM entries ORDER BY label, id`)
}

// Collisions returns the labels carried by two or more recorded ids.
func (l *Ledger) Collisions() ([]Collision, error) {
	entries, err := l.query(
		`SELECT id, adjective, name, note, created_at FROM entries
		 WHERE label IN (SELECT label FROM entries GROUP BY label HAVING COUNT(*) > 1)
		 ORDER BY label, id`,
	)
	if err != nil {
		return nil, err
	}

	var out []Collision
	for _, e := range entries {
		if n := len(out); n > 0 && out[n-1].Label == e.Label {
			out[n-1].IDs = append(out[n-1].IDs, e.ID)
			continue
		}
		out = append(out, Collision{Label: e.Label, IDs: []uuid.UUID{e.ID}})
	}
	l.logger.Debug("collisions", "count", len(out))
	return out, nil
}

func (l *Ledger) Forget(id uuid.UUID) error {
	res, err := l.db.Exec(`DELETE FROM entries WHERE id = ?`, id.String())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	l.logger.Debug("forgot id", "id", id)
	return nil
}

func (l *Ledger) query(q string, args ...interface{}) ([]*Entry, error) {
	rows, err := l.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(s scanner) (*Entry, error) {
	var (
		e         Entry
		id        string
		adj, name string
	)
	if err := s.Scan(&id, &adj, &name, &e.Note, &e.CreatedAt); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("corrupt ledger row %q: %w", id, err)
	}
	e.ID = parsed
	// Rows are written from Encode, so the pair is always in the tables.
	e.Label = pokemon.FromPair(adj, name)
	return &e, nil
}
