package slots

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/mdwtime/foundation/core/error"
	"github.com/msto63/mdwtime/foundation/utils/timex"
)

// SQLiteStore implements Store using SQLite. Times are stored in their text
// form next to an integer millisecond-of-day column used for range queries.
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ Store = (*SQLiteStore)(nil)

// SQLiteConfig holds configuration for the SQLite store
type SQLiteConfig struct {
	Path string
}

// DefaultSQLiteConfig returns default configuration
func DefaultSQLiteConfig() SQLiteConfig {
	return SQLiteConfig{
		Path: "./data/slots.db",
	}
}

const slotColumns = `id, name, start_time, end_time, created_at`

// NewSQLiteStore opens or creates the slot database at cfg.Path
func NewSQLiteStore(cfg SQLiteConfig) (*SQLiteStore, error) {
	// Ensure directory exists
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, dbError("slots.NewSQLiteStore", err, "failed to create directory")
	}

	// Open database with WAL mode
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, dbError("slots.NewSQLiteStore", err, "failed to open database")
	}

	store := &SQLiteStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, dbError("slots.NewSQLiteStore", err, "failed to initialize schema")
	}

	return store, nil
}

// initSchema creates the necessary tables
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS slots (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		start_ms INTEGER NOT NULL,
		end_ms INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_slots_range ON slots(start_ms, end_ms);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Create stores a new slot
func (s *SQLiteStore) Create(ctx context.Context, def Definition) (*Slot, error) {
	const op = "slots.Create"
	if err := validateDefinition(op, def); err != nil {
		return nil, err
	}

	slot := &Slot{
		ID:        uuid.New().String(),
		Name:      def.Name,
		Start:     def.Start,
		End:       def.End,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO slots (id, name, start_time, end_time, start_ms, end_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		slot.ID, slot.Name, slot.Start, slot.End,
		slot.Start.MillisOfDay(), slot.End.MillisOfDay(), slot.CreatedAt)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, duplicateName(op, def.Name)
		}
		return nil, dbError(op, err, "failed to insert slot")
	}

	return slot, nil
}

// Get returns the slot with the given ID
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Slot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `SELECT `+slotColumns+` FROM slots WHERE id = ?`, id)
	slot, err := scanSlot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("slots.Get", "id", id)
	}
	if err != nil {
		return nil, dbError("slots.Get", err, "failed to read slot")
	}
	return slot, nil
}

// FindByName returns the slot with the given name
func (s *SQLiteStore) FindByName(ctx context.Context, name string) (*Slot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `SELECT `+slotColumns+` FROM slots WHERE name = ?`, name)
	slot, err := scanSlot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("slots.FindByName", "name", name)
	}
	if err != nil {
		return nil, dbError("slots.FindByName", err, "failed to read slot")
	}
	return slot, nil
}

// List returns all slots ordered by start time and name
func (s *SQLiteStore) List(ctx context.Context) ([]*Slot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.query(ctx, "slots.List",
		`SELECT `+slotColumns+` FROM slots ORDER BY start_ms, name`)
}

// ActiveAt returns the slots containing t
func (s *SQLiteStore) ActiveAt(ctx context.Context, t timex.TimeOfDay) ([]*Slot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ms := t.MillisOfDay()
	return s.query(ctx, "slots.ActiveAt", `
		SELECT `+slotColumns+` FROM slots
		WHERE (start_ms < end_ms AND start_ms <= ? AND ? < end_ms)
		   OR (start_ms > end_ms AND (start_ms <= ? OR ? < end_ms))
		ORDER BY start_ms, name`,
		ms, ms, ms, ms)
}

// Delete removes the slot with the given ID
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM slots WHERE id = ?`, id)
	if err != nil {
		return dbError("slots.Delete", err, "failed to delete slot")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return dbError("slots.Delete", err, "failed to delete slot")
	}
	if affected == 0 {
		return notFound("slots.Delete", "id", id)
	}
	return nil
}

// Ping verifies the connection and that the slot table is readable
func (s *SQLiteStore) Ping(ctx context.Context) error {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM slots`).Scan(&n); err != nil {
		return dbError("slots.Ping", err, "slot table not readable")
	}
	return nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

func (s *SQLiteStore) query(ctx context.Context, op, query string, args ...interface{}) ([]*Slot, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(op, err, "failed to query slots")
	}
	defer rows.Close()

	var slots []*Slot
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, dbError(op, err, "failed to scan slot")
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(op, err, "failed to iterate slots")
	}

	return slots, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*Slot, error) {
	var slot Slot
	if err := row.Scan(&slot.ID, &slot.Name, &slot.Start, &slot.End, &slot.CreatedAt); err != nil {
		return nil, err
	}
	return &slot, nil
}

func dbError(op string, err error, message string) error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeDatabaseError).
		WithOperation(op)
}
