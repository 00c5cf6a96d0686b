package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/strength"
)

var schemas = map[string]string{
	DriverMySQL: `
	CREATE TABLE IF NOT EXISTS generation_events (
		id          CHAR(36)     NOT NULL PRIMARY KEY,
		created_at  DATETIME(6)  NOT NULL,
		length      INT          NOT NULL,
		uppercase   BOOLEAN      NOT NULL,
		lowercase   BOOLEAN      NOT NULL,
		numbers     BOOLEAN      NOT NULL,
		symbols     BOOLEAN      NOT NULL,
		strength    VARCHAR(16)  NOT NULL,
		fingerprint CHAR(64)     NOT NULL,
		INDEX idx_generation_events_created_at (created_at)
	)`,
	DriverSQLite: `
	CREATE TABLE IF NOT EXISTS generation_events (
		id          TEXT    NOT NULL PRIMARY KEY,
		created_at  DATETIME NOT NULL,
		length      INTEGER NOT NULL,
		uppercase   BOOLEAN NOT NULL,
		lowercase   BOOLEAN NOT NULL,
		numbers     BOOLEAN NOT NULL,
		symbols     BOOLEAN NOT NULL,
		strength    TEXT    NOT NULL,
		fingerprint TEXT    NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_generation_events_created_at ON generation_events (created_at)`,
}

// EventRepository handles generation event persistence operations.
type EventRepository struct {
	db     *sql.DB
	driver string
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *sql.DB, driver string) *EventRepository {
	return &EventRepository{db: db, driver: driver}
}

// EnsureSchema creates the generation_events table if it does not exist.
func (r *EventRepository) EnsureSchema(ctx context.Context) error {
	ddl, ok := schemas[r.driver]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, r.driver)
	}
	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create generation_events: %w", err)
	}
	return nil
}

// Insert stores a generation event.
func (r *EventRepository) Insert(ctx context.Context, event *model.GenerationEvent) error {
	query := `INSERT INTO generation_events
		(id, created_at, length, uppercase, lowercase, numbers, symbols, strength, fingerprint)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.CreatedAt.UTC(),
		event.Length,
		event.Uppercase,
		event.Lowercase,
		event.Numbers,
		event.Symbols,
		string(event.Strength),
		event.Fingerprint,
	)
	return err
}

// CountByLabel returns the number of events per strength label created after since.
func (r *EventRepository) CountByLabel(ctx context.Context, since time.Time) (map[strength.Label]int64, error) {
	query := `SELECT strength, COUNT(*) FROM generation_events
		WHERE created_at > ? GROUP BY strength`

	rows, err := r.db.QueryContext(ctx, query, since.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[strength.Label]int64)
	for rows.Next() {
		var (
			label string
			n     int64
		)
		if err := rows.Scan(&label, &n); err != nil {
			return nil, err
		}
		counts[strength.Label(label)] = n
	}

	return counts, rows.Err()
}
