package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/strength"
)

func newTestEventRepository(t *testing.T) *EventRepository {
	t.Helper()

	db, err := NewDB(DriverSQLite, filepath.Join(t.TempDir(), "events.db"))
	if err != nil {
		t.Fatalf("NewDB() unexpected error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := NewEventRepository(db, DriverSQLite)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema() unexpected error: %v", err)
	}
	return repo
}

func TestNewDBUnsupportedDriver(t *testing.T) {
	_, err := NewDB("postgres", "whatever")
	if !errors.Is(err, ErrUnsupportedDriver) {
		t.Fatalf("NewDB() error = %v, want %v", err, ErrUnsupportedDriver)
	}
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	repo := newTestEventRepository(t)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("second EnsureSchema() unexpected error: %v", err)
	}
}

func TestEnsureSchemaUnsupportedDriver(t *testing.T) {
	repo := NewEventRepository(nil, "oracle")
	if err := repo.EnsureSchema(context.Background()); !errors.Is(err, ErrUnsupportedDriver) {
		t.Fatalf("EnsureSchema() error = %v, want %v", err, ErrUnsupportedDriver)
	}
}

func TestInsertAndCountByLabel(t *testing.T) {
	repo := newTestEventRepository(t)
	ctx := context.Background()
	now := time.Now().UTC()

	events := []model.GenerationEvent{
		{ID: "e1", CreatedAt: now, Length: 20, Lowercase: true, Uppercase: true, Numbers: true, Symbols: true, Strength: strength.Strong},
		{ID: "e2", CreatedAt: now, Length: 16, Lowercase: true, Uppercase: true, Numbers: true, Strength: strength.Strong},
		{ID: "e3", CreatedAt: now, Length: 6, Lowercase: true, Strength: strength.TooWeak},
		{ID: "e4", CreatedAt: now.Add(-48 * time.Hour), Length: 6, Numbers: true, Strength: strength.TooWeak},
	}
	for i := range events {
		if err := repo.Insert(ctx, &events[i]); err != nil {
			t.Fatalf("Insert(%s) unexpected error: %v", events[i].ID, err)
		}
	}

	counts, err := repo.CountByLabel(ctx, now.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("CountByLabel() unexpected error: %v", err)
	}
	if counts[strength.Strong] != 2 {
		t.Errorf("STRONG count = %d, want 2", counts[strength.Strong])
	}
	if counts[strength.TooWeak] != 1 {
		t.Errorf("TOO WEAK! count = %d, want 1", counts[strength.TooWeak])
	}
	if _, ok := counts[strength.Medium]; ok {
		t.Error("MEDIUM should not be present")
	}

	all, err := repo.CountByLabel(ctx, time.Time{})
	if err != nil {
		t.Fatalf("CountByLabel() unexpected error: %v", err)
	}
	if all[strength.TooWeak] != 2 {
		t.Errorf("TOO WEAK! count since zero = %d, want 2", all[strength.TooWeak])
	}
}

func TestInsertDuplicateID(t *testing.T) {
	repo := newTestEventRepository(t)
	ctx := context.Background()

	event := model.GenerationEvent{ID: "dup", CreatedAt: time.Now(), Length: 8, Lowercase: true, Strength: strength.TooWeak}
	if err := repo.Insert(ctx, &event); err != nil {
		t.Fatalf("Insert() unexpected error: %v", err)
	}
	if err := repo.Insert(ctx, &event); err == nil {
		t.Fatal("Insert() expected error for duplicate id")
	}
}
