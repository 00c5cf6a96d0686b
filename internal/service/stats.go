package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/strength"
)

// EventStore persists generation events.
type EventStore interface {
	Insert(ctx context.Context, event *model.GenerationEvent) error
	CountByLabel(ctx context.Context, since time.Time) (map[strength.Label]int64, error)
}

type clientKey struct{}

// WithClient attaches the caller's address to ctx so recorded events can be
// fingerprinted.
func WithClient(ctx context.Context, addr string) context.Context {
	return context.WithValue(ctx, clientKey{}, addr)
}

func clientFromContext(ctx context.Context) string {
	addr, _ := ctx.Value(clientKey{}).(string)
	return addr
}

// StatsService records generation events and summarizes them.
type StatsService struct {
	store          EventStore
	fingerprintKey []byte
	now            func() time.Time
}

// NewStatsService creates a new StatsService.
func NewStatsService(store EventStore, fingerprintKey string) *StatsService {
	return &StatsService{
		store:          store,
		fingerprintKey: []byte(fingerprintKey),
		now:            time.Now,
	}
}

// Record stores a generation event. Failures are logged and never reach the
// caller, so generation keeps working when the store is down.
func (s *StatsService) Record(ctx context.Context, opts crypto.GeneratorOptions, label strength.Label) {
	fp, err := crypto.Fingerprint(clientFromContext(ctx), s.fingerprintKey)
	if err != nil {
		slog.Warn("fingerprinting client failed", "error", err)
	}

	event := &model.GenerationEvent{
		ID:          uuid.New().String(),
		CreatedAt:   s.now().UTC(),
		Length:      opts.Length,
		Uppercase:   opts.Uppercase,
		Lowercase:   opts.Lowercase,
		Numbers:     opts.Numbers,
		Symbols:     opts.Symbols,
		Strength:    label,
		Fingerprint: fp,
	}

	// The event outlives the request; a client hanging up must not cancel it.
	if err := s.store.Insert(context.WithoutCancel(ctx), event); err != nil {
		slog.Warn("recording generation event failed", "event_id", event.ID, "error", err)
	}
}

// Summary counts generation events per strength label since the given time.
// Every reachable label is present in the result, zero or not.
func (s *StatsService) Summary(ctx context.Context, since time.Time) (model.StatsResponse, error) {
	counts, err := s.store.CountByLabel(ctx, since)
	if err != nil {
		return model.StatsResponse{}, err
	}

	resp := model.StatsResponse{
		Since:      since.UTC(),
		ByStrength: make(map[string]int64, len(strength.Labels)),
	}
	for _, label := range strength.Labels {
		resp.ByStrength[string(label)] = 0
	}
	for label, n := range counts {
		resp.ByStrength[string(label)] += n
		resp.Total += n
	}

	return resp, nil
}
