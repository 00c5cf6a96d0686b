package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/service"
	"github.com/vaultpass/passgen/internal/strength"
)

const testSecret = "test-secret"

type memoryStore struct {
	events []model.GenerationEvent
}

func (m *memoryStore) Insert(_ context.Context, event *model.GenerationEvent) error {
	m.events = append(m.events, *event)
	return nil
}

func (m *memoryStore) CountByLabel(_ context.Context, since time.Time) (map[strength.Label]int64, error) {
	counts := make(map[strength.Label]int64)
	for _, e := range m.events {
		if e.CreatedAt.After(since) {
			counts[e.Strength]++
		}
	}
	return counts, nil
}

func newTestRouter(t *testing.T, store *memoryStore) http.Handler {
	t.Helper()

	var (
		recorder service.Recorder
		stats    *StatsHandler
	)
	if store != nil {
		svc := service.NewStatsService(store, "fp-key")
		recorder = svc
		stats = NewStatsHandler(svc)
	}

	return NewRouter(RouterConfig{
		Generator:      NewGeneratorHandler(service.NewGeneratorService(crypto.NewSeededSource(11), recorder)),
		Strength:       NewStrengthHandler(service.NewStrengthService()),
		Stats:          stats,
		JWTSecret:      testSecret,
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	})
}

func do(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(t, nil), http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestHandleGenerate(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantLength int
		wantError  string
	}{
		{name: "empty body uses defaults", body: "", wantStatus: http.StatusOK, wantLength: crypto.DefaultLength},
		{name: "empty object uses defaults", body: `{}`, wantStatus: http.StatusOK, wantLength: crypto.DefaultLength},
		{name: "custom length", body: `{"length":16,"symbols":false}`, wantStatus: http.StatusOK, wantLength: 16},
		{
			name:       "no character types",
			body:       `{"length":12,"uppercase":false,"lowercase":false,"numbers":false,"symbols":false}`,
			wantStatus: http.StatusBadRequest,
			wantError:  crypto.ErrInvalidOptions.Error(),
		},
		{name: "length too short", body: `{"length":5}`, wantStatus: http.StatusBadRequest, wantError: service.ErrLengthOutOfRange.Error()},
		{name: "length too long", body: `{"length":21}`, wantStatus: http.StatusBadRequest, wantError: service.ErrLengthOutOfRange.Error()},
		{name: "malformed body", body: `{"length":`, wantStatus: http.StatusBadRequest, wantError: "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, "/api/v1/generate", tt.body, nil)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.wantError != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantError, body["error"])
				return
			}

			var resp model.GenerateResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Len(t, resp.Password, tt.wantLength)
			assert.Equal(t, tt.wantLength, resp.Length)
			assert.Equal(t, strength.Classify(resp.Password), resp.Strength)
			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		})
	}
}

func TestHandleGenerateBodyTooLarge(t *testing.T) {
	body := `{"length":10,"pad":"` + strings.Repeat("x", 2<<20) + `"}`
	rec := do(t, newTestRouter(t, nil), http.MethodPost, "/api/v1/generate", body, nil)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHandleStrength(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		password string
		want     strength.Label
		score    int
	}{
		{password: "a", want: strength.TooWeak, score: 1},
		{password: "Ab3$", want: strength.Medium, score: 4},
		{password: "abcdefghi", want: strength.TooWeak, score: 2},
		{password: "Abcdefghijklmno1!", want: strength.Strong, score: 6},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			payload, err := json.Marshal(model.StrengthRequest{Password: tt.password})
			require.NoError(t, err)

			rec := do(t, router, http.MethodPost, "/api/v1/strength", string(payload), nil)
			require.Equal(t, http.StatusOK, rec.Code)

			var resp model.StrengthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp.Strength)
			assert.Equal(t, tt.score, resp.Score)
		})
	}
}

func TestHandleStrengthMissingPassword(t *testing.T) {
	rec := do(t, newTestRouter(t, nil), http.MethodPost, "/api/v1/strength", `{}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), service.ErrPasswordRequired.Error())
}

func TestStatsNotMountedWithoutStore(t *testing.T) {
	rec := do(t, newTestRouter(t, nil), http.MethodGet, "/api/v1/stats", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleStats(t *testing.T) {
	store := &memoryStore{}
	router := newTestRouter(t, store)

	for i := 0; i < 3; i++ {
		rec := do(t, router, http.MethodPost, "/api/v1/generate", `{"length":20}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	require.Len(t, store.events, 3)

	rec := do(t, router, http.MethodGet, "/api/v1/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := crypto.GenerateToken("ops", testSecret, time.Hour)
	require.NoError(t, err)
	auth := map[string]string{"Authorization": "Bearer " + token}

	rec = do(t, router, http.MethodGet, "/api/v1/stats", "", auth)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp model.StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Total)
	assert.Equal(t, int64(3), resp.ByStrength[string(strength.Strong)])

	rec = do(t, router, http.MethodGet, "/api/v1/stats?since=yesterday", "", auth)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	future := time.Now().Add(time.Hour).Format(time.RFC3339)
	rec = do(t, router, http.MethodGet, "/api/v1/stats?since="+future, "", auth)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(0), resp.Total)
}
