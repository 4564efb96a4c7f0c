package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/zuperior/content-api/internal/core/ports"
)

type memoryStore struct {
	items   map[string]ports.StoredResponse
	ttls    map[string]time.Duration
	getErr  error
	saveErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{items: map[string]ports.StoredResponse{}, ttls: map[string]time.Duration{}}
}

func (m *memoryStore) Get(_ context.Context, key string) (*ports.StoredResponse, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	r, ok := m.items[key]
	if !ok {
		return nil, false, nil
	}
	return &r, true, nil
}

func (m *memoryStore) Save(_ context.Context, key string, resp ports.StoredResponse, ttl time.Duration) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = resp
	m.ttls[key] = ttl
	return nil
}

// countingHandler returns code with a body carrying the call count.
func countingHandler(calls *int, code int) echo.HandlerFunc {
	return func(c echo.Context) error {
		*calls++
		return c.JSON(code, map[string]int{"call": *calls})
	}
}

func serve(h echo.HandlerFunc, key string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/category", nil)
	if key != "" {
		req.Header.Set(HeaderIdempotencyKey, key)
	}
	rec := httptest.NewRecorder()
	_ = h(e.NewContext(req, rec))
	return rec
}

func TestIdempotency_ReplaysFirstSuccess(t *testing.T) {
	store := newMemoryStore()
	calls := 0
	h := Idempotency(store, time.Hour, zerolog.Nop())(countingHandler(&calls, http.StatusCreated))

	first := serve(h, "abc")
	second := serve(h, "abc")

	if calls != 1 {
		t.Fatalf("handler must run once, ran %d times", calls)
	}
	if second.Code != http.StatusCreated || second.Body.String() != first.Body.String() {
		t.Fatalf("replay mismatch: %d %q vs %q", second.Code, second.Body.String(), first.Body.String())
	}
	if second.Header().Get(HeaderReplayed) != "true" {
		t.Fatalf("replayed response must be flagged")
	}
	if store.ttls["idempotency:POST:/api/v1/category:abc"] != time.Hour {
		t.Fatalf("unexpected stored keys %v", store.ttls)
	}
}

func TestIdempotency_DistinctKeysAndNoKey(t *testing.T) {
	store := newMemoryStore()
	calls := 0
	h := Idempotency(store, time.Hour, zerolog.Nop())(countingHandler(&calls, http.StatusCreated))

	serve(h, "a")
	serve(h, "b")
	serve(h, "")
	serve(h, "")

	if calls != 4 {
		t.Fatalf("expected 4 calls, got %d", calls)
	}
	if len(store.items) != 2 {
		t.Fatalf("only keyed requests are stored, got %d", len(store.items))
	}
}

func TestIdempotency_FailuresAreNotStored(t *testing.T) {
	store := newMemoryStore()
	calls := 0
	h := Idempotency(store, time.Hour, zerolog.Nop())(countingHandler(&calls, http.StatusBadGateway))

	serve(h, "k")
	serve(h, "k")

	if calls != 2 || len(store.items) != 0 {
		t.Fatalf("non-2xx responses must not be replayed: calls=%d stored=%d", calls, len(store.items))
	}
}

func TestIdempotency_StoreErrorsPassThrough(t *testing.T) {
	store := newMemoryStore()
	store.getErr = errors.New("redis down")
	store.saveErr = errors.New("redis down")
	calls := 0
	h := Idempotency(store, time.Hour, zerolog.Nop())(countingHandler(&calls, http.StatusCreated))

	rec := serve(h, "k")

	if calls != 1 || rec.Code != http.StatusCreated {
		t.Fatalf("request must proceed on store failure: calls=%d code=%d", calls, rec.Code)
	}
}

func TestIdempotency_NilStoreDisabled(t *testing.T) {
	calls := 0
	h := Idempotency(nil, time.Hour, zerolog.Nop())(countingHandler(&calls, http.StatusCreated))

	serve(h, "k")
	serve(h, "k")

	if calls != 2 {
		t.Fatalf("expected pass-through, got %d calls", calls)
	}
}
