package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/core/cache"
	"backoffice/internal/domain"
	"backoffice/internal/domain/documents/transfer"
	"backoffice/internal/domain/stock"
)

// transferBackend is an in-memory inventory API serving one transfer and the stock list.
type transferBackend struct {
	mu         sync.Mutex
	status     string
	stockCalls map[string]int
}

func (b *transferBackend) document() map[string]any {
	return map[string]any{
		"id":             "t1",
		"transferNumber": "TR-0001",
		"status":         b.status,
		"fromWarehouse":  map[string]any{"id": "w1", "name": "Main"},
		"toWarehouse":    map[string]any{"id": "w2", "name": "Outlet"},
		"lines":          []any{map[string]any{"productId": "p1", "quantity": 5}},
	}
}

func (b *transferBackend) routes() http.Handler {
	writeJSON := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /transfers", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.status = "PENDING"
		writeJSON(w, map[string]any{"_tag": "Success", "_value": b.document()})
	})
	mux.HandleFunc("GET /transfers/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if r.PathValue("id") != "t1" || b.status == "" {
			w.WriteHeader(http.StatusNotFound)
			writeJSON(w, map[string]any{"error": map[string]any{"code": "TRANSFER_NOT_FOUND", "message": "Transfer not found"}})
			return
		}
		writeJSON(w, b.document())
	})
	mux.HandleFunc("PATCH /transfers/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Status string `json:"status"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		b.mu.Lock()
		defer b.mu.Unlock()
		if !transfer.CanTransition(transfer.Status(b.status), transfer.Status(body.Status)) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			writeJSON(w, map[string]any{"code": "INVALID_STATUS_TRANSITION", "message": "Transition not allowed"})
			return
		}
		b.status = body.Status
		writeJSON(w, b.document())
	})
	mux.HandleFunc("GET /stock", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.stockCalls[r.URL.Query().Get("warehouseId")]++
		b.mu.Unlock()
		writeJSON(w, []any{map[string]any{"productId": "p1", "warehouseId": r.URL.Query().Get("warehouseId"), "quantity": 10}})
	})
	return mux
}

func TestTransferLifecycle(t *testing.T) {
	backend := &transferBackend{stockCalls: make(map[string]int)}
	srv := httptest.NewServer(backend.routes())
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	c := domain.NewCache(cache.New())
	var stockEvents []cache.Mutation
	c.Dispatcher.OnInvalidate(func(ev cache.Event) {
		if ev.Touches(cache.KindStock) {
			stockEvents = append(stockEvents, ev.Mutation)
		}
	})

	transfers := transfer.NewService(NewTransferRepository(client), c)
	levels := stock.NewService(NewStockRepository(client), c)
	ctx := context.Background()

	absent, err := transfers.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Nil(t, absent)

	// w3 takes no part in the transfer
	readStock := func() {
		for _, warehouse := range []string{"w1", "w2", "w3"} {
			_, err := levels.List(ctx, stock.ListFilter{WarehouseID: &warehouse})
			require.NoError(t, err)
		}
	}
	readStock()

	created, err := transfers.Create(ctx, transfer.CreateInput{
		FromWarehouseID: "w1",
		ToWarehouseID:   "w2",
		Lines:           []transfer.LineInput{{ProductID: "p1", Quantity: 5}},
	})
	require.NoError(t, err)
	assert.Equal(t, transfer.StatusPending, created.Status)
	assert.Equal(t, "Outlet", created.ToWarehouseName)
	assert.Equal(t, transfer.Capabilities{CanStartTransit: true, CanCancel: true}, created.Capabilities())

	// the cached absence is gone after create
	got, err := transfers.Get(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	readStock()

	shipped, err := transfers.StartTransit(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, transfer.Capabilities{CanComplete: true, CanCancel: true}, shipped.Capabilities())
	readStock()

	completed, err := transfers.Complete(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, transfer.Capabilities{}, completed.Capabilities())
	readStock()

	_, err = transfers.Cancel(ctx, "t1")
	require.Error(t, err)

	assert.Equal(t, []cache.Mutation{cache.TransferCreated, cache.TransferCompleted}, stockEvents)
	// both ends: initial read, refetch after create, cached during transit, refetch after completion
	assert.Equal(t, map[string]int{"w1": 3, "w2": 3, "w3": 1}, backend.stockCalls)
}
