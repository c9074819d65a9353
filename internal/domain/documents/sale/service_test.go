package sale

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/core/cache"
	"backoffice/internal/core/entity"
	"backoffice/internal/core/id"
	"backoffice/internal/domain"
)

type fakeRepo struct {
	doc     *Sale
	calls   map[string]int
	failing error
}

func newFakeRepo(doc *Sale) *fakeRepo {
	return &fakeRepo{doc: doc, calls: make(map[string]int)}
}

func (r *fakeRepo) FindAll(ctx context.Context, filter ListFilter) (domain.ListResult[*Sale], error) {
	r.calls["findAll"]++
	return domain.NewListResult([]*Sale{r.doc}, domain.Pagination{Page: 1, Total: 1}), nil
}

func (r *fakeRepo) FindByID(ctx context.Context, docID id.ID) (*Sale, error) {
	r.calls["findByID"]++
	if docID != r.doc.ID {
		return nil, nil
	}
	return r.doc, nil
}

func (r *fakeRepo) Create(ctx context.Context, in CreateInput) (*Sale, error) {
	r.calls["create"]++
	return r.doc, nil
}

func (r *fakeRepo) Update(ctx context.Context, docID id.ID, in UpdateInput) (*Sale, error) {
	r.calls["update"]++
	return r.doc, nil
}

func (r *fakeRepo) transition(to Status) (*Sale, error) {
	if r.failing != nil {
		return nil, r.failing
	}
	next := *r.doc
	next.Status = to
	r.doc = &next
	return &next, nil
}

func (r *fakeRepo) Confirm(ctx context.Context, docID id.ID) (*Sale, error) {
	r.calls["confirm"]++
	return r.transition(StatusConfirmed)
}

func (r *fakeRepo) Cancel(ctx context.Context, docID id.ID) (*Sale, error) {
	r.calls["cancel"]++
	return r.transition(StatusCancelled)
}

func (r *fakeRepo) AddLine(ctx context.Context, docID id.ID, line LineInput) (*Sale, error) {
	r.calls["addLine"]++
	if r.failing != nil {
		return nil, r.failing
	}
	next := *r.doc
	next.Lines = append(append([]Line(nil), r.doc.Lines...), Line{
		ID:         fmt.Sprintf("l%d", len(r.doc.Lines)+1),
		ProductRef: entity.ProductRef{ProductID: line.ProductID},
		Quantity:   line.Quantity,
	})
	r.doc = &next
	return &next, nil
}

func (r *fakeRepo) RemoveLine(ctx context.Context, docID, lineID id.ID) (*Sale, error) {
	r.calls["removeLine"]++
	if r.failing != nil {
		return nil, r.failing
	}
	next := *r.doc
	next.Lines = nil
	for _, l := range r.doc.Lines {
		if l.ID != lineID {
			next.Lines = append(next.Lines, l)
		}
	}
	r.doc = &next
	return &next, nil
}

func draftSale() *Sale {
	return &Sale{
		Document:     entity.Document{ID: "s1", DocumentNumber: "SL-0001"},
		Status:       StatusDraft,
		WarehouseRef: entity.WarehouseRef{WarehouseID: "W1"},
		Lines:        []Line{{ID: "l1", ProductRef: entity.ProductRef{ProductID: "P1"}, Quantity: 2}},
	}
}

// warmStock caches a stock view for the warehouse of the sale.
func warmStock(t *testing.T, qc *cache.Cache) cache.Key {
	t.Helper()
	key := cache.ListKey(cache.KindStock, url.Values{cache.ParamWarehouse: {"W1"}})
	_, err := cache.Query(context.Background(), qc, key, func(ctx context.Context) (int, error) {
		return 0, nil
	})
	require.NoError(t, err)
	return key
}

func TestService_ConfirmAndCancelLeaveStock(t *testing.T) {
	for name, mutate := range map[string]func(*Service, context.Context) (*Sale, error){
		"confirm": func(s *Service, ctx context.Context) (*Sale, error) { return s.Confirm(ctx, "s1") },
		"cancel":  func(s *Service, ctx context.Context) (*Sale, error) { return s.Cancel(ctx, "s1") },
	} {
		t.Run(name, func(t *testing.T) {
			repo := newFakeRepo(draftSale())
			qc := cache.New()
			c := domain.NewCache(qc)
			svc := NewService(repo, c)
			ctx := context.Background()

			var got []cache.Event
			c.Dispatcher.OnInvalidate(func(ev cache.Event) { got = append(got, ev) })

			_, err := svc.List(ctx, ListFilter{})
			require.NoError(t, err)
			_, err = svc.Get(ctx, "s1")
			require.NoError(t, err)
			stock := warmStock(t, qc)

			_, err = mutate(svc, ctx)
			require.NoError(t, err)

			require.Len(t, got, 1)
			assert.True(t, got[0].Touches(cache.KindSale))
			assert.False(t, got[0].Touches(cache.KindStock))

			assert.False(t, qc.Fresh(cache.ListKey(cache.KindSale, nil)))
			assert.False(t, qc.Fresh(cache.DetailKey(cache.KindSale, "s1")))
			assert.True(t, qc.Fresh(stock), "stock views stay cached")

			doc, err := svc.Get(ctx, "s1")
			require.NoError(t, err)
			assert.NotEqual(t, StatusDraft, doc.Status)
			assert.Equal(t, 2, repo.calls["findByID"])
		})
	}
}

func TestService_FailedConfirmLeavesCache(t *testing.T) {
	repo := newFakeRepo(draftSale())
	qc := cache.New()
	c := domain.NewCache(qc)
	svc := NewService(repo, c)
	ctx := context.Background()

	var events int
	c.Dispatcher.OnInvalidate(func(cache.Event) { events++ })

	_, err := svc.List(ctx, ListFilter{})
	require.NoError(t, err)
	_, err = svc.Get(ctx, "s1")
	require.NoError(t, err)
	stock := warmStock(t, qc)

	boom := errors.New("SALE_NOT_DRAFT")
	repo.failing = boom

	_, err = svc.Confirm(ctx, "s1")
	require.ErrorIs(t, err, boom)

	assert.Zero(t, events)
	assert.True(t, qc.Fresh(cache.ListKey(cache.KindSale, nil)))
	assert.True(t, qc.Fresh(cache.DetailKey(cache.KindSale, "s1")))
	assert.True(t, qc.Fresh(stock))

	doc, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, doc.Status)
	assert.Equal(t, 1, repo.calls["findByID"])
}

func TestService_LineChangesRefreshDetail(t *testing.T) {
	repo := newFakeRepo(draftSale())
	qc := cache.New()
	svc := NewService(repo, domain.NewCache(qc))
	ctx := context.Background()

	_, err := svc.Get(ctx, "s1")
	require.NoError(t, err)

	doc, err := svc.AddLine(ctx, "s1", LineInput{ProductID: "P2", Quantity: 3})
	require.NoError(t, err)
	assert.Len(t, doc.Lines, 2)
	assert.False(t, qc.Fresh(cache.DetailKey(cache.KindSale, "s1")))

	doc, err = svc.RemoveLine(ctx, "s1", "l1")
	require.NoError(t, err)
	require.Len(t, doc.Lines, 1)
	assert.Equal(t, "P2", doc.Lines[0].ProductID)

	fresh, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, fresh.Lines, 1)
}

func TestService_AddLineRejectsInvalidLine(t *testing.T) {
	repo := newFakeRepo(draftSale())
	svc := NewService(repo, domain.NewCache(cache.New()))

	_, err := svc.AddLine(context.Background(), "s1", LineInput{ProductID: "P2"})
	require.Error(t, err)
	assert.Zero(t, repo.calls["addLine"])
}
