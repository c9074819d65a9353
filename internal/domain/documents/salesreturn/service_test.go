package salesreturn

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/core/cache"
	"backoffice/internal/core/entity"
	"backoffice/internal/core/id"
	"backoffice/internal/domain"
)

type stubRepo struct {
	doc     *Return
	reads   int
	failing error
}

func (r *stubRepo) FindAll(ctx context.Context, filter ListFilter) (domain.ListResult[*Return], error) {
	return domain.NewListResult([]*Return{r.doc}, domain.Pagination{Page: 1, Total: 1}), nil
}

func (r *stubRepo) FindByID(ctx context.Context, docID id.ID) (*Return, error) {
	r.reads++
	return r.doc, nil
}

func (r *stubRepo) Create(ctx context.Context, in CreateInput) (*Return, error) {
	return r.doc, nil
}

func (r *stubRepo) Update(ctx context.Context, docID id.ID, in UpdateInput) (*Return, error) {
	return r.doc, nil
}

func (r *stubRepo) transition(to Status) (*Return, error) {
	if r.failing != nil {
		return nil, r.failing
	}
	next := *r.doc
	next.Status = to
	r.doc = &next
	return &next, nil
}

func (r *stubRepo) Confirm(ctx context.Context, docID id.ID) (*Return, error) {
	return r.transition(StatusConfirmed)
}

func (r *stubRepo) Cancel(ctx context.Context, docID id.ID) (*Return, error) {
	return r.transition(StatusCancelled)
}

func (r *stubRepo) AddLine(ctx context.Context, docID id.ID, line LineInput) (*Return, error) {
	if r.failing != nil {
		return nil, r.failing
	}
	next := *r.doc
	next.Lines = append(append([]Line(nil), r.doc.Lines...), Line{
		ID:         "l2",
		ProductRef: entity.ProductRef{ProductID: line.ProductID},
		Quantity:   line.Quantity,
	})
	r.doc = &next
	return &next, nil
}

func (r *stubRepo) RemoveLine(ctx context.Context, docID, lineID id.ID) (*Return, error) {
	if r.failing != nil {
		return nil, r.failing
	}
	next := *r.doc
	next.Lines = nil
	r.doc = &next
	return &next, nil
}

func customerReturn() *Return {
	return &Return{
		Document:     entity.Document{ID: "r1", DocumentNumber: "RT-0001"},
		Type:         TypeCustomer,
		Status:       StatusDraft,
		WarehouseRef: entity.WarehouseRef{WarehouseID: "W1"},
		Lines:        []Line{{ID: "l1", ProductRef: entity.ProductRef{ProductID: "P1"}, Quantity: 1}},
	}
}

type fixture struct {
	repo   *stubRepo
	qc     *cache.Cache
	svc    *Service
	events []cache.Event
	stock  cache.Key
}

// newFixture warms the return list, the return detail and a stock view.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{repo: &stubRepo{doc: customerReturn()}, qc: cache.New()}
	c := domain.NewCache(f.qc)
	f.svc = NewService(f.repo, c)
	c.Dispatcher.OnInvalidate(func(ev cache.Event) { f.events = append(f.events, ev) })

	ctx := context.Background()
	_, err := f.svc.List(ctx, ListFilter{})
	require.NoError(t, err)
	_, err = f.svc.Get(ctx, "r1")
	require.NoError(t, err)

	f.stock = cache.ListKey(cache.KindStock, url.Values{cache.ParamWarehouse: {"W1"}})
	_, err = cache.Query(ctx, f.qc, f.stock, func(ctx context.Context) (int, error) { return 0, nil })
	require.NoError(t, err)
	return f
}

func TestService_ConfirmAndCancelLeaveStock(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Service) (*Return, error)
		mutation cache.Mutation
		want     Status
	}{
		{
			name:     "confirm",
			mutate:   func(s *Service) (*Return, error) { return s.Confirm(context.Background(), "r1") },
			mutation: cache.ReturnConfirmed,
			want:     StatusConfirmed,
		},
		{
			name:     "cancel",
			mutate:   func(s *Service) (*Return, error) { return s.Cancel(context.Background(), "r1") },
			mutation: cache.ReturnCancelled,
			want:     StatusCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			doc, err := tt.mutate(f.svc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, doc.Status)

			require.Len(t, f.events, 1)
			assert.Equal(t, tt.mutation, f.events[0].Mutation)
			assert.True(t, f.events[0].Touches(cache.KindReturn))
			assert.False(t, f.events[0].Touches(cache.KindStock))
			assert.False(t, f.events[0].Touches(cache.KindSale))

			assert.False(t, f.qc.Fresh(cache.ListKey(cache.KindReturn, nil)))
			assert.False(t, f.qc.Fresh(cache.DetailKey(cache.KindReturn, "r1")))
			assert.True(t, f.qc.Fresh(f.stock))
		})
	}
}

func TestService_FailedConfirmLeavesCache(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("RETURN_NOT_DRAFT")
	f.repo.failing = boom

	_, err := f.svc.Confirm(context.Background(), "r1")
	require.ErrorIs(t, err, boom)

	assert.Empty(t, f.events)
	assert.True(t, f.qc.Fresh(cache.ListKey(cache.KindReturn, nil)))
	assert.True(t, f.qc.Fresh(cache.DetailKey(cache.KindReturn, "r1")))
	assert.True(t, f.qc.Fresh(f.stock))

	doc, err := f.svc.Get(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, doc.Status)
	assert.Equal(t, 1, f.repo.reads)
}

func TestService_LineChangesInvalidateDetail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	doc, err := f.svc.AddLine(ctx, "r1", LineInput{ProductID: "P2", Quantity: 1})
	require.NoError(t, err)
	assert.Len(t, doc.Lines, 2)

	_, err = f.svc.RemoveLine(ctx, "r1", "l1")
	require.NoError(t, err)

	require.Len(t, f.events, 2)
	for _, ev := range f.events {
		assert.Equal(t, cache.ReturnLinesChanged, ev.Mutation)
	}
	assert.False(t, f.qc.Fresh(cache.DetailKey(cache.KindReturn, "r1")))
	assert.True(t, f.qc.Fresh(f.stock))
}
