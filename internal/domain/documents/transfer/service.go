package transfer

import (
	"context"

	"backoffice/internal/core/apperror"
	"backoffice/internal/core/cache"
	"backoffice/internal/core/id"
	"backoffice/internal/domain"
	"backoffice/pkg/logger"
)

// Service exposes cached transfer reads and lifecycle mutations.
type Service struct {
	repo  Repository
	cache domain.Cache
	hooks *domain.HookRegistry[*Transfer]
}

// NewService creates a new transfer service.
func NewService(repo Repository, c domain.Cache) *Service {
	return &Service{
		repo:  repo,
		cache: c,
		hooks: domain.NewHookRegistry[*Transfer](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Transfer] {
	return s.hooks
}

// List returns a page of transfers.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Transfer], error) {
	return domain.CachedList(ctx, s.cache, cache.KindTransfer, filter,
		func(ctx context.Context) (domain.ListResult[*Transfer], error) {
			return s.repo.FindAll(ctx, filter)
		})
}

// Get returns the transfer or nil when it does not exist.
func (s *Service) Get(ctx context.Context, docID id.ID) (*Transfer, error) {
	return domain.CachedGet(ctx, s.cache, cache.KindTransfer, docID,
		func(ctx context.Context) (*Transfer, error) {
			return s.repo.FindByID(ctx, docID)
		})
}

// Create creates a pending transfer. Creation reserves stock on the server,
// so stock views of both warehouses are invalidated.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Transfer, error) {
	if err := in.Validate(ctx); err != nil {
		return nil, err
	}

	doc, err := s.repo.Create(ctx, in)
	doc, err = domain.Commit(ctx, s.cache, s.hooks, domain.AfterCreate,
		cache.TransferCreated, stockTarget(doc), doc, err)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "transfer created",
		"id", doc.ID,
		"number", doc.DocumentNumber,
		"from", doc.FromWarehouseID,
		"to", doc.ToWarehouseID)

	return doc, nil
}

// UpdateStatus moves the transfer to status. Completion is stock-affecting;
// the other transitions only refresh transfer views.
func (s *Service) UpdateStatus(ctx context.Context, docID id.ID, status Status) (*Transfer, error) {
	if !status.IsValid() || status == StatusPending {
		return nil, apperror.NewValidation("status is not a valid transfer target").
			WithDetail("status", status)
	}

	doc, err := s.repo.UpdateStatus(ctx, docID, status)

	mutation := cache.TransferStatusChanged
	target := cache.TargetOf(cache.KindTransfer, docID)
	if status == StatusCompleted {
		mutation = cache.TransferCompleted
		if doc != nil {
			target = target.WithStock(doc.StockRefs()...)
		}
	}

	doc, err = domain.Commit(ctx, s.cache, s.hooks, domain.AfterTransition, mutation, target, doc, err)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "transfer status changed",
		"id", doc.ID,
		"number", doc.DocumentNumber,
		"status", doc.Status)

	return doc, nil
}

// StartTransit ships a pending transfer.
func (s *Service) StartTransit(ctx context.Context, docID id.ID) (*Transfer, error) {
	return s.UpdateStatus(ctx, docID, StatusInTransit)
}

// Complete receives a transfer at its destination.
func (s *Service) Complete(ctx context.Context, docID id.ID) (*Transfer, error) {
	return s.UpdateStatus(ctx, docID, StatusCompleted)
}

// Cancel cancels a pending or in-transit transfer.
func (s *Service) Cancel(ctx context.Context, docID id.ID) (*Transfer, error) {
	return s.UpdateStatus(ctx, docID, StatusCancelled)
}

func stockTarget(doc *Transfer) cache.Target {
	if doc == nil {
		return cache.Target{}
	}
	return cache.TargetOf(cache.KindTransfer, doc.ID).WithStock(doc.StockRefs()...)
}
