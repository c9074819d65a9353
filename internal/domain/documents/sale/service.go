package sale

import (
	"context"

	"backoffice/internal/core/cache"
	"backoffice/internal/core/id"
	"backoffice/internal/domain"
	"backoffice/pkg/logger"
)

// Service exposes cached sale reads and mutations.
// No sale mutation invalidates stock views.
type Service struct {
	repo  Repository
	cache domain.Cache
	hooks *domain.HookRegistry[*Sale]
}

// NewService creates a new sale service.
func NewService(repo Repository, c domain.Cache) *Service {
	return &Service{
		repo:  repo,
		cache: c,
		hooks: domain.NewHookRegistry[*Sale](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Sale] {
	return s.hooks
}

// List returns a page of sales.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Sale], error) {
	return domain.CachedList(ctx, s.cache, cache.KindSale, filter,
		func(ctx context.Context) (domain.ListResult[*Sale], error) {
			return s.repo.FindAll(ctx, filter)
		})
}

// Get returns the sale or nil when it does not exist.
func (s *Service) Get(ctx context.Context, docID id.ID) (*Sale, error) {
	return domain.CachedGet(ctx, s.cache, cache.KindSale, docID,
		func(ctx context.Context) (*Sale, error) {
			return s.repo.FindByID(ctx, docID)
		})
}

// Create creates a draft sale.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Sale, error) {
	if err := in.Validate(ctx); err != nil {
		return nil, err
	}

	doc, err := s.repo.Create(ctx, in)
	doc, err = domain.Commit(ctx, s.cache, s.hooks, domain.AfterCreate,
		cache.SaleCreated, cache.Target{}, doc, err)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "sale created",
		"id", doc.ID,
		"number", doc.DocumentNumber)

	return doc, nil
}

// Update changes the editable metadata of a sale.
func (s *Service) Update(ctx context.Context, docID id.ID, in UpdateInput) (*Sale, error) {
	if err := in.Validate(ctx); err != nil {
		return nil, err
	}

	doc, err := s.repo.Update(ctx, docID, in)
	return domain.Commit(ctx, s.cache, s.hooks, domain.AfterUpdate,
		cache.SaleUpdated, cache.TargetOf(cache.KindSale, docID), doc, err)
}

// Confirm confirms a draft sale.
func (s *Service) Confirm(ctx context.Context, docID id.ID) (*Sale, error) {
	doc, err := s.repo.Confirm(ctx, docID)
	doc, err = domain.Commit(ctx, s.cache, s.hooks, domain.AfterTransition,
		cache.SaleConfirmed, cache.TargetOf(cache.KindSale, docID), doc, err)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "sale confirmed", "id", doc.ID, "number", doc.DocumentNumber)
	return doc, nil
}

// Cancel cancels a draft or confirmed sale.
func (s *Service) Cancel(ctx context.Context, docID id.ID) (*Sale, error) {
	doc, err := s.repo.Cancel(ctx, docID)
	doc, err = domain.Commit(ctx, s.cache, s.hooks, domain.AfterTransition,
		cache.SaleCancelled, cache.TargetOf(cache.KindSale, docID), doc, err)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "sale cancelled", "id", doc.ID, "number", doc.DocumentNumber)
	return doc, nil
}

// AddLine appends a line and returns the updated sale.
func (s *Service) AddLine(ctx context.Context, docID id.ID, line LineInput) (*Sale, error) {
	if err := line.Validate(ctx); err != nil {
		return nil, err
	}

	doc, err := s.repo.AddLine(ctx, docID, line)
	return domain.Commit(ctx, s.cache, s.hooks, domain.AfterUpdate,
		cache.SaleLinesChanged, cache.TargetOf(cache.KindSale, docID), doc, err)
}

// RemoveLine deletes a line and returns the updated sale.
func (s *Service) RemoveLine(ctx context.Context, docID, lineID id.ID) (*Sale, error) {
	doc, err := s.repo.RemoveLine(ctx, docID, lineID)
	return domain.Commit(ctx, s.cache, s.hooks, domain.AfterUpdate,
		cache.SaleLinesChanged, cache.TargetOf(cache.KindSale, docID), doc, err)
}
