package salesreturn

import (
	"context"

	"backoffice/internal/core/cache"
	"backoffice/internal/core/id"
	"backoffice/internal/domain"
	"backoffice/pkg/logger"
)

// Service exposes cached return reads and mutations.
// No return mutation invalidates stock views.
type Service struct {
	repo  Repository
	cache domain.Cache
	hooks *domain.HookRegistry[*Return]
}

// NewService creates a new return service.
func NewService(repo Repository, c domain.Cache) *Service {
	return &Service{
		repo:  repo,
		cache: c,
		hooks: domain.NewHookRegistry[*Return](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Return] {
	return s.hooks
}

// List returns a page of returns.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Return], error) {
	return domain.CachedList(ctx, s.cache, cache.KindReturn, filter,
		func(ctx context.Context) (domain.ListResult[*Return], error) {
			return s.repo.FindAll(ctx, filter)
		})
}

// Get returns the return or nil when it does not exist.
func (s *Service) Get(ctx context.Context, docID id.ID) (*Return, error) {
	return domain.CachedGet(ctx, s.cache, cache.KindReturn, docID,
		func(ctx context.Context) (*Return, error) {
			return s.repo.FindByID(ctx, docID)
		})
}

// Create creates a draft return.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Return, error) {
	if err := in.Validate(ctx); err != nil {
		return nil, err
	}

	doc, err := s.repo.Create(ctx, in)
	doc, err = domain.Commit(ctx, s.cache, s.hooks, domain.AfterCreate,
		cache.ReturnCreated, cache.Target{}, doc, err)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "return created",
		"id", doc.ID,
		"number", doc.DocumentNumber)

	return doc, nil
}

// Update changes the editable metadata of a return.
func (s *Service) Update(ctx context.Context, docID id.ID, in UpdateInput) (*Return, error) {
	if err := in.Validate(ctx); err != nil {
		return nil, err
	}

	doc, err := s.repo.Update(ctx, docID, in)
	return domain.Commit(ctx, s.cache, s.hooks, domain.AfterUpdate,
		cache.ReturnUpdated, cache.TargetOf(cache.KindReturn, docID), doc, err)
}

// Confirm confirms a draft return.
func (s *Service) Confirm(ctx context.Context, docID id.ID) (*Return, error) {
	doc, err := s.repo.Confirm(ctx, docID)
	doc, err = domain.Commit(ctx, s.cache, s.hooks, domain.AfterTransition,
		cache.ReturnConfirmed, cache.TargetOf(cache.KindReturn, docID), doc, err)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "return confirmed", "id", doc.ID, "number", doc.DocumentNumber)
	return doc, nil
}

// Cancel cancels a draft or confirmed return.
func (s *Service) Cancel(ctx context.Context, docID id.ID) (*Return, error) {
	doc, err := s.repo.Cancel(ctx, docID)
	doc, err = domain.Commit(ctx, s.cache, s.hooks, domain.AfterTransition,
		cache.ReturnCancelled, cache.TargetOf(cache.KindReturn, docID), doc, err)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "return cancelled", "id", doc.ID, "number", doc.DocumentNumber)
	return doc, nil
}

// AddLine appends a line and returns the updated return.
func (s *Service) AddLine(ctx context.Context, docID id.ID, line LineInput) (*Return, error) {
	if err := line.Validate(ctx); err != nil {
		return nil, err
	}

	doc, err := s.repo.AddLine(ctx, docID, line)
	return domain.Commit(ctx, s.cache, s.hooks, domain.AfterUpdate,
		cache.ReturnLinesChanged, cache.TargetOf(cache.KindReturn, docID), doc, err)
}

// RemoveLine deletes a line and returns the updated return.
func (s *Service) RemoveLine(ctx context.Context, docID, lineID id.ID) (*Return, error) {
	doc, err := s.repo.RemoveLine(ctx, docID, lineID)
	return domain.Commit(ctx, s.cache, s.hooks, domain.AfterUpdate,
		cache.ReturnLinesChanged, cache.TargetOf(cache.KindReturn, docID), doc, err)
}
