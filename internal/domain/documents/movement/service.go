package movement

import (
	"context"

	"backoffice/internal/core/cache"
	"backoffice/internal/core/id"
	"backoffice/internal/domain"
	"backoffice/pkg/logger"
)

// Service exposes cached movement reads and lifecycle mutations.
// Guards are not enforced here; the inventory API rejects illegal transitions.
type Service struct {
	repo  Repository
	cache domain.Cache
	hooks *domain.HookRegistry[*Movement]
}

// NewService creates a new movement service.
func NewService(repo Repository, c domain.Cache) *Service {
	return &Service{
		repo:  repo,
		cache: c,
		hooks: domain.NewHookRegistry[*Movement](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Movement] {
	return s.hooks
}

// List returns a page of movements.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Movement], error) {
	return domain.CachedList(ctx, s.cache, cache.KindMovement, filter,
		func(ctx context.Context) (domain.ListResult[*Movement], error) {
			return s.repo.FindAll(ctx, filter)
		})
}

// Get returns the movement or nil when it does not exist.
func (s *Service) Get(ctx context.Context, docID id.ID) (*Movement, error) {
	return domain.CachedGet(ctx, s.cache, cache.KindMovement, docID,
		func(ctx context.Context) (*Movement, error) {
			return s.repo.FindByID(ctx, docID)
		})
}

// Create creates a draft movement. Drafts have no stock effect.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Movement, error) {
	if err := in.Validate(ctx); err != nil {
		return nil, err
	}

	doc, err := s.repo.Create(ctx, in)
	doc, err = domain.Commit(ctx, s.cache, s.hooks, domain.AfterCreate,
		cache.MovementCreated, target(doc), doc, err)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "movement created",
		"id", doc.ID,
		"number", doc.DocumentNumber)

	return doc, nil
}

// Update changes the editable metadata of a movement.
func (s *Service) Update(ctx context.Context, docID id.ID, in UpdateInput) (*Movement, error) {
	if err := in.Validate(ctx); err != nil {
		return nil, err
	}

	doc, err := s.repo.Update(ctx, docID, in)
	return domain.Commit(ctx, s.cache, s.hooks, domain.AfterUpdate,
		cache.MovementUpdated, cache.TargetOf(cache.KindMovement, docID), doc, err)
}

// Post posts a draft movement to stock.
func (s *Service) Post(ctx context.Context, docID id.ID) (*Movement, error) {
	doc, err := s.repo.Post(ctx, docID)
	doc, err = domain.Commit(ctx, s.cache, s.hooks, domain.AfterTransition,
		cache.MovementPosted, stockTarget(docID, doc), doc, err)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "movement posted", "id", doc.ID, "number", doc.DocumentNumber)
	return doc, nil
}

// Void reverses a posted movement.
func (s *Service) Void(ctx context.Context, docID id.ID) (*Movement, error) {
	doc, err := s.repo.Void(ctx, docID)
	doc, err = domain.Commit(ctx, s.cache, s.hooks, domain.AfterTransition,
		cache.MovementVoided, stockTarget(docID, doc), doc, err)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "movement voided", "id", doc.ID, "number", doc.DocumentNumber)
	return doc, nil
}

func target(doc *Movement) cache.Target {
	if doc == nil {
		return cache.Target{}
	}
	return cache.TargetOf(cache.KindMovement, doc.ID)
}

// stockTarget scopes stock invalidation to the pairs the movement touched.
// Without a returned document every stock list is invalidated.
func stockTarget(docID id.ID, doc *Movement) cache.Target {
	t := cache.TargetOf(cache.KindMovement, docID)
	if doc != nil {
		t = t.WithStock(doc.StockRefs()...)
	}
	return t
}
