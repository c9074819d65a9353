package domain

import (
	"context"

	"backoffice/internal/core/cache"
	"backoffice/internal/core/id"
	"backoffice/pkg/logger"
	"backoffice/pkg/urlquery"
)

// Cache bundles the query cache with its invalidation dispatcher.
// Every document service reads through it and reports successful mutations to it.
type Cache struct {
	Queries    *cache.Cache
	Dispatcher *cache.Dispatcher
}

// NewCache creates a Cache with a dispatcher over qc.
func NewCache(qc *cache.Cache) Cache {
	return Cache{Queries: qc, Dispatcher: cache.NewDispatcher(qc)}
}

// CachedList serves a list query for kind through the cache.
// The filter's query encoding and the caller's scope are part of the key.
func CachedList[T any](
	ctx context.Context,
	c Cache,
	kind cache.Kind,
	filter any,
	fetch func(ctx context.Context) (ListResult[T], error),
) (ListResult[T], error) {
	return cache.Query(ctx, c.Queries, cache.ListKey(kind, urlquery.Encode(filter)).In(cache.ScopeOf(ctx)), fetch)
}

// CachedGet serves a detail query for kind through the cache.
// An absent entity (nil, nil) is cached like any other result, per caller scope.
func CachedGet[T any](
	ctx context.Context,
	c Cache,
	kind cache.Kind,
	docID id.ID,
	fetch func(ctx context.Context) (T, error),
) (T, error) {
	return cache.Query(ctx, c.Queries, cache.DetailKey(kind, docID).In(cache.ScopeOf(ctx)), fetch)
}

// Commit finishes a mutation: on success it dispatches the invalidation for m
// and runs the after-hooks for event. Failed mutations leave the cache untouched.
// Hook failures are logged; the mutation already happened on the server.
func Commit[T any](
	ctx context.Context,
	c Cache,
	hooks *HookRegistry[T],
	event HookEvent,
	m cache.Mutation,
	target cache.Target,
	doc T,
	err error,
) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}

	c.Dispatcher.Dispatch(ctx, m, target)

	if hooks != nil {
		if hookErr := hooks.Run(ctx, event, doc); hookErr != nil {
			logger.Warn(ctx, "after-hook failed", "mutation", m, "error", hookErr)
		}
	}
	return doc, nil
}
