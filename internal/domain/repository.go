// Package domain provides the shared types of the back-office document modules.
package domain

import (
	"context"
)

// --- Filter & Pagination ---

// PageFilter contains the paging options common to every list query.
// Zero values are left out of the request and the server applies its defaults.
type PageFilter struct {
	Page   int     `url:"page,omitempty" form:"page" json:"page,omitempty"`
	Limit  int     `url:"limit,omitempty" form:"limit" json:"limit,omitempty"`
	Search *string `url:"search,omitempty" form:"search" json:"search,omitempty"`
}

// Pagination describes a page of results as reported by the server.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// ListResult contains paginated results.
type ListResult[T any] struct {
	Items      []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// NewListResult wraps items with pagination, never returning a nil slice.
func NewListResult[T any](items []T, p Pagination) ListResult[T] {
	if items == nil {
		items = []T{}
	}
	return ListResult[T]{Items: items, Pagination: p}
}

// --- Hooks ---

// HookEvent represents lifecycle event type.
type HookEvent string

const (
	AfterCreate     HookEvent = "after_create"
	AfterUpdate     HookEvent = "after_update"
	AfterTransition HookEvent = "after_transition"
)

// Hook is a function that runs after a document mutation succeeded.
type Hook[T any] func(ctx context.Context, doc T) error

// HookRegistry stores lifecycle hooks for a document type.
type HookRegistry[T any] struct {
	hooks map[HookEvent][]Hook[T]
}

// NewHookRegistry creates an empty hook registry.
func NewHookRegistry[T any]() *HookRegistry[T] {
	return &HookRegistry[T]{
		hooks: make(map[HookEvent][]Hook[T]),
	}
}

// On registers a hook for the specified event.
func (r *HookRegistry[T]) On(event HookEvent, hook Hook[T]) {
	r.hooks[event] = append(r.hooks[event], hook)
}

// Run executes all hooks for the specified event, stopping at the first error.
func (r *HookRegistry[T]) Run(ctx context.Context, event HookEvent, doc T) error {
	for _, hook := range r.hooks[event] {
		if err := hook(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}
