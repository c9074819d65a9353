package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"backoffice/internal/core/apperror"
	appctx "backoffice/internal/core/context"
	"backoffice/internal/core/id"
	"backoffice/internal/domain"
	"backoffice/pkg/urlquery"
)

// listEnvelope is the paginated collection shape of the inventory API.
type listEnvelope[W any] struct {
	Data       []W             `json:"data"`
	Pagination *paginationWire `json:"pagination"`
}

type paginationWire struct {
	Page       *int   `json:"page"`
	Limit      *int   `json:"limit"`
	Total      *int64 `json:"total"`
	TotalPages *int   `json:"totalPages"`
}

func (p *paginationWire) toDomain(count int) domain.Pagination {
	if p == nil {
		out := domain.Pagination{Page: 1, Limit: count, Total: int64(count)}
		if count > 0 {
			out.TotalPages = 1
		}
		return out
	}

	out := domain.Pagination{Page: 1, Limit: count, Total: int64(count)}
	if p.Page != nil {
		out.Page = *p.Page
	}
	if p.Limit != nil {
		out.Limit = *p.Limit
	}
	if p.Total != nil {
		out.Total = *p.Total
	}
	switch {
	case p.TotalPages != nil:
		out.TotalPages = *p.TotalPages
	case out.Limit > 0:
		out.TotalPages = int((out.Total + int64(out.Limit) - 1) / int64(out.Limit))
	}
	return out
}

func decode(raw json.RawMessage, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return apperror.NewUpstreamMalformed(err)
	}
	return nil
}

// getList fetches a collection and maps every element.
// A bare JSON array is accepted as a single unpaginated page.
func getList[W any, T any](
	ctx context.Context,
	c *Client,
	path string,
	filter any,
	mapFn func(*W) T,
) (domain.ListResult[T], error) {
	raw, err := c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: urlquery.Encode(filter)})
	if err != nil {
		return domain.ListResult[T]{}, err
	}

	var env listEnvelope[W]
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
		err = decode(trimmed, &env.Data)
	} else if !isNull(raw) {
		err = decode(raw, &env)
	}
	if err != nil {
		return domain.ListResult[T]{}, err
	}

	items := make([]T, 0, len(env.Data))
	for i := range env.Data {
		items = append(items, mapFn(&env.Data[i]))
	}
	return domain.NewListResult(items, env.Pagination.toDomain(len(items))), nil
}

// findOne fetches a single resource. A not-found response or a null payload
// yields (nil, nil); every other failure is returned unchanged.
func findOne[W any, T any](ctx context.Context, c *Client, path string, mapFn func(*W) *T) (*T, error) {
	raw, err := c.Do(ctx, Request{Method: http.MethodGet, Path: path})
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if isNull(raw) {
		return nil, nil
	}

	var w W
	if err := decode(raw, &w); err != nil {
		return nil, err
	}
	return mapFn(&w), nil
}

// send performs a mutation that returns the whole updated resource.
func send[W any, T any](ctx context.Context, c *Client, req Request, mapFn func(*W) *T) (*T, error) {
	raw, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, apperror.NewUpstreamMalformed(nil).
			WithDetail("method", req.Method).
			WithDetail("path", req.Path)
	}

	var w W
	if err := decode(raw, &w); err != nil {
		return nil, err
	}
	return mapFn(&w), nil
}

// resourcePath joins collection with escaped path segments.
func resourcePath(collection string, segments ...string) string {
	var b strings.Builder
	b.WriteString(collection)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// idempotencyKey returns the caller's key, or a fresh one when the caller
// sent none.
func idempotencyKey(ctx context.Context) string {
	if key := appctx.GetIdempotencyKey(ctx); key != "" {
		return key
	}
	return id.NewKey()
}

func create(ctx context.Context, collection string, body any) Request {
	return Request{
		Method:         http.MethodPost,
		Path:           collection,
		Body:           body,
		IdempotencyKey: idempotencyKey(ctx),
	}
}
