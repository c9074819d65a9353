// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"backoffice/internal/domain"
)

// ListResponse wraps list results with pagination.
type ListResponse[T any] struct {
	Data       []T               `json:"data"`
	Pagination domain.Pagination `json:"pagination"`
}

// MapList converts a domain list into a response, mapping every item.
func MapList[T any, R any](res domain.ListResult[T], fn func(T) R) ListResponse[R] {
	data := make([]R, 0, len(res.Items))
	for _, item := range res.Items {
		data = append(data, fn(item))
	}
	return ListResponse[R]{Data: data, Pagination: res.Pagination}
}

// SuccessResponse is returned by mutations without a resource body.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
