// Package id provides identifier helpers for back-office entities.
// Entity identifiers are issued by the inventory API and treated as opaque strings.
// Keys generated locally (request ids, idempotency keys) are UUIDv7.
package id

import (
	"strings"

	"github.com/google/uuid"
)

// ID is an opaque server-issued identifier.
type ID = string

// NewKey generates a new UUIDv7 string (time-ordered).
func NewKey() string {
	key, err := uuid.NewV7()
	if err != nil {
		// Fallback to V4 if V7 fails (should never happen)
		return uuid.NewString()
	}
	return key.String()
}

// IsEmpty reports whether id carries no value.
func IsEmpty(id ID) bool {
	return strings.TrimSpace(id) == ""
}

// Unique returns ids without duplicates and empty values, preserving order.
func Unique(ids ...ID) []ID {
	seen := make(map[ID]struct{}, len(ids))
	out := make([]ID, 0, len(ids))
	for _, v := range ids {
		if IsEmpty(v) {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
