package entity

import (
	"context"
	"time"
)

// Validatable is implemented by inputs that support self-validation.
// Validation checks local invariants only; the inventory API stays authoritative.
type Validatable interface {
	// Validate returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// Audit contains the audit fields shared by every document.
// Timestamps absent on the wire stay at their zero value.
type Audit struct {
	CreatedBy string     `json:"createdBy"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
