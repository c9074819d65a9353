package api

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"backoffice/internal/core/entity"
	"backoffice/internal/core/id"
	"backoffice/internal/core/types"
)

// Wire helpers shared by the document mappers. None of them fail:
// missing display strings become "", missing optional values become nil.

// refWire is a nested {id, name, sku} reference some endpoints send
// instead of flat denormalized fields.
type refWire struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
	SKU  *string `json:"sku"`
}

func (r *refWire) id() *string {
	if r == nil {
		return nil
	}
	return r.ID
}

func (r *refWire) name() *string {
	if r == nil {
		return nil
	}
	return r.Name
}

func (r *refWire) sku() *string {
	if r == nil {
		return nil
	}
	return r.SKU
}

// auditWire carries the audit fields common to every document payload.
type auditWire struct {
	CreatedBy     *string  `json:"createdBy"`
	CreatedByUser *refWire `json:"createdByUser"`
	CreatedAt     *string  `json:"createdAt"`
	UpdatedAt     *string  `json:"updatedAt"`
}

func (a *auditWire) toDomain() entity.Audit {
	return entity.Audit{
		CreatedBy: text(a.CreatedBy, a.CreatedByUser.name(), a.CreatedByUser.id()),
		CreatedAt: timestamp(a.CreatedAt),
		UpdatedAt: optTimestamp(a.UpdatedAt),
	}
}

// text returns the first present, non-blank value or "".
func text(values ...*string) string {
	for _, v := range values {
		if v != nil && strings.TrimSpace(*v) != "" {
			return *v
		}
	}
	return ""
}

// optText copies a nullable string so entities never share storage with wire values.
func optText(v *string) *string {
	if v == nil {
		return nil
	}
	s := *v
	return &s
}

func optID(values ...*string) *id.ID {
	if s := text(values...); s != "" {
		return &s
	}
	return nil
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

func parseTime(v *string) (time.Time, bool) {
	if v == nil {
		return time.Time{}, false
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// timestamp parses a required ISO-8601 field; unparseable input yields the zero time.
func timestamp(v *string) time.Time {
	t, _ := parseTime(v)
	return t
}

// optTimestamp parses a nullable ISO-8601 field.
func optTimestamp(v *string) *time.Time {
	if t, ok := parseTime(v); ok {
		return &t
	}
	return nil
}

func amount(values ...*decimal.Decimal) types.Money {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return types.Zero()
}

func quantity(v *decimal.Decimal) int64 {
	if v == nil {
		return 0
	}
	return v.IntPart()
}

func productRef(productID, name, sku *string, nested *refWire) entity.ProductRef {
	return entity.ProductRef{
		ProductID:   text(productID, nested.id()),
		ProductName: text(name, nested.name()),
		ProductSKU:  text(sku, nested.sku()),
	}
}

func warehouseRef(warehouseID, name *string, nested *refWire) entity.WarehouseRef {
	return entity.WarehouseRef{
		WarehouseID:   text(warehouseID, nested.id()),
		WarehouseName: text(name, nested.name()),
	}
}
