// Package cache provides the keyed query cache shared by all back-office views.
//
// Entries are addressed by (kind, shape, identity). Reads are served from the
// cache while fresh; mutations never write into it, they only mark entries
// stale through the invalidation table so the next read refetches.
package cache

import (
	"context"
	"net/url"
	"strings"
	"time"

	appctx "backoffice/internal/core/context"
)

// Kind is the entity family an entry belongs to.
type Kind string

const (
	KindMovement  Kind = "movement"
	KindTransfer  Kind = "transfer"
	KindSale      Kind = "sale"
	KindReturn    Kind = "return"
	KindStock     Kind = "stock"
	KindProduct   Kind = "product"
	KindWarehouse Kind = "warehouse"
	KindCategory  Kind = "category"
	KindRole      Kind = "role"
	KindUser      Kind = "user"
)

// Shape distinguishes collection queries from single-entity queries.
type Shape string

const (
	ShapeList   Shape = "list"
	ShapeDetail Shape = "detail"
)

// Query parameters that scope stock lists.
const (
	ParamWarehouse = "warehouseId"
	ParamProduct   = "productId"
)

// Scope is the caller a cached result was fetched for. The inventory API
// answers per tenant and per bearer token, so entries are never shared
// between scopes.
type Scope struct {
	Tenant string
	User   string
}

// ScopeOf returns the scope of the caller attached to ctx.
// An anonymous context yields the zero Scope.
func ScopeOf(ctx context.Context) Scope {
	if u := appctx.GetUser(ctx); u != nil {
		return Scope{Tenant: u.TenantID, User: u.UserID}
	}
	return Scope{}
}

// Key identifies a cached query result.
// Params holds the canonical (sorted) encoding of the list filter.
type Key struct {
	Scope  Scope
	Kind   Kind
	Shape  Shape
	ID     string
	Params string
}

// ListKey builds a key for a collection query with the given filter params.
func ListKey(kind Kind, params url.Values) Key {
	return Key{Kind: kind, Shape: ShapeList, Params: params.Encode()}
}

// DetailKey builds a key for a single entity.
func DetailKey(kind Kind, id string) Key {
	return Key{Kind: kind, Shape: ShapeDetail, ID: id}
}

// In returns a copy of k bound to scope.
func (k Key) In(scope Scope) Key {
	k.Scope = scope
	return k
}

// String renders the key as "kind/shape/id?params", prefixed with
// "tenant/user:" when the key is scoped.
func (k Key) String() string {
	var b strings.Builder
	if k.Scope != (Scope{}) {
		b.WriteString(k.Scope.Tenant)
		b.WriteByte('/')
		b.WriteString(k.Scope.User)
		b.WriteByte(':')
	}
	b.WriteString(string(k.Kind))
	b.WriteByte('/')
	b.WriteString(string(k.Shape))
	if k.ID != "" {
		b.WriteByte('/')
		b.WriteString(k.ID)
	}
	if k.Params != "" {
		b.WriteByte('?')
		b.WriteString(k.Params)
	}
	return b.String()
}

func (k Key) param(name string) string {
	if k.Params == "" {
		return ""
	}
	values, err := url.ParseQuery(k.Params)
	if err != nil {
		return ""
	}
	return values.Get(name)
}

// Policy decides how long an entry stays fresh.
// Reference data changes rarely and gets the slow window.
type Policy struct {
	FastTTL time.Duration
	SlowTTL time.Duration
}

// DefaultPolicy returns the default staleness windows.
func DefaultPolicy() Policy {
	return Policy{
		FastTTL: 2 * time.Minute,
		SlowTTL: 5 * time.Minute,
	}
}

// TTL returns the freshness window for kind.
func (p Policy) TTL(kind Kind) time.Duration {
	switch kind {
	case KindProduct, KindWarehouse, KindCategory, KindRole, KindUser:
		return p.SlowTTL
	default:
		return p.FastTTL
	}
}
