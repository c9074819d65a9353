package cache

import (
	"context"
	"sync"

	"backoffice/internal/core/entity"
	"backoffice/internal/core/id"
	"backoffice/pkg/logger"
)

// Mutation names a successful write against the inventory API.
type Mutation string

const (
	MovementCreated Mutation = "movement.created"
	MovementUpdated Mutation = "movement.updated"
	MovementPosted  Mutation = "movement.posted"
	MovementVoided  Mutation = "movement.voided"

	TransferCreated       Mutation = "transfer.created"
	TransferStatusChanged Mutation = "transfer.status_changed"
	TransferCompleted     Mutation = "transfer.completed"

	SaleCreated      Mutation = "sale.created"
	SaleUpdated      Mutation = "sale.updated"
	SaleLinesChanged Mutation = "sale.lines_changed"
	SaleConfirmed    Mutation = "sale.confirmed"
	SaleCancelled    Mutation = "sale.cancelled"

	ReturnCreated      Mutation = "return.created"
	ReturnUpdated      Mutation = "return.updated"
	ReturnLinesChanged Mutation = "return.lines_changed"
	ReturnConfirmed    Mutation = "return.confirmed"
	ReturnCancelled    Mutation = "return.cancelled"

	RoleAssigned Mutation = "role.assigned"
	RoleRemoved  Mutation = "role.removed"
)

// Family is a group of entries invalidated together.
type Family struct {
	Kind  Kind
	Shape Shape
}

var (
	movementList   = Family{KindMovement, ShapeList}
	movementDetail = Family{KindMovement, ShapeDetail}
	transferList   = Family{KindTransfer, ShapeList}
	transferDetail = Family{KindTransfer, ShapeDetail}
	saleList       = Family{KindSale, ShapeList}
	saleDetail     = Family{KindSale, ShapeDetail}
	returnList     = Family{KindReturn, ShapeList}
	returnDetail   = Family{KindReturn, ShapeDetail}
	stockList      = Family{KindStock, ShapeList}
	roleList       = Family{KindRole, ShapeList}
	roleDetail     = Family{KindRole, ShapeDetail}
	userList       = Family{KindUser, ShapeList}
	userDetail     = Family{KindUser, ShapeDetail}
)

// Table maps each mutation to the families it makes stale.
// Only mutations that change stock levels list the stock family.
// Sale and return confirmation do not touch stock here: the stock
// effect of those documents is not observable from this client.
var Table = map[Mutation][]Family{
	MovementCreated: {movementList},
	MovementUpdated: {movementList, movementDetail},
	MovementPosted:  {movementList, movementDetail, stockList},
	MovementVoided:  {movementList, movementDetail, stockList},

	TransferCreated:       {transferList, transferDetail, stockList},
	TransferStatusChanged: {transferList, transferDetail},
	TransferCompleted:     {transferList, transferDetail, stockList},

	SaleCreated:      {saleList},
	SaleUpdated:      {saleList, saleDetail},
	SaleLinesChanged: {saleList, saleDetail},
	SaleConfirmed:    {saleList, saleDetail},
	SaleCancelled:    {saleList, saleDetail},

	ReturnCreated:      {returnList},
	ReturnUpdated:      {returnList, returnDetail},
	ReturnLinesChanged: {returnList, returnDetail},
	ReturnConfirmed:    {returnList, returnDetail},
	ReturnCancelled:    {returnList, returnDetail},

	RoleAssigned: {roleList, roleDetail, userList, userDetail},
	RoleRemoved:  {roleList, roleDetail, userList, userDetail},
}

// Target narrows a mutation to the entities it touched.
// IDs scope detail families per kind; Stock scopes the stock family.
// An empty scope invalidates the whole family.
type Target struct {
	IDs   map[Kind]string
	Stock []entity.StockRef
}

// TargetOf returns a target naming a single entity.
func TargetOf(kind Kind, entityID string) Target {
	return Target{}.With(kind, entityID)
}

// With returns a copy of t that also names entityID for kind.
func (t Target) With(kind Kind, entityID string) Target {
	ids := make(map[Kind]string, len(t.IDs)+1)
	for k, v := range t.IDs {
		ids[k] = v
	}
	ids[kind] = entityID
	t.IDs = ids
	return t
}

// WithStock returns a copy of t scoped to the given stock pairs.
func (t Target) WithStock(refs ...entity.StockRef) Target {
	t.Stock = append(append([]entity.StockRef(nil), t.Stock...), refs...)
	return t
}

// Event describes one dispatched invalidation.
type Event struct {
	Mutation    Mutation
	Tenant      string
	Families    []Family
	Target      Target
	Invalidated int
}

// Touches reports whether the event covered kind.
func (e Event) Touches(kind Kind) bool {
	for _, f := range e.Families {
		if f.Kind == kind {
			return true
		}
	}
	return false
}

// InvalidationListener is called after a mutation has been dispatched.
type InvalidationListener func(Event)

// Dispatcher applies the invalidation table to a cache.
// It is the only path through which mutations touch cached data.
type Dispatcher struct {
	cache *Cache
	table map[Mutation][]Family

	mu        sync.RWMutex
	listeners []InvalidationListener
}

// NewDispatcher creates a dispatcher over c using the default table.
func NewDispatcher(c *Cache) *Dispatcher {
	return &Dispatcher{cache: c, table: Table}
}

// OnInvalidate registers a listener for dispatched events.
func (d *Dispatcher) OnInvalidate(listener InvalidationListener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, listener)
}

// Dispatch invalidates the families mapped to m, scoped by target and by
// the tenant of the caller in ctx. Callers invoke it only after the
// mutation succeeded.
func (d *Dispatcher) Dispatch(ctx context.Context, m Mutation, target Target) Event {
	families, ok := d.table[m]
	if !ok {
		logger.Warn(ctx, "no invalidation rule for mutation", "mutation", m)
		return Event{Mutation: m, Tenant: ScopeOf(ctx).Tenant, Target: target}
	}

	tenant := ScopeOf(ctx).Tenant
	ev := Event{Mutation: m, Tenant: tenant, Families: families, Target: target}
	for _, f := range families {
		sel := selectorFor(f, target)
		sel.Tenant = tenant
		ev.Invalidated += d.cache.Invalidate(sel)
	}

	logger.Debug(ctx, "query cache invalidated",
		"mutation", m,
		"tenant", tenant,
		"families", len(families),
		"entries", ev.Invalidated,
	)

	d.notify(ctx, ev)
	return ev
}

func (d *Dispatcher) notify(ctx context.Context, ev Event) {
	d.mu.RLock()
	listeners := make([]InvalidationListener, len(d.listeners))
	copy(listeners, d.listeners)
	d.mu.RUnlock()

	for _, listener := range listeners {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Error(ctx, "invalidation listener panicked", "mutation", ev.Mutation, "panic", r)
				}
			}()
			listener(ev)
		}()
	}
}

func selectorFor(f Family, t Target) Selector {
	sel := Selector{Kind: f.Kind, Shape: f.Shape}
	if f.Shape == ShapeDetail {
		sel.ID = t.IDs[f.Kind]
	}
	if f.Kind == KindStock {
		refs := entity.UniqueStockRefs(t.Stock)
		warehouses := make([]id.ID, 0, len(refs))
		products := make([]id.ID, 0, len(refs))
		for _, r := range refs {
			warehouses = append(warehouses, r.WarehouseID)
			products = append(products, r.ProductID)
		}
		sel.Warehouses = id.Unique(warehouses...)
		sel.Products = id.Unique(products...)
	}
	return sel
}
