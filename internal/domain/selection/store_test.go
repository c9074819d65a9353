package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore(t *testing.T) {
	s := NewStore()
	alice := Scope{TenantID: "t1", UserID: "u1"}
	other := Scope{TenantID: "t2", UserID: "u1"}

	_, ok := s.Warehouse(alice)
	assert.False(t, ok)

	s.SelectWarehouse(alice, "W1")
	w, ok := s.Warehouse(alice)
	assert.True(t, ok)
	assert.Equal(t, "W1", w)

	_, ok = s.Warehouse(other)
	assert.False(t, ok, "selection is scoped per tenant")

	s.SelectWarehouse(alice, "")
	_, ok = s.Warehouse(alice)
	assert.False(t, ok)
}
