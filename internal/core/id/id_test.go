package id

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKey(t *testing.T) {
	key := NewKey()
	parsed, err := uuid.Parse(key)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, key, NewKey())
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []ID{"w1", "w2"}, Unique("w1", "", "w2", "w1", "  "))
	assert.Empty(t, Unique())
}
