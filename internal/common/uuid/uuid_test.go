package uuid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUIDIsRandom(t *testing.T) {
	id, err := uuid.Parse(New().NewUUID())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), id.Version())
}

func TestNewUUIDTimeOrdered(t *testing.T) {
	gen := NewTimeOrdered()
	first := gen.NewUUID()
	second := gen.NewUUID()

	id, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.Less(t, first, second)
}
