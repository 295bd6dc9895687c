package guard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type ownedStub struct {
	id int64
}

func (s *ownedStub) EntityID() int64 { return s.id }

func TestFindOwned(t *testing.T) {
	owned := []*ownedStub{{id: 1}, {id: 7}, {id: 42}}

	found, ok := FindOwned(owned, 7)
	require.True(t, ok)
	require.Equal(t, int64(7), found.EntityID())

	// Промах: id нет в коллекции — неважно, существует ли он у другого владельца.
	_, ok = FindOwned(owned, 99)
	require.False(t, ok)

	_, ok = FindOwned([]*ownedStub{}, 1)
	require.False(t, ok)

	_, ok = FindOwned[*ownedStub](nil, 1)
	require.False(t, ok)
}

func TestContainsID(t *testing.T) {
	owned := []*ownedStub{{id: 3}, {id: 5}}

	require.True(t, ContainsID(owned, 3))
	require.True(t, ContainsID(owned, 5))
	require.False(t, ContainsID(owned, 4))
	require.False(t, ContainsID[*ownedStub](nil, 3))
}
