package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DengYiping/catlink-cli/internal/credentials"
	"github.com/DengYiping/catlink-cli/internal/region"
)

func TestResolve_ConcreteRegion(t *testing.T) {
	store := credentials.NewMemoryStore()
	rec := credentials.Record{Token: "T1", Phone: "123"}
	require.NoError(t, store.Put(region.USA, rec))

	entries, err := Resolve(store, region.One(region.USA))
	require.NoError(t, err)
	require.Equal(t, []Entry{{Region: region.USA, Record: rec}}, entries)
}

func TestResolve_ConcreteRegionMissing(t *testing.T) {
	store := credentials.NewMemoryStore()
	require.NoError(t, store.Put(region.USA, credentials.Record{Token: "T1"}))

	_, err := Resolve(store, region.One(region.China))
	require.ErrorIs(t, err, ErrNotLoggedIn)
	require.Contains(t, err.Error(), "china")
}

func TestResolve_AutoAllStored(t *testing.T) {
	store := credentials.NewMemoryStore()
	require.NoError(t, store.Put(region.Singapore, credentials.Record{Token: "T3"}))
	require.NoError(t, store.Put(region.Global, credentials.Record{Token: "T1"}))

	entries, err := Resolve(store, region.AllStored())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, region.Global, entries[0].Region)
	require.Equal(t, "T1", entries[0].Record.Token)
	require.Equal(t, region.Singapore, entries[1].Region)
	require.Equal(t, "T3", entries[1].Record.Token)
}

func TestResolve_AutoEmptyStore(t *testing.T) {
	_, err := Resolve(credentials.NewMemoryStore(), region.AllStored())
	require.ErrorIs(t, err, ErrNotLoggedIn)
}
