package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shanykim9/BoilerInspector/models"
)

func TestListSitesSearchFilter(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	_, err := store.CreateSite(ctx, models.Site{Name: "서울아파트", Address: strPtr("서울시 강남구")})
	require.NoError(t, err)
	_, err = store.CreateSite(ctx, models.Site{Name: "부산빌딩"})
	require.NoError(t, err)

	all, err := store.ListSites(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	got, err := store.ListSites(ctx, "부산")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "부산빌딩", got[0].Name)

	// LIKE metacharacters must match literally, not as wildcards
	none, err := store.ListSites(ctx, "100%")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestCreateInspectorAssignsID(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	first, err := store.CreateInspector(ctx, models.Inspector{Name: "김철수", Phone: strPtr("010-1234-5678")})
	require.NoError(t, err)
	require.Positive(t, first.ID)

	second, err := store.CreateInspector(ctx, models.Inspector{Name: "이영희"})
	require.NoError(t, err)
	require.Greater(t, second.ID, first.ID)

	list, err := store.ListInspectors(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "김철수", list[0].Name)
	require.Equal(t, "010-1234-5678", *list[0].Phone)
	require.Nil(t, list[1].Phone)
}

func TestSeedSampleDataRunsOnce(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	require.NoError(t, store.SeedSampleData(ctx))
	require.NoError(t, store.SeedSampleData(ctx))

	inspectors, err := store.ListInspectors(ctx)
	require.NoError(t, err)
	require.Len(t, inspectors, 3)

	sites, err := store.ListSites(ctx, "")
	require.NoError(t, err)
	require.Len(t, sites, 3)
}
