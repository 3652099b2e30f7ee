package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spacex-dashboard/models"
)

func setupTestStore(t *testing.T) *SQLStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "launches.db")
	store, err := NewSQLStore(context.Background(), "sqlite", path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLStoreRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	records := []*models.LaunchRecord{
		{FlightNumber: 1, LaunchSite: "SiteA", PayloadMassKg: 500, Class: 1, BoosterVersion: "F9 B1", BoosterVersionCategory: "Falcon9"},
		{FlightNumber: 2, LaunchSite: "SiteA", PayloadMassKg: 1500, Class: 0, BoosterVersionCategory: "Falcon9"},
		{FlightNumber: 3, LaunchSite: "SiteB", PayloadMassKg: 2000, Class: 1, BoosterVersionCategory: "FalconHeavy"},
	}
	require.NoError(t, store.Write(records))

	got, err := store.FetchAll()
	require.NoError(t, err)
	assert.Equal(t, records, got)
	assert.Equal(t, "sqlite", store.Driver())
}

func TestSQLStoreWriteReplaces(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.Write([]*models.LaunchRecord{
		{LaunchSite: "Old", Class: 0},
	}))
	require.NoError(t, store.Write([]*models.LaunchRecord{
		{LaunchSite: "New", Class: 1},
	}))

	got, err := store.FetchAll()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "New", got[0].LaunchSite)
}

func TestSQLStoreBatchesKeepOrder(t *testing.T) {
	store := setupTestStore(t)

	var records []*models.LaunchRecord
	for i := 0; i < insertBatchSize*2+7; i++ {
		records = append(records, &models.LaunchRecord{
			FlightNumber:           i + 1,
			LaunchSite:             fmt.Sprintf("Site%d", i%4),
			PayloadMassKg:          float64(i * 100),
			Class:                  i % 2,
			BoosterVersionCategory: "FT",
		})
	}
	require.NoError(t, store.Write(records))

	got, err := store.FetchAll()
	require.NoError(t, err)
	require.Len(t, got, len(records))
	for i := range records {
		assert.Equal(t, records[i].FlightNumber, got[i].FlightNumber)
	}
}

func TestSQLStoreClear(t *testing.T) {
	store := setupTestStore(t)
	require.NoError(t, store.Write([]*models.LaunchRecord{{LaunchSite: "SiteA"}}))
	require.NoError(t, store.Clear())

	got, err := store.FetchAll()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNewSQLStoreUnsupportedDriver(t *testing.T) {
	_, err := NewSQLStore(context.Background(), "oracle", "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

func TestBuildInsert(t *testing.T) {
	query, args := buildInsert(10, []*models.LaunchRecord{
		{FlightNumber: 1, LaunchSite: "SiteA", PayloadMassKg: 500, Class: 1, BoosterVersionCategory: "F9"},
		{FlightNumber: 2, LaunchSite: "SiteB", PayloadMassKg: 600, Class: 0, BoosterVersionCategory: "FT"},
	})

	assert.True(t, strings.HasPrefix(query, "INSERT INTO launches"))
	assert.Equal(t, 2, strings.Count(query, "(?,?,?,?,?,?,?)"))
	require.Len(t, args, 14)
	assert.Equal(t, 10, args[0])
	assert.Equal(t, 11, args[7])
	assert.Equal(t, "SiteB", args[9])
}
