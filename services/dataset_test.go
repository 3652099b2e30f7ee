package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spacex-dashboard/models"
)

// scenarioRecords is the three-row table used throughout the chart tests.
func scenarioRecords() []*models.LaunchRecord {
	return []*models.LaunchRecord{
		{LaunchSite: "SiteA", PayloadMassKg: 500, Class: 1, BoosterVersionCategory: "Falcon9"},
		{LaunchSite: "SiteA", PayloadMassKg: 1500, Class: 0, BoosterVersionCategory: "Falcon9"},
		{LaunchSite: "SiteB", PayloadMassKg: 2000, Class: 1, BoosterVersionCategory: "FalconHeavy"},
	}
}

// fourSiteRecords resembles the real dataset: four sites, mixed outcomes.
func fourSiteRecords() []*models.LaunchRecord {
	return []*models.LaunchRecord{
		{FlightNumber: 1, LaunchSite: "CCAFS LC-40", PayloadMassKg: 0, Class: 0, BoosterVersionCategory: "v1.0"},
		{FlightNumber: 2, LaunchSite: "CCAFS LC-40", PayloadMassKg: 525, Class: 0, BoosterVersionCategory: "v1.0"},
		{FlightNumber: 3, LaunchSite: "VAFB SLC-4E", PayloadMassKg: 500, Class: 0, BoosterVersionCategory: "v1.1"},
		{FlightNumber: 4, LaunchSite: "CCAFS LC-40", PayloadMassKg: 3170, Class: 1, BoosterVersionCategory: "v1.1"},
		{FlightNumber: 5, LaunchSite: "KSC LC-39A", PayloadMassKg: 2490, Class: 1, BoosterVersionCategory: "FT"},
		{FlightNumber: 6, LaunchSite: "KSC LC-39A", PayloadMassKg: 5300, Class: 1, BoosterVersionCategory: "FT"},
		{FlightNumber: 7, LaunchSite: "VAFB SLC-4E", PayloadMassKg: 9600, Class: 1, BoosterVersionCategory: "FT"},
		{FlightNumber: 8, LaunchSite: "CCAFS SLC-40", PayloadMassKg: 3600, Class: 1, BoosterVersionCategory: "B4"},
		{FlightNumber: 9, LaunchSite: "CCAFS SLC-40", PayloadMassKg: 6460, Class: 0, BoosterVersionCategory: "B4"},
		{FlightNumber: 10, LaunchSite: "KSC LC-39A", PayloadMassKg: 4990, Class: 0, BoosterVersionCategory: "B5"},
	}
}

func mustDataset(t *testing.T, records []*models.LaunchRecord) *Dataset {
	t.Helper()
	ds, err := NewDataset(records)
	require.NoError(t, err)
	return ds
}

func TestNewDatasetEmpty(t *testing.T) {
	_, err := NewDataset(nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestDatasetDerivedValues(t *testing.T) {
	ds := mustDataset(t, fourSiteRecords())

	assert.Equal(t, 10, ds.Len())
	assert.Equal(t, []string{"CCAFS LC-40", "CCAFS SLC-40", "KSC LC-39A", "VAFB SLC-4E"}, ds.Sites())
	assert.Equal(t, []string{"v1.0", "v1.1", "FT", "B4", "B5"}, ds.BoosterCategories())
	assert.Equal(t, models.PayloadRange{Low: 0, High: 9600}, ds.PayloadBounds())
	assert.True(t, ds.HasSite("KSC LC-39A"))
	assert.False(t, ds.HasSite("Boca Chica"))
}

func TestDatasetIsImmutable(t *testing.T) {
	records := scenarioRecords()
	ds := mustDataset(t, records)

	records[0].LaunchSite = "Mutated"
	ds.Sites()[0] = "Mutated"
	ds.Records()[1].Class = 7

	assert.Equal(t, []string{"SiteA", "SiteB"}, ds.Sites())
	got := ds.Records()
	assert.Equal(t, "SiteA", got[0].LaunchSite)
	assert.Equal(t, 0, got[1].Class)
}

func TestDatasetMoreThanFourSites(t *testing.T) {
	records := fourSiteRecords()
	records = append(records, &models.LaunchRecord{LaunchSite: "Boca Chica", PayloadMassKg: 100, Class: 1, BoosterVersionCategory: "Starship"})

	ds := mustDataset(t, records)
	assert.Len(t, ds.Sites(), 5)
	assert.Equal(t, "Boca Chica", ds.Sites()[0])
}
