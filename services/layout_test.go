package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spacex-dashboard/models"
)

func TestBuildLayoutDefaults(t *testing.T) {
	ds := mustDataset(t, fourSiteRecords())
	layout := BuildLayout(ds, DefaultSliderConfig)

	assert.Equal(t, "SpaceX Launch Records Dashboard", layout.Title)

	dd := layout.Dropdown
	assert.Equal(t, models.SiteDropdownID, dd.ID)
	assert.Equal(t, AllSites, dd.Value)
	assert.True(t, dd.Searchable)
	assert.Equal(t, "Select a Launch Site here", dd.Placeholder)
	require.Len(t, dd.Options, 5)
	assert.Equal(t, models.Option{Label: "All Sites", Value: "ALL"}, dd.Options[0])
	assert.Equal(t, models.Option{Label: "CCAFS LC-40", Value: "CCAFS LC-40"}, dd.Options[1])
	assert.True(t, dd.Has("VAFB SLC-4E"))
	assert.False(t, dd.Has("Nowhere"))

	s := layout.Slider
	assert.Equal(t, models.PayloadSliderID, s.ID)
	assert.Equal(t, 0.0, s.Min)
	assert.Equal(t, 10000.0, s.Max)
	assert.Equal(t, 1000.0, s.Step)
	assert.Equal(t, models.PayloadRange{Low: 0, High: 10000}, s.Value)
	assert.Equal(t, []models.Mark{
		{Value: 0, Label: "0"},
		{Value: 2500, Label: "2500"},
		{Value: 5000, Label: "5000"},
		{Value: 7500, Label: "7500"},
		{Value: 10000, Label: "10000"},
	}, s.Marks)

	assert.Equal(t, models.SuccessPieID, layout.PieGraph.ID)
	assert.Equal(t, models.PayloadScatterID, layout.ScatterGraph.ID)
	assert.Equal(t, models.PayloadRange{Low: 0, High: 9600}, layout.Observed)
}

func TestBuildLayoutListsEverySite(t *testing.T) {
	records := fourSiteRecords()
	records = append(records,
		&models.LaunchRecord{LaunchSite: "Boca Chica", PayloadMassKg: 100, Class: 1},
		&models.LaunchRecord{LaunchSite: "Starbase", PayloadMassKg: 100, Class: 0},
	)
	layout := BuildLayout(mustDataset(t, records), DefaultSliderConfig)

	assert.Len(t, layout.Dropdown.Options, 7)
}

func TestBuildLayoutWidensSliderToData(t *testing.T) {
	records := append(scenarioRecords(), &models.LaunchRecord{LaunchSite: "SiteC", PayloadMassKg: 15600, Class: 1})
	layout := BuildLayout(mustDataset(t, records), DefaultSliderConfig)

	assert.Equal(t, 0.0, layout.Slider.Min)
	assert.Equal(t, 16000.0, layout.Slider.Max)
	assert.Equal(t, models.PayloadRange{Low: 0, High: 16000}, layout.Slider.Value)
}

func TestBuildLayoutInvalidSliderConfigFallsBack(t *testing.T) {
	layout := BuildLayout(mustDataset(t, scenarioRecords()), SliderConfig{Min: 5, Max: 5, Step: 0})

	assert.Equal(t, DefaultSliderConfig.Min, layout.Slider.Min)
	assert.Equal(t, DefaultSliderConfig.Max, layout.Slider.Max)
	assert.Equal(t, DefaultSliderConfig.Step, layout.Slider.Step)
}
