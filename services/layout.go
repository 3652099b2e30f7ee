package services

import (
	"math"
	"strconv"

	"spacex-dashboard/models"
)

const dashboardTitle = "SpaceX Launch Records Dashboard"

// SliderConfig sets the payload slider's nominal bounds.
type SliderConfig struct {
	Min  float64
	Max  float64
	Step float64
}

// DefaultSliderConfig is the 0 to 10000 kg slider in 1000 kg steps.
var DefaultSliderConfig = SliderConfig{Min: 0, Max: 10000, Step: 1000}

// BuildLayout assembles the page description. Dropdown options come from
// every distinct site in ds. The slider keeps cfg's bounds unless the
// observed payloads fall outside them, in which case the bounds are widened
// to the enclosing multiples of the step.
func BuildLayout(ds *Dataset, cfg SliderConfig) *models.Layout {
	if cfg.Step <= 0 {
		cfg.Step = DefaultSliderConfig.Step
	}
	if cfg.Max <= cfg.Min {
		cfg.Min, cfg.Max = DefaultSliderConfig.Min, DefaultSliderConfig.Max
	}

	observed := ds.PayloadBounds()
	lo := math.Min(cfg.Min, math.Floor(observed.Low/cfg.Step)*cfg.Step)
	hi := math.Max(cfg.Max, math.Ceil(observed.High/cfg.Step)*cfg.Step)

	options := []models.Option{{Label: "All Sites", Value: AllSites}}
	for _, site := range ds.Sites() {
		options = append(options, models.Option{Label: site, Value: site})
	}

	return &models.Layout{
		Title: dashboardTitle,
		Dropdown: models.Dropdown{
			ID:          models.SiteDropdownID,
			Options:     options,
			Value:       AllSites,
			Placeholder: "Select a Launch Site here",
			Searchable:  true,
		},
		PieGraph:    models.Graph{ID: models.SuccessPieID},
		SliderLabel: "Payload range (Kg):",
		Slider: models.RangeSlider{
			ID:    models.PayloadSliderID,
			Min:   lo,
			Max:   hi,
			Step:  cfg.Step,
			Marks: sliderMarks(lo, hi),
			Value: models.PayloadRange{Low: lo, High: hi},
		},
		ScatterGraph: models.Graph{ID: models.PayloadScatterID},
		Observed:     observed,
	}
}

// sliderMarks places five evenly spaced labelled ticks across [lo, hi].
func sliderMarks(lo, hi float64) []models.Mark {
	const segments = 4
	marks := make([]models.Mark, 0, segments+1)
	for i := 0; i <= segments; i++ {
		v := lo + (hi-lo)*float64(i)/segments
		marks = append(marks, models.Mark{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)})
	}
	return marks
}
