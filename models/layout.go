package models

// Widget ids shared by the layout, the callback registrations and the page.
const (
	SiteDropdownID   = "site-dropdown"
	PayloadSliderID  = "payload-slider"
	SuccessPieID     = "success-pie-chart"
	PayloadScatterID = "success-payload-scatter-chart"
)

// Layout is the static description of the dashboard page.
type Layout struct {
	Title        string      `json:"title"`
	Dropdown     Dropdown    `json:"dropdown"`
	PieGraph     Graph       `json:"pie_graph"`
	SliderLabel  string      `json:"slider_label"`
	Slider       RangeSlider `json:"slider"`
	ScatterGraph Graph       `json:"scatter_graph"`
	// Observed is the payload range actually present in the dataset.
	Observed PayloadRange `json:"observed"`
}

// Dropdown is a single-select widget.
type Dropdown struct {
	ID          string   `json:"id"`
	Options     []Option `json:"options"`
	Value       string   `json:"value"`
	Placeholder string   `json:"placeholder"`
	Searchable  bool     `json:"searchable"`
}

// Option is one dropdown entry.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Has reports whether value is one of the dropdown's option values.
func (d Dropdown) Has(value string) bool {
	for _, o := range d.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// RangeSlider is a dual-handle numeric slider.
type RangeSlider struct {
	ID    string       `json:"id"`
	Min   float64      `json:"min"`
	Max   float64      `json:"max"`
	Step  float64      `json:"step"`
	Marks []Mark       `json:"marks"`
	Value PayloadRange `json:"value"`
}

// Mark is a labelled slider tick.
type Mark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// Graph is a placeholder the runtime fills with a callback's Figure.
type Graph struct {
	ID string `json:"id"`
}
