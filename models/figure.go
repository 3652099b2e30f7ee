package models

// ChartKind names the kind of chart a Figure describes.
type ChartKind string

const (
	ChartPie     ChartKind = "pie"
	ChartScatter ChartKind = "scatter"
)

// Figure is a renderer-independent chart description produced by the chart
// handlers. A handler returns a fresh Figure on every call.
type Figure struct {
	Kind   ChartKind       `json:"kind"`
	Title  string          `json:"title"`
	XTitle string          `json:"x_title,omitempty"`
	YTitle string          `json:"y_title,omitempty"`
	Slices []PieSlice      `json:"slices,omitempty"`
	Series []ScatterSeries `json:"series,omitempty"`
	// XRange is the payload window a scatter was filtered with.
	XRange *PayloadRange `json:"x_range,omitempty"`
}

// PieSlice is one labelled wedge of a pie chart.
type PieSlice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ScatterSeries groups the points sharing one color.
type ScatterSeries struct {
	Name   string         `json:"name"`
	Points []ScatterPoint `json:"points"`
}

// ScatterPoint is a single plotted launch.
type ScatterPoint struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Site string  `json:"site"`
}

// Empty reports whether the figure has nothing to draw.
func (f *Figure) Empty() bool {
	switch f.Kind {
	case ChartPie:
		return len(f.Slices) == 0
	case ChartScatter:
		return f.PointCount() == 0
	}
	return true
}

// PointCount returns the number of scatter points across all series.
func (f *Figure) PointCount() int {
	n := 0
	for _, s := range f.Series {
		n += len(s.Points)
	}
	return n
}
