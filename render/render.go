// Package render draws dashboard figures server-side with go-chart.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"spacex-dashboard/models"
)

// Format selects the output encoding.
type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
)

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	if f == PNG {
		return "image/png"
	}
	return "image/svg+xml"
}

// ParseFormat maps a file extension to a Format.
func ParseFormat(ext string) (Format, error) {
	switch ext {
	case "svg", ".svg":
		return SVG, nil
	case "png", ".png":
		return PNG, nil
	}
	return "", fmt.Errorf("render: unsupported format %q", ext)
}

// Options sizes the rendered image.
type Options struct {
	Width  int
	Height int
}

// DefaultOptions matches the page's chart containers.
var DefaultOptions = Options{Width: 900, Height: 450}

// Render writes fig to w in the requested format.
func Render(w io.Writer, fig *models.Figure, format Format, opts Options) error {
	if fig == nil {
		return errors.New("render: nil figure")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts = DefaultOptions
	}

	provider := chart.SVG
	if format == PNG {
		provider = chart.PNG
	}

	switch fig.Kind {
	case models.ChartPie:
		return renderPie(w, fig, provider, opts)
	case models.ChartScatter:
		return renderScatter(w, fig, provider, opts)
	}
	return fmt.Errorf("render: unknown chart kind %q", fig.Kind)
}

func renderPie(w io.Writer, fig *models.Figure, provider chart.RendererProvider, opts Options) error {
	var values []chart.Value
	for _, s := range fig.Slices {
		// go-chart cannot draw zero-width wedges.
		if s.Value <= 0 {
			continue
		}
		values = append(values, chart.Value{Label: s.Label, Value: s.Value})
	}
	if len(values) == 0 {
		return renderEmpty(w, fig.Title, provider, opts)
	}

	pie := chart.PieChart{
		Title:  fig.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Values: values,
	}
	if err := pie.Render(provider, w); err != nil {
		return fmt.Errorf("render: pie %q: %w", fig.Title, err)
	}
	return nil
}

// pointStyle returns a style that renders points only (no connecting line).
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    5,
		DotColor:    col,
	}
}

// anchorSeries is an undrawn series that keeps the plot valid when no
// launches match the selection.
func anchorSeries(x models.PayloadRange) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Style:   chart.Style{StrokeWidth: chart.Disabled, DotWidth: chart.Disabled},
		XValues: []float64{x.Low, x.High},
		YValues: []float64{0, 1},
	}
}

func renderScatter(w io.Writer, fig *models.Figure, provider chart.RendererProvider, opts Options) error {
	if fig.Empty() {
		return renderEmpty(w, fig.Title, provider, opts)
	}

	var series []chart.Series
	for i, s := range fig.Series {
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for j, p := range s.Points {
			xs[j] = p.X
			ys[j] = p.Y
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			Style:   pointStyle(chart.GetDefaultColor(i)),
			XValues: xs,
			YValues: ys,
		})
	}

	c := chart.Chart{
		Title:      fig.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  fig.XTitle,
			Range: xRange(fig),
		},
		YAxis: classAxis(fig.YTitle),
		Series: series,
	}
	c.Elements = []chart.Renderable{chart.Legend(&c)}

	if err := c.Render(provider, w); err != nil {
		return fmt.Errorf("render: scatter %q: %w", fig.Title, err)
	}
	return nil
}

// classAxis labels the 0 and 1 outcomes. go-chart sizes an axis with explicit
// ticks to the outermost tick, so the unlabelled end ticks keep dots off the
// plot border.
func classAxis(name string) chart.YAxis {
	return chart.YAxis{
		Name: name,
		Ticks: []chart.Tick{
			{Value: -0.25, Label: ""},
			{Value: 0, Label: "0"},
			{Value: 1, Label: "1"},
			{Value: 1.25, Label: ""},
		},
	}
}

// emptyXAxis spans [0, 1] with a centred "no data" label. The end ticks keep
// the axis range non-degenerate.
func emptyXAxis() chart.XAxis {
	return chart.XAxis{
		Range: &chart.ContinuousRange{Min: 0, Max: 1},
		Ticks: []chart.Tick{
			{Value: 0, Label: ""},
			{Value: 0.5, Label: "no data"},
			{Value: 1, Label: ""},
		},
	}
}

// xRange pins the x axis to the selected payload window, padded when the
// window or the data collapse to a single value.
func xRange(fig *models.Figure) *chart.ContinuousRange {
	var lo, hi float64
	if fig.XRange != nil && fig.XRange.Low <= fig.XRange.High {
		lo, hi = fig.XRange.Low, fig.XRange.High
	} else {
		first := true
		for _, s := range fig.Series {
			for _, p := range s.Points {
				if first || p.X < lo {
					lo = p.X
				}
				if first || p.X > hi {
					hi = p.X
				}
				first = false
			}
		}
	}
	if hi <= lo {
		lo, hi = lo-500, hi+500
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

// renderEmpty draws a titled plot with no data.
func renderEmpty(w io.Writer, title string, provider chart.RendererProvider, opts Options) error {
	window := models.PayloadRange{Low: 0, High: 1}
	c := chart.Chart{
		Title:      title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      emptyXAxis(),
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
			Ticks: []chart.Tick{{Value: 0, Label: ""}, {Value: 1, Label: ""}},
		},
		Series: []chart.Series{anchorSeries(window)},
	}
	if err := c.Render(provider, w); err != nil {
		return fmt.Errorf("render: empty %q: %w", title, err)
	}
	return nil
}

// Describe returns a one-line text rendering of fig, used for logs and the
// page's alt text.
func Describe(fig *models.Figure) string {
	if fig.Empty() {
		return fig.Title + ": no data"
	}
	switch fig.Kind {
	case models.ChartPie:
		out := fig.Title + ":"
		for _, s := range fig.Slices {
			out += " " + s.Label + "=" + strconv.FormatFloat(s.Value, 'f', -1, 64)
		}
		return out
	default:
		return fig.Title + ": " + strconv.Itoa(fig.PointCount()) + " launches"
	}
}
