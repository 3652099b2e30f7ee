package services

import (
	"sort"
	"strconv"

	"spacex-dashboard/models"
	"spacex-dashboard/utils"
)

const (
	pieTitleAll       = "Total Success Launches By Site"
	pieTitleSite      = "Total Success Launches for site "
	scatterTitleAll   = "Correlation between Payload and Success for all Sites"
	scatterTitleSite  = "Correlation between Payload and Success for site "
	scatterXAxisTitle = "Payload Mass (kg)"
	scatterYAxisTitle = "class"
)

// ChartService turns a site / payload selection into chart figures. Both
// handlers are pure functions of the dataset and their arguments.
type ChartService struct {
	dataset *Dataset
	logger  *utils.Logger
}

// NewChartService creates a ChartService over ds.
func NewChartService(ds *Dataset, logger *utils.Logger) *ChartService {
	return &ChartService{dataset: ds, logger: logger}
}

// PieChart returns the success pie for site. For AllSites there is one slice
// per site sized by its success count; for a single site there is one slice
// per outcome class present, sized by its launch count. A site with no rows
// yields an empty pie.
func (s *ChartService) PieChart(site string) *models.Figure {
	if site == AllSites {
		return s.pieAllSites()
	}

	counts := make(map[int]int)
	s.dataset.each(site, func(r *models.LaunchRecord) {
		counts[r.Class]++
	})

	classes := make([]int, 0, len(counts))
	for class := range counts {
		classes = append(classes, class)
	}
	sort.Ints(classes)

	fig := &models.Figure{Kind: models.ChartPie, Title: pieTitleSite + site}
	for _, class := range classes {
		fig.Slices = append(fig.Slices, models.PieSlice{
			Label: strconv.Itoa(class),
			Value: float64(counts[class]),
		})
	}

	if len(fig.Slices) == 0 {
		s.logger.Debug("[charts] No launches for site %q", site)
	}
	return fig
}

func (s *ChartService) pieAllSites() *models.Figure {
	successes := make(map[string]int)
	s.dataset.each(AllSites, func(r *models.LaunchRecord) {
		successes[r.LaunchSite] += r.Class
	})

	fig := &models.Figure{Kind: models.ChartPie, Title: pieTitleAll}
	for _, site := range s.dataset.sites {
		fig.Slices = append(fig.Slices, models.PieSlice{
			Label: site,
			Value: float64(successes[site]),
		})
	}
	return fig
}

// ScatterChart returns payload against outcome for launches whose payload lies
// in payload (inclusive), restricted to site unless it is AllSites. Points are
// grouped into one series per booster version category. No matching launch
// yields an empty figure.
func (s *ChartService) ScatterChart(site string, payload models.PayloadRange) *models.Figure {
	title := scatterTitleAll
	if site != AllSites {
		title = scatterTitleSite + site
	}

	byCategory := make(map[string][]models.ScatterPoint)
	s.dataset.each(site, func(r *models.LaunchRecord) {
		if !payload.Contains(r.PayloadMassKg) {
			return
		}
		byCategory[r.BoosterVersionCategory] = append(byCategory[r.BoosterVersionCategory], models.ScatterPoint{
			X:    r.PayloadMassKg,
			Y:    float64(r.Class),
			Site: r.LaunchSite,
		})
	})

	window := payload
	fig := &models.Figure{
		Kind:   models.ChartScatter,
		Title:  title,
		XTitle: scatterXAxisTitle,
		YTitle: scatterYAxisTitle,
		XRange: &window,
	}
	for _, category := range s.dataset.categories {
		points, ok := byCategory[category]
		if !ok {
			continue
		}
		fig.Series = append(fig.Series, models.ScatterSeries{Name: category, Points: points})
	}

	s.logger.Debug("[charts] Scatter site=%q payload=[%g, %g] points=%d",
		site, payload.Low, payload.High, fig.PointCount())
	return fig
}

// Filter returns the launches the scatter chart plots for the same selection.
func (s *ChartService) Filter(site string, payload models.PayloadRange) []*models.LaunchRecord {
	var out []*models.LaunchRecord
	s.dataset.each(site, func(r *models.LaunchRecord) {
		if payload.Contains(r.PayloadMassKg) {
			rec := *r
			out = append(out, &rec)
		}
	})
	return out
}
