package dashboard

import (
	"spacex-dashboard/models"
	"spacex-dashboard/services"
)

// RegisterCharts binds the pie chart to the site dropdown and the scatter
// chart to the dropdown and the payload slider.
func RegisterCharts(rt *Runtime, charts *services.ChartService) error {
	err := rt.Register(models.SuccessPieID, []string{models.SiteDropdownID}, func(in Inputs) (*models.Figure, error) {
		site, err := in.String(models.SiteDropdownID)
		if err != nil {
			return nil, err
		}
		return charts.PieChart(site), nil
	})
	if err != nil {
		return err
	}

	return rt.Register(models.PayloadScatterID, []string{models.SiteDropdownID, models.PayloadSliderID}, func(in Inputs) (*models.Figure, error) {
		site, err := in.String(models.SiteDropdownID)
		if err != nil {
			return nil, err
		}
		payload, err := in.Range(models.PayloadSliderID)
		if err != nil {
			return nil, err
		}
		return charts.ScatterChart(site, payload), nil
	})
}
