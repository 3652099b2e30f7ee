package services

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"spacex-dashboard/models"
	"spacex-dashboard/utils"
)

// SummaryService computes headline statistics over the launch table.
type SummaryService struct {
	logger *utils.Logger
}

func NewSummaryService(logger *utils.Logger) *SummaryService {
	return &SummaryService{logger: logger}
}

func (s *SummaryService) Generate(ds *Dataset) *models.LaunchSummary {
	report := &models.LaunchSummary{
		LaunchesBySite:    make(map[string]int),
		SuccessesBySite:   make(map[string]int),
		BoosterCategories: ds.BoosterCategories(),
	}

	bounds := ds.PayloadBounds()
	report.MinPayloadKg = bounds.Low
	report.MaxPayloadKg = bounds.High

	var totalPayload float64
	ds.each(AllSites, func(r *models.LaunchRecord) {
		report.TotalLaunches++
		report.LaunchesBySite[r.LaunchSite]++
		totalPayload += r.PayloadMassKg
		if r.Succeeded() {
			report.Successes++
			report.SuccessesBySite[r.LaunchSite]++
		}
	})

	if report.TotalLaunches > 0 {
		report.AveragePayloadKg = round2(totalPayload / float64(report.TotalLaunches))
		report.SuccessRate = round2(float64(report.Successes) / float64(report.TotalLaunches))
	}

	s.logger.Debug("[summary] %d launches, %d successes", report.TotalLaunches, report.Successes)
	return report
}

// Print writes a human-readable report to w.
func (s *SummaryService) Print(w io.Writer, r *models.LaunchSummary) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)
	banner := color.New(color.FgMagenta, color.Bold)
	heading := color.New(color.FgYellow, color.Bold)
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen, color.Bold)

	fmt.Fprintf(w, "\n%s\n", banner.Sprint(sep))
	fmt.Fprintf(w, "%s\n", banner.Sprint("  SPACEX LAUNCH RECORDS"))
	fmt.Fprintf(w, "%s\n\n", banner.Sprint(sep))

	fmt.Fprintf(w, "%s\n", heading.Sprint("  Overview"))
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Total launches : %s\n", bold.Sprint(r.TotalLaunches))
	fmt.Fprintf(w, "  Successes      : %s\n", bold.Sprint(r.Successes))
	fmt.Fprintf(w, "  Success rate   : %s\n", green.Sprintf("%.0f%%", r.SuccessRate*100))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s\n", heading.Sprint("  Payload Mass (kg)"))
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Minimum : %s\n", green.Sprintf("%.2f", r.MinPayloadKg))
	fmt.Fprintf(w, "  Maximum : %s\n", green.Sprintf("%.2f", r.MaxPayloadKg))
	fmt.Fprintf(w, "  Average : %s\n", green.Sprintf("%.2f", r.AveragePayloadKg))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s\n", heading.Sprint("  Successes by Launch Site"))
	fmt.Fprintf(w, "  %s\n", thin)
	type siteCount struct {
		site      string
		launches  int
		successes int
	}
	var sites []siteCount
	for site, n := range r.LaunchesBySite {
		sites = append(sites, siteCount{site, n, r.SuccessesBySite[site]})
	}
	sort.Slice(sites, func(i, j int) bool {
		if sites[i].successes != sites[j].successes {
			return sites[i].successes > sites[j].successes
		}
		return sites[i].site < sites[j].site
	})
	for _, sc := range sites {
		bar := strings.Repeat("█", sc.successes)
		fmt.Fprintf(w, "  %-16s %s (%d/%d)\n", truncate(sc.site, 16), bar, sc.successes, sc.launches)
	}

	if len(r.BoosterCategories) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s\n", heading.Sprint("  Booster Version Categories"))
		fmt.Fprintf(w, "  %s\n", thin)
		fmt.Fprintf(w, "  %s\n", strings.Join(r.BoosterCategories, ", "))
	}

	fmt.Fprintf(w, "\n%s\n\n", banner.Sprint(sep))
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
