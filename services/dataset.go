package services

import (
	"errors"
	"sort"

	"spacex-dashboard/models"
)

// AllSites is the dropdown value meaning "do not filter by site".
const AllSites = "ALL"

// ErrEmptyDataset is returned when a dataset would hold no launches.
var ErrEmptyDataset = errors.New("dataset: no launch records")

// Dataset is the immutable, process-wide launch table together with the
// values derived from it once at load time. It is safe for concurrent reads.
type Dataset struct {
	records    []models.LaunchRecord
	sites      []string
	categories []string
	payload    models.PayloadRange
}

// NewDataset copies records into a new Dataset.
func NewDataset(records []*models.LaunchRecord) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	ds := &Dataset{
		records: make([]models.LaunchRecord, len(records)),
		payload: models.PayloadRange{Low: records[0].PayloadMassKg, High: records[0].PayloadMassKg},
	}

	seenSite := make(map[string]struct{})
	seenCategory := make(map[string]struct{})
	for i, r := range records {
		ds.records[i] = *r

		if r.PayloadMassKg < ds.payload.Low {
			ds.payload.Low = r.PayloadMassKg
		}
		if r.PayloadMassKg > ds.payload.High {
			ds.payload.High = r.PayloadMassKg
		}
		if _, ok := seenSite[r.LaunchSite]; !ok {
			seenSite[r.LaunchSite] = struct{}{}
			ds.sites = append(ds.sites, r.LaunchSite)
		}
		if _, ok := seenCategory[r.BoosterVersionCategory]; !ok {
			seenCategory[r.BoosterVersionCategory] = struct{}{}
			ds.categories = append(ds.categories, r.BoosterVersionCategory)
		}
	}

	// Grouping by site yields the sites in lexical order.
	sort.Strings(ds.sites)
	return ds, nil
}

// Len returns the number of launches.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns a copy of the table in load order.
func (d *Dataset) Records() []*models.LaunchRecord {
	out := make([]*models.LaunchRecord, len(d.records))
	for i := range d.records {
		r := d.records[i]
		out[i] = &r
	}
	return out
}

// Sites returns the distinct launch sites in lexical order.
func (d *Dataset) Sites() []string {
	return append([]string(nil), d.sites...)
}

// HasSite reports whether site occurs in the table.
func (d *Dataset) HasSite(site string) bool {
	i := sort.SearchStrings(d.sites, site)
	return i < len(d.sites) && d.sites[i] == site
}

// BoosterCategories returns the distinct booster version categories in
// first-seen order.
func (d *Dataset) BoosterCategories() []string {
	return append([]string(nil), d.categories...)
}

// PayloadBounds returns the observed minimum and maximum payload mass.
func (d *Dataset) PayloadBounds() models.PayloadRange {
	return d.payload
}

// each calls fn for every record matching site (or every record for
// AllSites). fn must not retain r.
func (d *Dataset) each(site string, fn func(r *models.LaunchRecord)) {
	for i := range d.records {
		r := &d.records[i]
		if site != AllSites && r.LaunchSite != site {
			continue
		}
		fn(r)
	}
}
