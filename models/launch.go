package models

// RawLaunch holds one CSV row exactly as read, before parsing or validation.
type RawLaunch struct {
	Row                    int // 1-based data row, header excluded
	FlightNumber           string
	LaunchSite             string
	PayloadMass            string
	Class                  string
	BoosterVersion         string
	BoosterVersionCategory string
}

// LaunchRecord is one cleaned row of the launch table. Records are never
// modified after the dataset is built.
type LaunchRecord struct {
	FlightNumber           int     `json:"flight_number,omitempty" db:"flight_number"`
	LaunchSite             string  `json:"launch_site" db:"launch_site"`
	PayloadMassKg          float64 `json:"payload_mass_kg" db:"payload_mass_kg"`
	Class                  int     `json:"class" db:"class"`
	BoosterVersion         string  `json:"booster_version,omitempty" db:"booster_version"`
	BoosterVersionCategory string  `json:"booster_version_category" db:"booster_version_category"`
}

// Succeeded reports whether the outcome class is 1.
func (r *LaunchRecord) Succeeded() bool {
	return r.Class == 1
}

// PayloadRange is a closed payload interval in kilograms.
type PayloadRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports whether mass lies in [Low, High]. A range with Low > High
// contains nothing.
func (p PayloadRange) Contains(mass float64) bool {
	return p.Low <= mass && mass <= p.High
}

// LaunchSummary holds the computed analytics over the launch table.
type LaunchSummary struct {
	TotalLaunches     int            `json:"total_launches"`
	Successes         int            `json:"successes"`
	SuccessRate       float64        `json:"success_rate"`
	MinPayloadKg      float64        `json:"min_payload_kg"`
	MaxPayloadKg      float64        `json:"max_payload_kg"`
	AveragePayloadKg  float64        `json:"average_payload_kg"`
	LaunchesBySite    map[string]int `json:"launches_by_site"`
	SuccessesBySite   map[string]int `json:"successes_by_site"`
	BoosterCategories []string       `json:"booster_categories"`
}
