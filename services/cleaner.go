package services

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"spacex-dashboard/models"
	"spacex-dashboard/storage"
	"spacex-dashboard/utils"
)

// RowError reports a malformed value in the launch table.
type RowError struct {
	Row    int
	Column string
	Value  string
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d, column %q: %s (value %q)", e.Row, e.Column, e.Reason, e.Value)
}

// Cleaner transforms RawLaunches into validated LaunchRecords.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean parses every raw row. The first malformed value aborts cleaning:
// the table is either loaded whole or not at all.
func (c *Cleaner) Clean(raw []*models.RawLaunch) ([]*models.LaunchRecord, error) {
	result := make([]*models.LaunchRecord, 0, len(raw))

	for _, r := range raw {
		record, err := c.cleanRow(r)
		if err != nil {
			return nil, err
		}
		result = append(result, record)
	}

	c.logger.Info("[cleaner] Cleaned %d launch records", len(result))
	return result, nil
}

func (c *Cleaner) cleanRow(r *models.RawLaunch) (*models.LaunchRecord, error) {
	site := normaliseText(r.LaunchSite)
	if site == "" {
		return nil, &RowError{Row: r.Row, Column: storage.ColLaunchSite, Value: r.LaunchSite, Reason: "empty launch site"}
	}

	payload, err := parsePayload(r.PayloadMass)
	if err != nil {
		return nil, &RowError{Row: r.Row, Column: storage.ColPayloadMass, Value: r.PayloadMass, Reason: err.Error()}
	}

	class, err := parseClass(r.Class)
	if err != nil {
		return nil, &RowError{Row: r.Row, Column: storage.ColClass, Value: r.Class, Reason: err.Error()}
	}

	flight := 0
	if s := strings.TrimSpace(r.FlightNumber); s != "" {
		flight, err = strconv.Atoi(s)
		if err != nil {
			return nil, &RowError{Row: r.Row, Column: storage.ColFlightNumber, Value: r.FlightNumber, Reason: "not an integer"}
		}
	}

	category := normaliseText(r.BoosterVersionCategory)
	if category == "" {
		c.logger.Debug("[cleaner] Row %d has no booster version category", r.Row)
	}

	return &models.LaunchRecord{
		FlightNumber:           flight,
		LaunchSite:             site,
		PayloadMassKg:          payload,
		Class:                  class,
		BoosterVersion:         normaliseText(r.BoosterVersion),
		BoosterVersionCategory: category,
	}, nil
}

// groupedNumber matches a number with comma thousands separators.
var groupedNumber = regexp.MustCompile(`^\d{1,3}(,\d{3})+(\.\d+)?$`)

// parsePayload reads a non-negative mass in kilograms. Commas are accepted
// only as thousands separators.
func parsePayload(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, errors.New("empty payload mass")
	}
	if strings.Contains(s, ",") {
		if !groupedNumber.MatchString(s) {
			return 0, errors.New("misplaced thousands separator")
		}
		s = strings.ReplaceAll(s, ",", "")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("not a number")
	}
	if v < 0 {
		return 0, errors.New("negative payload mass")
	}
	return v, nil
}

// parseClass reads the binary outcome. "1.0" style floats from spreadsheet
// exports are accepted.
func parseClass(raw string) (int, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, errors.New("not a number")
	}
	switch v {
	case 0:
		return 0, nil
	case 1:
		return 1, nil
	}
	return 0, errors.New("class must be 0 or 1")
}

// normaliseText strips leading/trailing whitespace and collapses internal whitespace.
func normaliseText(s string) string {
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	return strings.Join(fields, " ")
}
