package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"spacex-dashboard/models"
)

// CSVWriter writes launch records in the dataset's own column layout, so an
// export can be loaded back as a dataset.
type CSVWriter struct {
	writer *csv.Writer
}

// NewCSVWriter wraps w and writes the header row.
func NewCSVWriter(w io.Writer) (*CSVWriter, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		ColFlightNumber, ColLaunchSite, ColClass, ColPayloadMass, ColBoosterVersion, ColBoosterVersionCategory,
	}); err != nil {
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	return &CSVWriter{writer: cw}, nil
}

// Write appends records and flushes.
func (c *CSVWriter) Write(records []*models.LaunchRecord) error {
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.FlightNumber),
			r.LaunchSite,
			strconv.Itoa(r.Class),
			strconv.FormatFloat(r.PayloadMassKg, 'f', -1, 64),
			r.BoosterVersion,
			r.BoosterVersionCategory,
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}
