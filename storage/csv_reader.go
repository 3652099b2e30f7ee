package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"spacex-dashboard/models"
)

// Column headers of the launch dataset.
const (
	ColFlightNumber           = "Flight Number"
	ColLaunchSite             = "Launch Site"
	ColPayloadMass            = "Payload Mass (kg)"
	ColClass                  = "class"
	ColBoosterVersion         = "Booster Version"
	ColBoosterVersionCategory = "Booster Version Category"
)

var requiredColumns = []string{ColLaunchSite, ColPayloadMass, ColClass, ColBoosterVersionCategory}

// ErrMissingColumn is returned when the header lacks a required column.
var ErrMissingColumn = errors.New("csv: missing required column")

// CSVReader reads the raw launch table from a CSV file.
type CSVReader struct {
	path string
}

// NewCSVReader returns a reader for the CSV file at path.
func NewCSVReader(path string) *CSVReader {
	return &CSVReader{path: path}
}

// ReadRaw opens the file and returns every data row unparsed.
func (c *CSVReader) ReadRaw() ([]*models.RawLaunch, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", c.path, err)
	}
	defer f.Close()

	return ParseRaw(f)
}

// ParseRaw reads a launch table from r. Columns are located by header name,
// so their order and any extra columns do not matter.
func ParseRaw(r io.Reader) ([]*models.RawLaunch, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("csv: read header: empty file")
		}
		return nil, fmt.Errorf("csv: read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		// Spreadsheet exports often lead with a UTF-8 BOM.
		name = strings.TrimPrefix(name, "\ufeff")
		index[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, col)
		}
	}

	field := func(record []string, col string) string {
		i, ok := index[col]
		if !ok {
			return ""
		}
		return record[i]
	}

	var rows []*models.RawLaunch
	for n := 1; ; n++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: read row %d: %w", n, err)
		}

		rows = append(rows, &models.RawLaunch{
			Row:                    n,
			FlightNumber:           field(record, ColFlightNumber),
			LaunchSite:             field(record, ColLaunchSite),
			PayloadMass:            field(record, ColPayloadMass),
			Class:                  field(record, ColClass),
			BoosterVersion:         field(record, ColBoosterVersion),
			BoosterVersionCategory: field(record, ColBoosterVersionCategory),
		})
	}
	return rows, nil
}
