package storage

import "spacex-dashboard/models"

// RawLaunchReader is the interface for sources of the unparsed launch table.
type RawLaunchReader interface {
	ReadRaw() ([]*models.RawLaunch, error)
}

// LaunchStore is the interface any SQL mirror of the launch table must satisfy.
type LaunchStore interface {
	Write(records []*models.LaunchRecord) error
	FetchAll() ([]*models.LaunchRecord, error)
	Close() error
}

var (
	_ RawLaunchReader = (*CSVReader)(nil)
	_ LaunchStore     = (*SQLStore)(nil)
)
