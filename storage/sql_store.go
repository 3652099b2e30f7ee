package storage

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"spacex-dashboard/models"
	"spacex-dashboard/utils"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const insertBatchSize = 50

// SQLStore mirrors the launch table into PostgreSQL or SQLite.
type SQLStore struct {
	db     *sqlx.DB
	driver string
}

// NewSQLStore connects with the given driver ("postgres" or "sqlite"),
// retrying the initial ping, applies migrations and returns a ready store.
func NewSQLStore(ctx context.Context, driver, dsn string, retry *utils.RetryConfig) (*SQLStore, error) {
	sqlDriver, dialect, err := resolveDriver(driver)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}
	if sqlDriver == "sqlite" {
		db.SetMaxOpenConns(1)
	}

	if retry == nil {
		retry = &utils.RetryConfig{MaxAttempts: 1}
	}
	err = retry.Do(ctx, "store-ping", func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return db.PingContext(pingCtx)
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	if err := migrate(db, dialect); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migrate: %w", err)
	}

	return &SQLStore{db: db, driver: sqlDriver}, nil
}

func resolveDriver(driver string) (sqlDriver string, dialect goose.Dialect, err error) {
	switch strings.ToLower(driver) {
	case "postgres", "postgresql":
		return "postgres", goose.DialectPostgres, nil
	case "sqlite", "sqlite3":
		return "sqlite", goose.DialectSQLite3, nil
	}
	return "", "", fmt.Errorf("store: unsupported driver %q", driver)
}

func migrate(db *sqlx.DB, dialect goose.Dialect) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("setting dialect: %w", err)
	}
	return goose.Up(db.DB, "migrations")
}

// Clear deletes all existing launches from the table.
func (s *SQLStore) Clear() error {
	if _, err := s.db.Exec("DELETE FROM launches"); err != nil {
		return fmt.Errorf("store: clear: %w", err)
	}
	return nil
}

// Write replaces the stored table with records, keeping their order.
func (s *SQLStore) Write(records []*models.LaunchRecord) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM launches"); err != nil {
		return fmt.Errorf("store: clear: %w", err)
	}

	for i := 0; i < len(records); i += insertBatchSize {
		end := i + insertBatchSize
		if end > len(records) {
			end = len(records)
		}
		query, args := buildInsert(i, records[i:end])
		if _, err := tx.Exec(tx.Rebind(query), args...); err != nil {
			return fmt.Errorf("store: insert batch at %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}
	return nil
}

// buildInsert returns a multi-row INSERT with '?' placeholders. offset is the
// position of the first record in the full table.
func buildInsert(offset int, batch []*models.LaunchRecord) (string, []any) {
	const columns = 7
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]any, 0, len(batch)*columns)

	for i, r := range batch {
		valueStrings = append(valueStrings, "(?,?,?,?,?,?,?)")
		valueArgs = append(valueArgs,
			offset+i, r.FlightNumber, r.LaunchSite, r.PayloadMassKg,
			r.Class, r.BoosterVersion, r.BoosterVersionCategory)
	}

	query := `INSERT INTO launches (row_index, flight_number, launch_site, payload_mass_kg, class, booster_version, booster_version_category) VALUES ` +
		strings.Join(valueStrings, ",")
	return query, valueArgs
}

// FetchAll retrieves all stored launches in their original table order.
func (s *SQLStore) FetchAll() ([]*models.LaunchRecord, error) {
	var records []*models.LaunchRecord
	err := s.db.Select(&records, `
		SELECT flight_number, launch_site, payload_mass_kg, class, booster_version, booster_version_category
		FROM launches
		ORDER BY row_index
	`)
	if err != nil {
		return nil, fmt.Errorf("store: fetch all: %w", err)
	}
	return records, nil
}

// Driver returns the database/sql driver name in use.
func (s *SQLStore) Driver() string {
	return s.driver
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
