package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"housing-advantage/models"
	"housing-advantage/utils"
)

const (
	housingTable = "housing_values"
	salaryTable  = "job_salaries"
)

// PostgresLoader reads both datasets from PostgreSQL. Numeric columns are
// stored as TEXT so they go through the same digit rule as the CSV files.
type PostgresLoader struct {
	db     *sql.DB
	logger *utils.Logger
}

// NewPostgresLoader opens a connection, retrying the ping with back-off,
// and makes sure both tables exist.
func NewPostgresLoader(dsn string, attempts int, logger *utils.Logger) (*PostgresLoader, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	retry := &utils.RetryConfig{MaxAttempts: attempts, BaseDelay: time.Second, Logger: logger}
	if err := retry.Do("postgres ping", db.Ping); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	pl := &PostgresLoader{db: db, logger: logger}
	if err := pl.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}
	return pl, nil
}

func (pl *PostgresLoader) migrate() error {
	_, err := pl.db.Exec(`
		CREATE TABLE IF NOT EXISTS housing_values (
			id          SERIAL PRIMARY KEY,
			region_id   TEXT NOT NULL DEFAULT '',
			state       TEXT NOT NULL DEFAULT '',
			city        TEXT NOT NULL DEFAULT '',
			county_name TEXT NOT NULL DEFAULT '',
			mean_value  TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS job_salaries (
			id         SERIAL PRIMARY KEY,
			area       TEXT NOT NULL DEFAULT '',
			prim_state TEXT NOT NULL DEFAULT '',
			occ_title  TEXT NOT NULL DEFAULT '',
			tot_emp    TEXT NOT NULL DEFAULT '',
			a_mean     TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_housing_values_state ON housing_values(state);
		CREATE INDEX IF NOT EXISTS idx_job_salaries_state   ON job_salaries(prim_state);
	`)
	return err
}

// LoadHousing reads every housing row in insertion order.
func (pl *PostgresLoader) LoadHousing() (*models.GroupedTable[models.Valuation], error) {
	table := models.NewGroupedTable[models.Valuation]()
	n, err := pl.scanAll(housingTable, housingColumns, func(f []string) {
		table.Add(valuationFromFields(f))
	})
	if err != nil {
		return nil, err
	}
	pl.logger.Info("[postgres] Loaded %d housing rows across %d states", n, table.Len())
	return table, nil
}

// LoadSalaries reads every salary row in insertion order.
func (pl *PostgresLoader) LoadSalaries() (*models.GroupedTable[models.Salary], error) {
	table := models.NewGroupedTable[models.Salary]()
	n, err := pl.scanAll(salaryTable, salaryColumns, func(f []string) {
		table.Add(salaryFromFields(f))
	})
	if err != nil {
		return nil, err
	}
	pl.logger.Info("[postgres] Loaded %d salary rows across %d states", n, table.Len())
	return table, nil
}

func (pl *PostgresLoader) Close() error {
	return pl.db.Close()
}

func (pl *PostgresLoader) scanAll(table string, columns []string, add func([]string)) (int, error) {
	rows, err := pl.db.Query(selectQuery(table, columns))
	if err != nil {
		return 0, fmt.Errorf("postgres: query %s: %w", table, err)
	}
	defer rows.Close()

	fields := make([]string, len(columns))
	dest := make([]any, len(columns))
	for i := range fields {
		dest[i] = &fields[i]
	}

	n := 0
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return n, fmt.Errorf("postgres: scan %s row: %w", table, err)
		}
		add(append([]string(nil), fields...))
		n++
	}
	return n, rows.Err()
}

func selectQuery(table string, columns []string) string {
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY id", strings.Join(columns, ", "), table)
}
