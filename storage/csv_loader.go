package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"housing-advantage/models"
	"housing-advantage/utils"
)

// CSVLoader reads both datasets from comma-delimited files whose first
// row is a header.
type CSVLoader struct {
	housingPath string
	salaryPath  string
	logger      *utils.Logger
}

// NewCSVLoader checks that both files can be opened and returns a loader
// for them. Failure wraps models.ErrFileOpen.
func NewCSVLoader(housingPath, salaryPath string, logger *utils.Logger) (*CSVLoader, error) {
	for _, p := range []string{housingPath, salaryPath} {
		f, err := os.Open(p)
		if err != nil {
			return nil, fmt.Errorf("csv: %w %q: %v", models.ErrFileOpen, p, err)
		}
		_ = f.Close()
	}
	return &CSVLoader{housingPath: housingPath, salaryPath: salaryPath, logger: logger}, nil
}

// LoadHousing reads the housing file into a table keyed by state.
func (l *CSVLoader) LoadHousing() (*models.GroupedTable[models.Valuation], error) {
	table := models.NewGroupedTable[models.Valuation]()
	n, err := l.readFile(l.housingPath, func(rec []string) {
		table.Add(valuationFromFields(rec))
	})
	if err != nil {
		return nil, err
	}
	l.logger.Info("[csv] Loaded %d housing rows across %d states from %s", n, table.Len(), l.housingPath)
	return table, nil
}

// LoadSalaries reads the salary file into a table keyed by state.
func (l *CSVLoader) LoadSalaries() (*models.GroupedTable[models.Salary], error) {
	table := models.NewGroupedTable[models.Salary]()
	n, err := l.readFile(l.salaryPath, func(rec []string) {
		table.Add(salaryFromFields(rec))
	})
	if err != nil {
		return nil, err
	}
	l.logger.Info("[csv] Loaded %d salary rows across %d states from %s", n, table.Len(), l.salaryPath)
	return table, nil
}

// Close is a no-op; files are closed after each load.
func (l *CSVLoader) Close() error { return nil }

func (l *CSVLoader) readFile(path string, add func([]string)) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("csv: %w %q: %v", models.ErrFileOpen, path, err)
	}
	defer f.Close()

	n, err := readRows(f, add, l.logger)
	if err != nil {
		return n, fmt.Errorf("csv: read %q: %w", path, err)
	}
	return n, nil
}

// readRows skips the header and hands every remaining record to add.
// Rows the CSV reader cannot parse are logged and skipped.
func readRows(r io.Reader, add func([]string), logger *utils.Logger) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header := true
	n := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				logger.Warn("[csv] Skipping unparsable line %d: %v", perr.Line, perr.Err)
				continue
			}
			return n, err
		}
		if header {
			header = false
			continue
		}
		add(rec)
		n++
	}
}
