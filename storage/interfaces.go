package storage

import "housing-advantage/models"

// DatasetLoader is the interface any input backend must satisfy. Each
// call materialises a fresh table owned by the caller.
type DatasetLoader interface {
	LoadHousing() (*models.GroupedTable[models.Valuation], error)
	LoadSalaries() (*models.GroupedTable[models.Salary], error)
	Close() error
}

// ReportWriter is the interface for exporting a ranking.
type ReportWriter interface {
	WriteRanking(title string, ranking []models.StateAggregate) error
	Close() error
}
