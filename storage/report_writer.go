package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"housing-advantage/models"
)

// NewReportWriter creates (or truncates) the file at path and returns a
// writer for format, either "csv" or "yaml". Intermediate directories are
// created automatically.
func NewReportWriter(path, format string) (ReportWriter, error) {
	if format != "csv" && format != "yaml" {
		return nil, fmt.Errorf("report: %w: %q", models.ErrUnknownFormat, format)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("report: create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("report: create file %q: %w", path, err)
	}

	if format == "yaml" {
		return &YAMLReportWriter{file: f}, nil
	}
	return &CSVReportWriter{file: f, writer: csv.NewWriter(f)}, nil
}

// CSVReportWriter writes one row per ranked state.
type CSVReportWriter struct {
	file   io.WriteCloser
	writer *csv.Writer
}

// WriteRanking writes the header and the ranking rows.
func (c *CSVReportWriter) WriteRanking(title string, ranking []models.StateAggregate) error {
	if err := c.writer.Write([]string{
		"rank", "occupation_title", "state", "mean_salary", "mean_home_value", "advantage_score",
	}); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}

	for i, a := range ranking {
		row := []string{
			strconv.Itoa(i + 1),
			title,
			a.State,
			formatFloat(a.MeanSalary),
			formatFloat(a.MeanHomeValue),
			formatFloat(a.Score),
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("report: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

func (c *CSVReportWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}

// YAMLReportWriter writes the ranking as a single YAML document.
type YAMLReportWriter struct {
	file io.WriteCloser
}

type yamlReport struct {
	OccupationTitle string                  `yaml:"occupation_title"`
	States          []models.StateAggregate `yaml:"states"`
}

func (y *YAMLReportWriter) WriteRanking(title string, ranking []models.StateAggregate) error {
	enc := yaml.NewEncoder(y.file)
	enc.SetIndent(2)
	if err := enc.Encode(yamlReport{OccupationTitle: title, States: ranking}); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}
	return enc.Close()
}

func (y *YAMLReportWriter) Close() error {
	return y.file.Close()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
