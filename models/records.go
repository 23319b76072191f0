package models

import (
	"cmp"
	"strings"
)

// Record is the capability every sortable row must provide: the partition
// key it is grouped by and a total order over its own type.
type Record[T any] interface {
	StateKey() string
	Compare(other T) int
}

// Valuation is one region's mean home value, read from the housing dataset.
type Valuation struct {
	RegionID  string
	State     string
	City      string
	County    string
	MeanValue float64
}

func (v Valuation) StateKey() string { return v.State }

// Compare orders valuations by MeanValue. Equal values fall back to the
// identifying text fields so distinct rows never compare equal.
func (v Valuation) Compare(other Valuation) int {
	if c := cmp.Compare(v.MeanValue, other.MeanValue); c != 0 {
		return c
	}
	if c := strings.Compare(v.RegionID, other.RegionID); c != 0 {
		return c
	}
	if c := strings.Compare(v.City, other.City); c != 0 {
		return c
	}
	return strings.Compare(v.County, other.County)
}

// Salary is one occupation's pay statistics for an area.
type Salary struct {
	Area             string
	State            string
	OccupationTitle  string
	TotalEmployment  float64
	MeanAnnualSalary float64
}

func (s Salary) StateKey() string { return s.State }

// Compare orders salaries by MeanAnnualSalary, then by title, area and
// employment.
func (s Salary) Compare(other Salary) int {
	if c := cmp.Compare(s.MeanAnnualSalary, other.MeanAnnualSalary); c != 0 {
		return c
	}
	if c := strings.Compare(s.OccupationTitle, other.OccupationTitle); c != 0 {
		return c
	}
	if c := strings.Compare(s.Area, other.Area); c != 0 {
		return c
	}
	return cmp.Compare(s.TotalEmployment, other.TotalEmployment)
}

// StateAggregate holds the per-state figures behind one ranking entry.
// It is computed per query and never stored.
type StateAggregate struct {
	State         string  `yaml:"state"`
	MeanSalary    float64 `yaml:"mean_salary"`
	MeanHomeValue float64 `yaml:"mean_home_value"`
	Score         float64 `yaml:"advantage_score"`
}
