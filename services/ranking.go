package services

import (
	"fmt"
	"sort"

	"housing-advantage/metrics"
	"housing-advantage/models"
	"housing-advantage/utils"
)

// HomeValueYears spreads a home's value over a fixed term to get an
// annual housing cost comparable with a salary.
const HomeValueYears = 30

// Ranker scores states by how far a salary outruns housing cost.
type Ranker struct {
	logger  *utils.Logger
	metrics *metrics.Metrics
}

func NewRanker(logger *utils.Logger, m *metrics.Metrics) *Ranker {
	return &Ranker{logger: logger, metrics: m}
}

// RankStates returns up to topN housing states ordered by advantage score,
// highest first, ties by state code. A state with no salary rows for title
// keeps a mean salary of 0 and simply scores low. Both tables are only read.
func (r *Ranker) RankStates(
	title string,
	topN int,
	housing *models.GroupedTable[models.Valuation],
	salaries *models.GroupedTable[models.Salary],
) ([]models.StateAggregate, error) {
	aggregates := make([]models.StateAggregate, 0, housing.Len())

	for _, state := range housing.Keys() {
		homes, _ := housing.Group(state)
		homeMean, err := mean(homes, func(v models.Valuation) float64 { return v.MeanValue })
		if err != nil {
			return nil, fmt.Errorf("rank: home value for %s: %w", state, err)
		}

		salaryMean, err := titleSalaryMean(salaries, state, title)
		if err != nil {
			return nil, fmt.Errorf("rank: salary for %s: %w", state, err)
		}

		aggregates = append(aggregates, models.StateAggregate{
			State:         state,
			MeanSalary:    salaryMean,
			MeanHomeValue: homeMean,
			Score:         AdvantageScore(salaryMean, homeMean),
		})
	}

	sort.Slice(aggregates, func(i, j int) bool {
		if aggregates[i].Score != aggregates[j].Score {
			return aggregates[i].Score > aggregates[j].Score
		}
		return aggregates[i].State < aggregates[j].State
	})

	if topN < 0 {
		topN = 0
	}
	if len(aggregates) > topN {
		aggregates = aggregates[:topN]
	}

	if r.metrics != nil {
		r.metrics.IncRankQueries()
	}
	r.logger.Debug("[rank] %q: scored %d states, returning %d", title, housing.Len(), len(aggregates))
	return aggregates, nil
}

// AdvantageScore is the mean salary minus the home value spread over
// HomeValueYears.
func AdvantageScore(meanSalary, meanHomeValue float64) float64 {
	return meanSalary - meanHomeValue/HomeValueYears
}

// titleSalaryMean averages the salaries in state whose title equals title
// exactly. No matching rows gives 0.
func titleSalaryMean(salaries *models.GroupedTable[models.Salary], state, title string) (float64, error) {
	group, ok := salaries.Group(state)
	if !ok {
		return 0, nil
	}

	var matched []models.Salary
	for _, s := range group {
		if s.OccupationTitle == title {
			matched = append(matched, s)
		}
	}
	if len(matched) == 0 {
		return 0, nil
	}
	return mean(matched, func(s models.Salary) float64 { return s.MeanAnnualSalary })
}

// mean averages value over records and fails with models.ErrEmptyGroup
// when there are none.
func mean[T any](records []T, value func(T) float64) (float64, error) {
	if len(records) == 0 {
		return 0, models.ErrEmptyGroup
	}
	var total float64
	for _, rec := range records {
		total += value(rec)
	}
	return total / float64(len(records)), nil
}
