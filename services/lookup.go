package services

import (
	"sort"
	"strings"

	"housing-advantage/models"
)

// FindTitles returns the distinct occupation titles across all states that
// start with keyword, in ascending order. The match is case-sensitive and
// an empty keyword matches every title.
func FindTitles(salaries *models.GroupedTable[models.Salary], keyword string) []string {
	seen := make(map[string]struct{})
	for _, state := range salaries.Keys() {
		group, _ := salaries.Group(state)
		for _, s := range group {
			if strings.HasPrefix(s.OccupationTitle, keyword) {
				seen[s.OccupationTitle] = struct{}{}
			}
		}
	}

	titles := make([]string, 0, len(seen))
	for t := range seen {
		titles = append(titles, t)
	}
	sort.Strings(titles)
	return titles
}

// CheapestRegions returns up to n valuations from the front of state's
// group. The table must already be sorted ascending.
func CheapestRegions(sorted *models.GroupedTable[models.Valuation], state string, n int) []models.Valuation {
	group, ok := sorted.Group(state)
	if !ok || n <= 0 {
		return nil
	}
	if n > len(group) {
		n = len(group)
	}
	return append([]models.Valuation(nil), group[:n]...)
}
