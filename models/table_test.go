package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupedTableKeysSorted(t *testing.T) {
	tbl := NewGroupedTable[Valuation]()
	for _, st := range []string{"TX", "CA", "NY", "CA", "AK"} {
		tbl.Add(Valuation{State: st})
	}

	assert.Equal(t, []string{"AK", "CA", "NY", "TX"}, tbl.Keys())
	assert.Equal(t, 4, tbl.Len())
	assert.Equal(t, 5, tbl.Size())
}

func TestGroupedTableKeepsInsertionOrder(t *testing.T) {
	tbl := NewGroupedTable[Valuation]()
	tbl.Add(Valuation{RegionID: "1", State: "CA", MeanValue: 500})
	tbl.Add(Valuation{RegionID: "2", State: "TX", MeanValue: 100})
	tbl.Add(Valuation{RegionID: "3", State: "CA", MeanValue: 300})

	ca, ok := tbl.Group("CA")
	require.True(t, ok)
	require.Len(t, ca, 2)
	assert.Equal(t, "1", ca[0].RegionID)
	assert.Equal(t, "3", ca[1].RegionID)

	for _, key := range tbl.Keys() {
		g, _ := tbl.Group(key)
		for _, v := range g {
			assert.Equal(t, key, v.StateKey())
		}
	}

	_, ok = tbl.Group("ZZ")
	assert.False(t, ok)
}

func TestGroupedTableCloneIsIndependent(t *testing.T) {
	tbl := NewGroupedTable[Salary]()
	tbl.Add(Salary{State: "CA", MeanAnnualSalary: 1})
	tbl.Add(Salary{State: "CA", MeanAnnualSalary: 2})

	clone := tbl.Clone()
	g, _ := clone.Group("CA")
	g[0], g[1] = g[1], g[0]
	clone.Add(Salary{State: "WA"})

	orig, _ := tbl.Group("CA")
	assert.Equal(t, 1.0, orig[0].MeanAnnualSalary)
	assert.Equal(t, []string{"CA"}, tbl.Keys())
	assert.Equal(t, []string{"CA", "WA"}, clone.Keys())
}

func TestValuationCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Valuation
		want int
	}{
		{"lower value first", Valuation{MeanValue: 1}, Valuation{MeanValue: 2}, -1},
		{"higher value last", Valuation{MeanValue: 3}, Valuation{MeanValue: 2}, 1},
		{"tie broken by region", Valuation{RegionID: "a", MeanValue: 2}, Valuation{RegionID: "b", MeanValue: 2}, -1},
		{"identical rows", Valuation{RegionID: "a", MeanValue: 2}, Valuation{RegionID: "a", MeanValue: 2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
		})
	}
}

func TestSalaryCompare(t *testing.T) {
	assert.Equal(t, -1, Salary{MeanAnnualSalary: 10}.Compare(Salary{MeanAnnualSalary: 20}))
	assert.Equal(t, -1, Salary{OccupationTitle: "A", MeanAnnualSalary: 20}.Compare(Salary{OccupationTitle: "B", MeanAnnualSalary: 20}))
	assert.Equal(t, 0, Salary{Area: "x"}.Compare(Salary{Area: "x"}))
}
