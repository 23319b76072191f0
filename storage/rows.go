package storage

import (
	"housing-advantage/models"
	"housing-advantage/utils"
)

// Column order shared by the CSV files and the Postgres tables.
var (
	housingColumns = []string{"region_id", "state", "city", "county_name", "mean_value"}
	salaryColumns  = []string{"area", "prim_state", "occ_title", "tot_emp", "a_mean"}
)

// field returns fields[i], or "" when the row is short.
func field(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}

func valuationFromFields(fields []string) models.Valuation {
	return models.Valuation{
		RegionID:  field(fields, 0),
		State:     field(fields, 1),
		City:      field(fields, 2),
		County:    field(fields, 3),
		MeanValue: utils.ParseDigits(field(fields, 4)),
	}
}

func salaryFromFields(fields []string) models.Salary {
	return models.Salary{
		Area:             field(fields, 0),
		State:            field(fields, 1),
		OccupationTitle:  field(fields, 2),
		TotalEmployment:  utils.ParseDigits(field(fields, 3)),
		MeanAnnualSalary: utils.ParseDigits(field(fields, 4)),
	}
}
