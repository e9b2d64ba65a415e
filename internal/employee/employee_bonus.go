package employee

import "github.com/shopspring/decimal"

var bonusPerCourse = decimal.NewFromInt(100)

// ComputeSuggestedBonus is 100 per attended course, multiplied by the years
// in service once the employee has at least one. New employees (zero years)
// get the per-course amount without a years factor.
func ComputeSuggestedBonus(attendedCourses, yearsInService int) decimal.Decimal {
	bonus := bonusPerCourse.Mul(decimal.NewFromInt(int64(attendedCourses)))
	if yearsInService <= 0 {
		return bonus
	}
	return bonus.Mul(decimal.NewFromInt(int64(yearsInService)))
}
