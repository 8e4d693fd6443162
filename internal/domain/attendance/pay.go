package attendance

import "github.com/shopspring/decimal"

// OvertimeMultiplier is the premium applied to overtime hours on top of the
// base hourly rate. 1.5x is the single canonical policy for every screen and
// aggregate in the system.
var OvertimeMultiplier = decimal.NewFromFloat(1.5)

// DailyIncome computes one day's pay for a worker: regular hours at the base
// rate plus overtime at 1.5x. An absent day always pays zero, whatever hours
// the record carries.
func DailyIncome(hourlyRate decimal.Decimal, present bool, hoursWorked, overtime decimal.Decimal) decimal.Decimal {
	if !present {
		return decimal.Zero
	}
	regular := hoursWorked.Mul(hourlyRate)
	premium := overtime.Mul(hourlyRate).Mul(OvertimeMultiplier)
	return regular.Add(premium)
}
