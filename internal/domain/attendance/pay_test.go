package attendance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDailyIncome_RegularAndOvertime(t *testing.T) {
	rate := decimal.NewFromInt(100)

	// 8 regular hours + 2 overtime at 1.5x premium
	income := DailyIncome(rate, true, decimal.NewFromInt(8), decimal.NewFromInt(2))
	assert.True(t, income.Equal(decimal.NewFromInt(1100)), "got %s", income)
}

func TestDailyIncome_AbsentIsZero(t *testing.T) {
	rate := decimal.NewFromInt(100)

	// Absence zeroes income even if hours slipped through
	income := DailyIncome(rate, false, decimal.NewFromInt(8), decimal.NewFromInt(2))
	assert.True(t, income.IsZero(), "got %s", income)
}

func TestDailyIncome_NoOvertime(t *testing.T) {
	rate := decimal.NewFromFloat(62.5)

	income := DailyIncome(rate, true, decimal.NewFromInt(8), decimal.Zero)
	assert.True(t, income.Equal(decimal.NewFromInt(500)), "got %s", income)
}

func TestDailyIncome_FractionalHours(t *testing.T) {
	rate := decimal.NewFromInt(100)

	// 7.5h + 1.5 OT = 750 + 225
	income := DailyIncome(rate, true, decimal.NewFromFloat(7.5), decimal.NewFromFloat(1.5))
	assert.True(t, income.Equal(decimal.NewFromFloat(975)), "got %s", income)
}

func TestOvertimeMultiplier(t *testing.T) {
	assert.True(t, OvertimeMultiplier.Equal(decimal.NewFromFloat(1.5)))
}
