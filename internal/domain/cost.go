package domain

import "github.com/shopspring/decimal"

const (
	// CostScale is the number of decimal places kept for money amounts
	CostScale = 2

	// HoursScale matches the scale of the total_hours column
	HoursScale = 6
)

// Pricing is the derived cost of a reservation window
type Pricing struct {
	TotalHours decimal.Decimal
	HourlyRate *decimal.Decimal
	TotalCost  *decimal.Decimal
}

// CalculateCost prices a window at the given hourly rate.
// TotalHours is rounded to the stored scale; the cost uses the exact length.
// TotalCost is nil when the rate is unset or not positive.
func CalculateCost(window Interval, hourlyRate *decimal.Decimal) Pricing {
	exact := window.Hours()
	hours := exact.Round(HoursScale)

	if hourlyRate == nil || !hourlyRate.IsPositive() {
		return Pricing{TotalHours: hours, HourlyRate: hourlyRate}
	}

	cost := exact.Mul(*hourlyRate).Round(CostScale)
	rate := *hourlyRate
	return Pricing{TotalHours: hours, HourlyRate: &rate, TotalCost: &cost}
}
