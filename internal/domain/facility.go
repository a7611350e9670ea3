package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Facility is a bookable venue
type Facility struct {
	ID         int64
	Name       string
	HourlyRate *decimal.Decimal // nil for free facilities
	Capacity   int
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsBookable returns true if reservations may be made for the facility
func (f *Facility) IsBookable() bool {
	return f != nil && f.Active
}
