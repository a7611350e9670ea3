package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidInterval is returned when an interval's start is not strictly before its end
var ErrInvalidInterval = errors.New("domain: interval start must be before end")

var millisecondsPerHour = decimal.NewFromInt(int64(time.Hour / time.Millisecond))

// Interval is a half-open time interval [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval builds an interval, rejecting start >= end
func NewInterval(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps reports whether the two intervals share any instant.
// Intervals that only touch at an endpoint do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Duration returns the length of the interval
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Hours returns the exact length of the interval in hours
func (i Interval) Hours() decimal.Decimal {
	ms := i.End.Sub(i.Start).Milliseconds()
	return decimal.NewFromInt(ms).Div(millisecondsPerHour)
}
