// Package pricing derives the cost of a stay from its dates and the room's
// nightly rate. It is pure computation; rates always come from storage, not
// from the caller.
package pricing

import (
	"time"

	"lodge/shared/failure"

	"github.com/shopspring/decimal"
)

const hoursPerDay = 24

// Quote returns the number of nights between checkin and checkout and the
// total amount for the stay at the given nightly rate. Fails with an
// invalid-date-range failure when checkout is not strictly after checkin.
// Decimal arithmetic keeps repeated quotes free of floating-point drift.
func Quote(checkin, checkout time.Time, rate decimal.Decimal) (int, decimal.Decimal, error) {
	nights := Nights(checkin, checkout)
	if nights <= 0 {
		return 0, decimal.Zero, failure.InvalidDateRange("checkout must be after check-in") // nolint:wrapcheck
	}

	amount := rate.Mul(decimal.NewFromInt(int64(nights)))

	return nights, amount, nil
}

// Nights counts whole days between the two dates, ignoring any time-of-day
// component.
func Nights(checkin, checkout time.Time) int {
	in := truncateToDay(checkin)
	out := truncateToDay(checkout)

	return int(out.Sub(in).Hours() / hoursPerDay)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
