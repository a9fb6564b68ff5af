package pricing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"lodge/internal/domains/reservation/pricing"
	"lodge/shared/failure"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkin  time.Time
		checkout time.Time
		want     int
	}{
		{
			name:     "single night",
			checkin:  date(2026, time.March, 10),
			checkout: date(2026, time.March, 11),
			want:     1,
		},
		{
			name:     "week long stay",
			checkin:  date(2026, time.March, 10),
			checkout: date(2026, time.March, 17),
			want:     7,
		},
		{
			name:     "same day",
			checkin:  date(2026, time.March, 10),
			checkout: date(2026, time.March, 10),
			want:     0,
		},
		{
			name:     "checkout before checkin",
			checkin:  date(2026, time.March, 12),
			checkout: date(2026, time.March, 10),
			want:     -2,
		},
		{
			name:     "time of day is ignored",
			checkin:  time.Date(2026, time.March, 10, 23, 30, 0, 0, time.UTC),
			checkout: time.Date(2026, time.March, 11, 1, 15, 0, 0, time.UTC),
			want:     1,
		},
		{
			name:     "stay crossing a month boundary",
			checkin:  date(2026, time.January, 30),
			checkout: date(2026, time.February, 2),
			want:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.Nights(tt.checkin, tt.checkout))
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name       string
		checkin    time.Time
		checkout   time.Time
		rate       decimal.Decimal
		wantNights int
		wantAmount string
		wantErr    bool
	}{
		{
			name:       "three nights at a flat rate",
			checkin:    date(2026, time.March, 10),
			checkout:   date(2026, time.March, 13),
			rate:       decimal.NewFromInt(100),
			wantNights: 3,
			wantAmount: "300",
		},
		{
			name:       "fractional rate stays exact",
			checkin:    date(2026, time.March, 10),
			checkout:   date(2026, time.March, 12),
			rate:       decimal.RequireFromString("149.99"),
			wantNights: 2,
			wantAmount: "299.98",
		},
		{
			name:     "same day stay is rejected",
			checkin:  date(2026, time.March, 10),
			checkout: date(2026, time.March, 10),
			rate:     decimal.NewFromInt(100),
			wantErr:  true,
		},
		{
			name:     "checkout before checkin is rejected",
			checkin:  date(2026, time.March, 12),
			checkout: date(2026, time.March, 10),
			rate:     decimal.NewFromInt(100),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nights, amount, err := pricing.Quote(tt.checkin, tt.checkout, tt.rate)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, failure.KindInvalidDateRange, failure.GetKind(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantNights, nights)
			assert.Equal(t, tt.wantAmount, amount.String())
		})
	}
}
