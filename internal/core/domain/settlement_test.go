package domain_test

import (
	"testing"
	"time"

	"github.com/rescuebite/rescuebite/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestNextSettlementDate(t *testing.T) {
	type settlementDateTest struct {
		name  string
		after time.Time
		day   time.Weekday
		exp   time.Time
	}

	// 2025-06-02 is a Monday.
	tests := []settlementDateTest{
		{
			name:  "mid week rolls to next monday",
			after: time.Date(2025, 6, 4, 15, 30, 0, 0, time.UTC),
			day:   time.Monday,
			exp:   time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "settlement day itself rolls a full week",
			after: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
			day:   time.Monday,
			exp:   time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "day before settles next day",
			after: time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC),
			day:   time.Monday,
			exp:   time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "friday settlement day",
			after: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
			day:   time.Friday,
			exp:   time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := domain.NextSettlementDate(test.after, test.day)
			assert.Equal(t, test.exp, got)
			assert.Equal(t, test.day, got.Weekday())
			assert.True(t, got.After(test.after))
		})
	}
}
