//go:build unit

package workcal_test

import (
	"testing"
	"time"

	"parking-allocator/internal/pkg/workcal"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		d, err := workcal.ParseDate("2025-09-01")
		require.NoError(t, err)
		assert.Equal(t, workcal.NewDate(2025, time.September, 1), d)
	})

	t.Run("invalid input", func(t *testing.T) {
		for _, raw := range []string{"", "2025-13-01", "01/09/2025", "not-a-date"} {
			_, err := workcal.ParseDate(raw)
			assert.Error(t, err, raw)
		}
	})

	t.Run("round trips through String", func(t *testing.T) {
		d := workcal.MustParseDate("2025-12-31")
		assert.Equal(t, "2025-12-31", d.String())
	})
}

func TestDateAddDays(t *testing.T) {
	cases := []struct {
		name string
		from string
		days int
		want string
	}{
		{"within month", "2025-09-01", 3, "2025-09-04"},
		{"across month end", "2025-09-29", 3, "2025-10-02"},
		{"across year end", "2025-12-30", 3, "2026-01-02"},
		{"backwards", "2025-09-01", -1, "2025-08-31"},
		{"zero", "2025-09-01", 0, "2025-09-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := workcal.MustParseDate(tc.from).AddDays(tc.days)
			assert.Equal(t, workcal.MustParseDate(tc.want), got)
		})
	}
}

func TestDateComparison(t *testing.T) {
	earlier := workcal.MustParseDate("2025-09-01")
	later := workcal.MustParseDate("2025-09-02")

	assert.True(t, earlier.Before(later))
	assert.False(t, later.Before(earlier))
	assert.True(t, later.After(earlier))
	assert.False(t, earlier.After(earlier))
	assert.Equal(t, 0, earlier.Compare(earlier))
}

func TestDateOf(t *testing.T) {
	loc, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	// 23:30 UTC on the 1st is already the 2nd in BST.
	instant := time.Date(2025, time.September, 1, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, workcal.MustParseDate("2025-09-02"), workcal.DateOf(instant.In(loc)))
	assert.Equal(t, workcal.MustParseDate("2025-09-01"), workcal.DateOf(instant))
}

func TestDatesBetween(t *testing.T) {
	t.Run("inclusive span", func(t *testing.T) {
		got := workcal.DatesBetween(
			workcal.MustParseDate("2025-09-01"),
			workcal.MustParseDate("2025-09-03"),
		)
		want := []workcal.Date{
			workcal.MustParseDate("2025-09-01"),
			workcal.MustParseDate("2025-09-02"),
			workcal.MustParseDate("2025-09-03"),
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("DatesBetween mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("single day", func(t *testing.T) {
		d := workcal.MustParseDate("2025-09-01")
		assert.Equal(t, []workcal.Date{d}, workcal.DatesBetween(d, d))
	})

	t.Run("reversed range is empty", func(t *testing.T) {
		got := workcal.DatesBetween(
			workcal.MustParseDate("2025-09-03"),
			workcal.MustParseDate("2025-09-01"),
		)
		assert.Empty(t, got)
	})
}
